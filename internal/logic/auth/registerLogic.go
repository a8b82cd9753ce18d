package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/crypto/bcrypt"
)

type RegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterLogic) Register(req *types.RegisterRequest) (*types.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return &types.AuthResponse{Code: 1, Message: "用户名、邮箱和密码不能为空"}, nil
	}

	// 用户名和邮箱都不允许重复
	if _, err := l.svcCtx.UsersModel.FindOneByUsername(l.ctx, username); err == nil {
		return &types.AuthResponse{Code: 1, Message: "用户名已存在"}, nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if _, err := l.svcCtx.UsersModel.FindOneByEmail(l.ctx, email); err == nil {
		return &types.AuthResponse{Code: 1, Message: "邮箱已被注册"}, nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := l.svcCtx.UsersModel.Insert(l.ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		return nil, err
	}

	l.Infof("user registered, id: %d, username: %s", id, username)
	return &types.AuthResponse{
		Code:    0,
		Message: "注册成功",
		Data: &types.UserInfo{
			UserId:   strconv.FormatInt(id, 10),
			Username: username,
			Email:    email,
		},
	}, nil
}
