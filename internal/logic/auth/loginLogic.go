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

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (*types.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return &types.AuthResponse{Code: 1, Message: "用户名和密码不能为空"}, nil
	}

	user, err := l.svcCtx.UsersModel.FindOneByUsername(l.ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &types.AuthResponse{Code: 1, Message: "用户名或密码错误"}, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return &types.AuthResponse{Code: 1, Message: "用户名或密码错误"}, nil
	}

	return &types.AuthResponse{
		Code:    0,
		Message: "登录成功",
		Data: &types.UserInfo{
			UserId:   strconv.FormatInt(user.Id, 10),
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
