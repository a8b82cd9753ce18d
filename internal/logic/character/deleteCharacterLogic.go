package character

import (
	"context"
	"errors"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteCharacterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteCharacterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteCharacterLogic {
	return &DeleteCharacterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteCharacterLogic) DeleteCharacter(req *types.DeleteCharacterRequest) (*types.DeleteCharacterResponse, error) {
	// 内置角色使用负数 ID，永远不允许删除
	if req.Id < 0 {
		return &types.DeleteCharacterResponse{Error: "内置角色不可删除"}, nil
	}

	c, err := l.svcCtx.CharactersModel.FindOne(l.ctx, req.Id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &types.DeleteCharacterResponse{Error: "角色不存在"}, nil
		}
		return nil, err
	}
	if !c.IsDeletable {
		return &types.DeleteCharacterResponse{Error: "内置角色不可删除"}, nil
	}

	if err := l.svcCtx.CharactersModel.Delete(l.ctx, req.Id); err != nil {
		return nil, err
	}
	return &types.DeleteCharacterResponse{Success: true}, nil
}
