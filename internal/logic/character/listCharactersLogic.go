package character

import (
	"context"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListCharactersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListCharactersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListCharactersLogic {
	return &ListCharactersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListCharacters 返回内置角色加数据库中的自定义角色
func (l *ListCharactersLogic) ListCharacters() (*types.CharacterListResponse, error) {
	stored, err := l.svcCtx.CharactersModel.FindAll(l.ctx)
	if err != nil {
		return nil, err
	}

	builtin := model.BuiltinCharacters()
	infos := make([]*types.CharacterInfo, 0, len(builtin)+len(stored))
	for _, c := range builtin {
		infos = append(infos, characterInfo(c))
	}
	for _, c := range stored {
		infos = append(infos, characterInfo(c))
	}
	return &types.CharacterListResponse{Characters: infos}, nil
}

func characterInfo(c *model.Character) *types.CharacterInfo {
	return &types.CharacterInfo{
		Id:                c.Id,
		Name:              c.Name,
		Description:       c.Description,
		PersonalityTraits: c.PersonalityTraits,
		BackgroundStory:   c.BackgroundStory,
		VoiceType:         c.VoiceType,
		IsDeletable:       c.IsDeletable,
	}
}
