package character

import (
	"context"
	"fmt"
	"strings"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateCharacterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateCharacterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateCharacterLogic {
	return &CreateCharacterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateCharacterLogic) CreateCharacter(req *types.CreateCharacterRequest) (*types.CharacterInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("角色名称不能为空")
	}

	c := &model.Character{
		Name:              name,
		Description:       req.Description,
		PersonalityTraits: req.PersonalityTraits,
		BackgroundStory:   req.BackgroundStory,
		VoiceType:         req.VoiceType,
		IsDeletable:       true,
	}
	id, err := l.svcCtx.CharactersModel.Insert(l.ctx, c)
	if err != nil {
		return nil, err
	}
	c.Id = id

	l.Infof("character created, id: %d, name: %s", id, name)
	return characterInfo(c), nil
}
