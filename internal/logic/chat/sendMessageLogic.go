package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	"github.com/warmtalk/backend/pkg/provider"
	"github.com/warmtalk/backend/pkg/textseg"

	"github.com/zeromicro/go-zero/core/logx"
)

type SendMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendMessageLogic {
	return &SendMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendMessage 持久化的角色对话：保存用户消息，生成回复并按句分段逐条保存
func (l *SendMessageLogic) SendMessage(req *types.SendMessageRequest) (*types.SendMessageResponse, error) {
	if req.UserId == "" {
		return nil, fmt.Errorf("用户未登录")
	}

	userMessage, err := l.svcCtx.ChatMessagesModel.Insert(l.ctx, &model.ChatMessage{
		UserId:        req.UserId,
		CharacterId:   req.CharacterId,
		Message:       req.Message,
		IsUserMessage: true,
	})
	if err != nil {
		return nil, err
	}

	resp := &types.SendMessageResponse{
		UserMessage: messageInfo(userMessage),
	}

	character, err := l.svcCtx.CharactersModel.ResolveCharacter(l.ctx, req.CharacterId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			resp.Error = characterNotFoundText
			return resp, nil
		}
		return nil, err
	}

	// 历史包含刚保存的这条用户消息
	history, err := l.svcCtx.ChatMessagesModel.FindByUserAndCharacter(l.ctx, req.UserId, req.CharacterId)
	if err != nil {
		return nil, err
	}

	aiText, genErr := l.generate(character, history)
	if genErr != nil {
		// 生成失败时落一条兜底回复
		saved, err := l.svcCtx.ChatMessagesModel.Insert(l.ctx, &model.ChatMessage{
			UserId:      req.UserId,
			CharacterId: req.CharacterId,
			Message:     apologyText,
		})
		if err != nil {
			return nil, err
		}
		resp.Error = genErr.Error()
		resp.AiMessages = []*types.MessageInfo{messageInfo(saved)}
		return resp, nil
	}

	// 回复按句分段，逐条作为独立的 AI 消息保存
	segments := textseg.Split(strings.TrimSpace(aiText))
	for _, segment := range segments {
		saved, err := l.svcCtx.ChatMessagesModel.Insert(l.ctx, &model.ChatMessage{
			UserId:      req.UserId,
			CharacterId: req.CharacterId,
			Message:     segment,
		})
		if err != nil {
			return nil, err
		}
		resp.AiMessages = append(resp.AiMessages, messageInfo(saved))
	}

	resp.Success = true
	return resp, nil
}

func (l *SendMessageLogic) generate(character *model.Character, history []*model.ChatMessage) (string, error) {
	ai, err := l.svcCtx.Router.AI()
	if err != nil {
		return "", err
	}

	reply, err := ai.GenerateResponse(l.ctx, personaFromCharacter(character), turnsFromMessages(history))
	if err != nil {
		var perr *provider.Error
		if errors.As(err, &perr) {
			l.Errorf("completion failed, vendor: %s, kind: %s: %v", perr.Vendor, perr.Kind, err)
		} else {
			l.Errorf("completion failed: %v", err)
		}
		return "", err
	}
	return l.svcCtx.Filter.Redact(reply), nil
}
