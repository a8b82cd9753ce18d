package chat

import (
	"context"
	"errors"
	"strconv"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	"github.com/warmtalk/backend/pkg/companion"
	"github.com/warmtalk/backend/pkg/provider"

	"github.com/zeromicro/go-zero/core/logx"
)

type ChatMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatMessageLogic {
	return &ChatMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ChatMessage 陪伴式对话：情绪识别、记忆更新、AI 回复和陪伴分累计
func (l *ChatMessageLogic) ChatMessage(req *types.ChatMessageRequest) (*types.ChatMessageResponse, error) {
	// 1. 敏感词检测，命中则不再调用上游
	if l.svcCtx.Filter.Match(req.Text) {
		l.Infof("sensitive input flagged, user: %s", req.UserId)
		return &types.ChatMessageResponse{
			Text:    flaggedText,
			Emotion: companion.EmotionAnxious,
			Flagged: true,
		}, nil
	}

	// 2. 情绪识别
	emotion := companion.DetectEmotion(req.Text)

	// 3. 记忆更新
	if topic := companion.ExtractTopic(req.Text); topic != "" {
		if err := l.svcCtx.UserMemoryModel.Upsert(l.ctx, req.UserId, model.MemoryKeyFavoriteTopic, topic); err != nil {
			l.Errorf("failed to save favorite topic: %v", err)
		}
	}
	if err := l.svcCtx.UserMemoryModel.Upsert(l.ctx, req.UserId, model.MemoryKeyLastMood, emotion); err != nil {
		l.Errorf("failed to save last mood: %v", err)
	}

	// 4. 角色与历史
	character, err := l.svcCtx.CharactersModel.ResolveCharacter(l.ctx, req.CharacterId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			l.Infof("character %d not found", req.CharacterId)
			return &types.ChatMessageResponse{
				Text:    characterNotFoundText,
				Emotion: companion.EmotionNeutral,
			}, nil
		}
		return nil, err
	}

	history, err := l.svcCtx.ChatMessagesModel.FindByUserAndCharacter(l.ctx, req.UserId, req.CharacterId)
	if err != nil {
		return nil, err
	}

	// 5. 生成回复，失败时降级为固定话术
	aiText := apologyText
	if ai, err := l.svcCtx.Router.AI(); err != nil {
		l.Errorf("no AI service available: %v", err)
	} else {
		reply, err := ai.GenerateResponse(l.ctx, personaFromCharacter(character), turnsFromMessages(history))
		if err != nil {
			var perr *provider.Error
			if errors.As(err, &perr) {
				l.Errorf("completion failed, vendor: %s, kind: %s: %v", perr.Vendor, perr.Kind, err)
			} else {
				l.Errorf("completion failed: %v", err)
			}
		} else {
			aiText = reply
		}
	}

	// 6. 建议和陪伴分
	suggestion := companion.SuggestionFor(emotion)
	score := l.bumpCompanionshipScore(req.UserId)

	return &types.ChatMessageResponse{
		Text:               l.svcCtx.Filter.Redact(aiText),
		Emotion:            emotion,
		Suggestion:         suggestion,
		CompanionshipScore: score,
	}, nil
}

func (l *ChatMessageLogic) bumpCompanionshipScore(userId string) int {
	current := 0
	if stored, err := l.svcCtx.UserMemoryModel.Read(l.ctx, userId, model.MemoryKeyCompanionshipScore); err != nil {
		l.Errorf("failed to read companionship score: %v", err)
	} else if stored != "" {
		if parsed, err := strconv.Atoi(stored); err == nil {
			current = parsed
		}
	}

	next := companion.BumpScore(current)
	if err := l.svcCtx.UserMemoryModel.Upsert(l.ctx, userId, model.MemoryKeyCompanionshipScore, strconv.Itoa(next)); err != nil {
		l.Errorf("failed to save companionship score: %v", err)
	}
	return next
}
