package voice

import (
	"context"

	"github.com/warmtalk/backend/internal/logic/chat"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type VoiceChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVoiceChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VoiceChatLogic {
	return &VoiceChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// VoiceChat 语音一条龙：转写音频后复用文本对话流程
func (l *VoiceChatLogic) VoiceChat(data []byte, filename, userId string, characterId int64) (*types.VoiceChatResponse, error) {
	transcript, err := NewAsrLogic(l.ctx, l.svcCtx).transcribe(data, filename)
	if err != nil {
		return nil, err
	}

	sendResp, err := chat.NewSendMessageLogic(l.ctx, l.svcCtx).SendMessage(&types.SendMessageRequest{
		UserId:      userId,
		CharacterId: characterId,
		Message:     transcript,
	})
	if err != nil {
		return nil, err
	}

	return &types.VoiceChatResponse{
		Transcript:  transcript,
		UserMessage: sendResp.UserMessage,
		AiMessages:  sendResp.AiMessages,
	}, nil
}
