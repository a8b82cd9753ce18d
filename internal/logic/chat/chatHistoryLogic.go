package chat

import (
	"context"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ChatHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatHistoryLogic {
	return &ChatHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatHistoryLogic) ChatHistory(req *types.ChatHistoryRequest) (*types.ChatHistoryResponse, error) {
	// 未携带用户标识时返回空历史
	if req.UserId == "" {
		return &types.ChatHistoryResponse{Messages: []*types.MessageInfo{}}, nil
	}

	messages, err := l.svcCtx.ChatMessagesModel.FindByUserAndCharacter(l.ctx, req.UserId, req.CharacterId)
	if err != nil {
		return nil, err
	}

	infos := make([]*types.MessageInfo, 0, len(messages))
	for _, msg := range messages {
		infos = append(infos, messageInfo(msg))
	}
	return &types.ChatHistoryResponse{Messages: infos}, nil
}
