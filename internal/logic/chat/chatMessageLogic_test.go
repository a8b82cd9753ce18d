package chat

import (
	"context"
	"testing"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/types"
	"github.com/warmtalk/backend/pkg/companion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageFlaggedInput(t *testing.T) {
	ai := &stubAI{reply: "好"}
	svcCtx := newTestContext(t, ai)
	l := NewChatMessageLogic(context.Background(), svcCtx)

	resp, err := l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Text:        "我不想活了，想自杀",
	})
	require.NoError(t, err)
	assert.True(t, resp.Flagged)
	assert.Equal(t, companion.EmotionAnxious, resp.Emotion)
	assert.NotEmpty(t, resp.Text)
	// 命中敏感词后不再调用上游
	assert.Zero(t, ai.calls)
}

func TestChatMessageEmotionAndScore(t *testing.T) {
	ai := &stubAI{reply: "别难过，我陪着你。"}
	svcCtx := newTestContext(t, ai)
	l := NewChatMessageLogic(context.Background(), svcCtx)
	ctx := context.Background()

	resp, err := l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Text:        "我今天很难过",
	})
	require.NoError(t, err)
	assert.False(t, resp.Flagged)
	assert.Equal(t, companion.EmotionSad, resp.Emotion)
	assert.Equal(t, companion.SuggestionFor(companion.EmotionSad), resp.Suggestion)
	assert.Equal(t, 1, resp.CompanionshipScore)
	assert.Equal(t, "别难过，我陪着你。", resp.Text)

	// 情绪写进了用户记忆
	mood, err := svcCtx.UserMemoryModel.Read(ctx, "user-1", model.MemoryKeyLastMood)
	require.NoError(t, err)
	assert.Equal(t, companion.EmotionSad, mood)

	// 第二轮陪伴分累计
	resp, err = l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Text:        "今天过得还行",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CompanionshipScore)
}

func TestChatMessageFavoriteTopicMemory(t *testing.T) {
	svcCtx := newTestContext(t, &stubAI{reply: "猫咪真可爱。"})
	l := NewChatMessageLogic(context.Background(), svcCtx)

	_, err := l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Text:        "我家的猫今天特别黏人",
	})
	require.NoError(t, err)

	topic, err := svcCtx.UserMemoryModel.Read(context.Background(), "user-1", model.MemoryKeyFavoriteTopic)
	require.NoError(t, err)
	assert.Equal(t, "宠物", topic)
}

func TestChatMessageCharacterNotFound(t *testing.T) {
	ai := &stubAI{reply: "好"}
	svcCtx := newTestContext(t, ai)
	l := NewChatMessageLogic(context.Background(), svcCtx)

	resp, err := l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 999,
		Text:        "你好",
	})
	require.NoError(t, err)
	assert.Equal(t, "角色不存在", resp.Text)
	assert.Equal(t, companion.EmotionNeutral, resp.Emotion)
	assert.Zero(t, ai.calls)
}

func TestChatMessageUpstreamFailureFallsBack(t *testing.T) {
	svcCtx := newTestContext(t, &stubAI{err: assert.AnError})
	l := NewChatMessageLogic(context.Background(), svcCtx)

	resp, err := l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Text:        "你好",
	})
	require.NoError(t, err)
	assert.Equal(t, "抱歉，我暂时无法回复您的消息。", resp.Text)
}

func TestChatMessageRedactsReply(t *testing.T) {
	svcCtx := newTestContext(t, &stubAI{reply: "这个话题涉及暴力内容"})
	l := NewChatMessageLogic(context.Background(), svcCtx)

	resp, err := l.ChatMessage(&types.ChatMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Text:        "随便聊聊",
	})
	require.NoError(t, err)
	assert.NotContains(t, resp.Text, "暴力")
	assert.Contains(t, resp.Text, "***")
}

func TestChatHistoryEmptyUser(t *testing.T) {
	svcCtx := newTestContext(t, &stubAI{reply: "好"})
	l := NewChatHistoryLogic(context.Background(), svcCtx)

	resp, err := l.ChatHistory(&types.ChatHistoryRequest{CharacterId: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Messages)
}

func TestChatHistoryReturnsConversation(t *testing.T) {
	ai := &stubAI{reply: "你好呀！"}
	svcCtx := newTestContext(t, ai)

	_, err := NewSendMessageLogic(context.Background(), svcCtx).SendMessage(&types.SendMessageRequest{
		UserId:      "user-1",
		CharacterId: 1,
		Message:     "你好",
	})
	require.NoError(t, err)

	resp, err := NewChatHistoryLogic(context.Background(), svcCtx).ChatHistory(&types.ChatHistoryRequest{
		CharacterId: 1,
		UserId:      "user-1",
	})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)
	assert.True(t, resp.Messages[0].IsUserMessage)
	assert.False(t, resp.Messages[1].IsUserMessage)
}
