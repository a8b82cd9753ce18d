package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmtalk/backend/pkg/model"
)

func TestAliyunAIGenerateResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/aigc/text-generation/generation", r.URL.Path)
		assert.Equal(t, "Bearer dash-key", r.Header.Get("Authorization"))
		assert.Equal(t, "enable", r.Header.Get("X-DashScope-SSE"))

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(
			"data:{\"output\":{\"text\":\"你好\"}}\n" +
				"data:{\"output\":{\"text\":\"你好呀！很高兴认识你。\",\"finish_reason\":\"stop\"}}\n"))
	}))
	defer srv.Close()

	ai := NewAliyunAI(AliyunAIConfig{APIKey: "dash-key", BaseURL: srv.URL})

	got, err := ai.GenerateResponse(context.Background(), &model.Persona{Name: "孔子"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "你好呀！很高兴认识你。", got)
}

func TestAliyunAITruncatesLongReply(t *testing.T) {
	long := strings.Repeat("好", 30)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data:{\"output\":{\"text\":\"" + long + "\",\"finish_reason\":\"stop\"}}\n"))
	}))
	defer srv.Close()

	ai := NewAliyunAI(AliyunAIConfig{APIKey: "k", BaseURL: srv.URL, MaxResponseLength: 10})

	got, err := ai.GenerateResponse(context.Background(), &model.Persona{Name: "x"}, nil)
	require.NoError(t, err)
	// 按 rune 截断，不能截出半个汉字
	assert.Equal(t, strings.Repeat("好", 10), got)
}

func TestAliyunAICuratedPersonaPrompt(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req aliyunChatRequest
		require.NoError(t, decodeJSONBody(r, &req))
		gotPrompt = req.Input.Prompt
		_, _ = w.Write([]byte("data:{\"output\":{\"text\":\"好\",\"finish_reason\":\"stop\"}}\n"))
	}))
	defer srv.Close()

	ai := NewAliyunAI(AliyunAIConfig{APIKey: "k", BaseURL: srv.URL})

	_, err := ai.GenerateResponse(context.Background(), &model.Persona{Name: "苏格拉底"}, []*model.Turn{
		{Role: model.RoleUser, Content: "什么是美德？"},
	})
	require.NoError(t, err)

	// 内置角色走预置提示词
	assert.Contains(t, gotPrompt, "你正在扮演苏格拉底")
	assert.Contains(t, gotPrompt, "用户: 什么是美德？\n")
}

func TestAliyunAIErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("throttled"))
	}))
	defer srv.Close()

	ai := NewAliyunAI(AliyunAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := ai.GenerateResponse(context.Background(), &model.Persona{Name: "x"}, nil)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindRateLimit, perr.Kind)
	assert.Equal(t, VendorAliyun, perr.Vendor)
}

func TestAliyunAIEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ai := NewAliyunAI(AliyunAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := ai.GenerateResponse(context.Background(), &model.Persona{Name: "x"}, nil)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindProtocol, perr.Kind)
}
