package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/warmtalk/backend/pkg/model"
	"github.com/warmtalk/backend/pkg/prompt"
)

// QiniuAIConfig carries the endpoint and model for the Qiniu completion
// API. BaseURL already includes the version path.
type QiniuAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// 七牛大模型服务（OpenAI 兼容接口）
type QiniuAI struct {
	cfg    QiniuAIConfig
	client *http.Client
}

func NewQiniuAI(cfg QiniuAIConfig) *QiniuAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openai.qiniu.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-v3"
	}
	return &QiniuAI{
		cfg: cfg,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *QiniuAI) Name() string {
	return VendorQiniu
}

type qiniuChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type qiniuChatRequest struct {
	Model       string             `json:"model"`
	Messages    []qiniuChatMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
	MaxTokens   int                `json:"max_tokens"`
}

type qiniuChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *QiniuAI) GenerateResponse(ctx context.Context, persona *model.Persona, history []*model.Turn) (string, error) {
	instruction := prompt.BuildInstruction(persona, prompt.FlavorPlain)
	conversation := prompt.BuildHistory(history)

	reqBody, err := json.Marshal(qiniuChatRequest{
		Model: p.cfg.Model,
		Messages: []qiniuChatMessage{
			{Role: "system", Content: instruction},
			{Role: "user", Content: conversation},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", protocolError(VendorQiniu, CapabilityAI, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.cfg.BaseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", transportError(VendorQiniu, CapabilityAI, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", transportError(VendorQiniu, CapabilityAI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(VendorQiniu, CapabilityAI, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(VendorQiniu, CapabilityAI, chatStatusKinds, resp.StatusCode, string(body))
	}

	var chatResp qiniuChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", protocolError(VendorQiniu, CapabilityAI, string(body), err)
	}
	if len(chatResp.Choices) == 0 {
		return "", protocolError(VendorQiniu, CapabilityAI, string(body), nil)
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
