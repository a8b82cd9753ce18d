package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/warmtalk/backend/pkg/model"
	"github.com/warmtalk/backend/pkg/prompt"
)

// AliyunAIConfig carries the DashScope endpoint and model.
// MaxResponseLength caps the reply length in runes; zero means the
// default of 500.
type AliyunAIConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	MaxResponseLength int
}

// 阿里云大模型服务（DashScope 文本生成，SSE 响应）
type AliyunAI struct {
	cfg    AliyunAIConfig
	client *http.Client
}

func NewAliyunAI(cfg AliyunAIConfig) *AliyunAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://dashscope.aliyuncs.com/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "qwen-turbo"
	}
	if cfg.MaxResponseLength <= 0 {
		cfg.MaxResponseLength = 500
	}
	return &AliyunAI{
		cfg: cfg,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *AliyunAI) Name() string {
	return VendorAliyun
}

type aliyunChatRequest struct {
	Model string `json:"model"`
	Input struct {
		Prompt string `json:"prompt"`
	} `json:"input"`
	Parameters struct {
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	} `json:"parameters"`
}

func (p *AliyunAI) GenerateResponse(ctx context.Context, persona *model.Persona, history []*model.Turn) (string, error) {
	instruction := prompt.BuildInstruction(persona, prompt.FlavorEmoji)
	conversation := prompt.BuildHistory(history)

	var req aliyunChatRequest
	req.Model = p.cfg.Model
	req.Input.Prompt = instruction + "\n\n" + conversation
	req.Parameters.Temperature = 0.7
	req.Parameters.MaxTokens = 500

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", protocolError(VendorAliyun, CapabilityAI, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		p.cfg.BaseURL+"/services/aigc/text-generation/generation", bytes.NewReader(reqBody))
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityAI, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("X-DashScope-SSE", "enable")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityAI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityAI, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(VendorAliyun, CapabilityAI, chatStatusKinds, resp.StatusCode, string(body))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return "", protocolError(VendorAliyun, CapabilityAI, "", nil)
	}

	text := ExtractFinalText(string(body))

	// 回复长度按 rune 截断
	if runes := []rune(text); len(runes) > p.cfg.MaxResponseLength {
		text = string(runes[:p.cfg.MaxResponseLength])
	}
	return text, nil
}
