package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// AliyunTtsConfig carries the DashScope synthesis endpoint, model and
// default voice.
type AliyunTtsConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	DefaultVoice string
}

// 阿里云语音合成服务（DashScope 多模态生成）
type AliyunTts struct {
	cfg    AliyunTtsConfig
	client *http.Client
}

func NewAliyunTts(cfg AliyunTtsConfig) *AliyunTts {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://dashscope.aliyuncs.com/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "qwen-tts"
	}
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = "Cherry"
	}
	return &AliyunTts{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *AliyunTts) Name() string {
	return VendorAliyun
}

// 阿里云支持的音色
var aliyunSupportedVoices = map[string]bool{
	"Cherry":  true,
	"Serena":  true,
	"Ethan":   true,
	"Chelsie": true,
}

// 其它厂商音色到阿里云音色的映射
var aliyunVoiceAliases = map[string]string{
	// 女声映射到 Serena
	"ruoxi":                   "Serena",
	"siqi":                    "Serena",
	"sijia":                   "Serena",
	"xiaoyun":                 "Serena",
	"xiaomeng":                "Serena",
	"qiniu_zh_female_wwxkjx":  "Serena",
	"qiniu_zh_female_tmjxxy":  "Serena",
	"qiniu_zh_female_xyqxxj":  "Serena",
	"qiniu_zh_female_glktss":  "Serena",
	"qiniu_zh_female_ljfdxx":  "Serena",
	"qiniu_zh_female_kljxdd":  "Serena",
	"qiniu_zh_female_zxjxnjs": "Serena",
	// 男声映射到 Ethan
	"xiaogang":              "Ethan",
	"harry":                 "Ethan",
	"abigail":               "Ethan",
	"andrew":                "Ethan",
	"qiniu_zh_male_ljfdxz":  "Ethan",
	"qiniu_zh_male_whxkxg":  "Ethan",
	"qiniu_zh_male_wncwxz":  "Ethan",
	"qiniu_zh_male_ybxknjs": "Ethan",
	"qiniu_zh_male_tyygjs":  "Ethan",
	// 其它映射到 Cherry
	"xiaowei": "Cherry",
	"luna":    "Cherry",
	"lydia":   "Cherry",
	"whitney": "Cherry",
}

// resolveVoice maps an arbitrary voice name onto one the vendor
// supports, falling back to the configured default.
func (p *AliyunTts) resolveVoice(voice string) string {
	if voice == "" {
		return p.cfg.DefaultVoice
	}
	if aliyunSupportedVoices[voice] {
		return voice
	}
	if mapped, ok := aliyunVoiceAliases[strings.ToLower(voice)]; ok {
		return mapped
	}
	logx.Infof("unsupported voice %q, using default voice %q", voice, p.cfg.DefaultVoice)
	return p.cfg.DefaultVoice
}

type aliyunTtsRequest struct {
	Model string `json:"model"`
	Input struct {
		Text         string `json:"text"`
		Voice        string `json:"voice"`
		LanguageType string `json:"language_type"`
	} `json:"input"`
}

type aliyunTtsResponse struct {
	Output *struct {
		Audio *struct {
			Data string `json:"data"`
			URL  string `json:"url"`
		} `json:"audio"`
	} `json:"output"`
}

func (p *AliyunTts) Synthesize(ctx context.Context, text, voice, format string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{
			Vendor:     VendorAliyun,
			Capability: CapabilityTTS,
			Kind:       KindInvalidInput,
			Err:        fmt.Errorf("empty text"),
		}
	}

	var req aliyunTtsRequest
	req.Model = p.cfg.Model
	req.Input.Text = text
	req.Input.Voice = p.resolveVoice(voice)
	req.Input.LanguageType = "Chinese"

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, protocolError(VendorAliyun, CapabilityTTS, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		p.cfg.BaseURL+"/services/aigc/multimodal-generation/generation", bytes.NewReader(reqBody))
	if err != nil {
		return nil, transportError(VendorAliyun, CapabilityTTS, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, transportError(VendorAliyun, CapabilityTTS, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(VendorAliyun, CapabilityTTS, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(VendorAliyun, CapabilityTTS, voiceStatusKinds, resp.StatusCode, string(body))
	}

	var ttsResp aliyunTtsResponse
	if err := json.Unmarshal(body, &ttsResp); err != nil {
		return nil, protocolError(VendorAliyun, CapabilityTTS, string(body), err)
	}
	if ttsResp.Output == nil || ttsResp.Output.Audio == nil {
		return nil, protocolError(VendorAliyun, CapabilityTTS, string(body), nil)
	}

	if ttsResp.Output.Audio.Data != "" {
		audio, err := base64.StdEncoding.DecodeString(ttsResp.Output.Audio.Data)
		if err != nil {
			return nil, protocolError(VendorAliyun, CapabilityTTS, "", err)
		}
		return audio, nil
	}
	if ttsResp.Output.Audio.URL != "" {
		return p.downloadAudio(ctx, ttsResp.Output.Audio.URL)
	}
	return nil, protocolError(VendorAliyun, CapabilityTTS, string(body), nil)
}

func (p *AliyunTts) downloadAudio(ctx context.Context, audioURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", audioURL, nil)
	if err != nil {
		return nil, transportError(VendorAliyun, CapabilityTTS, err)
	}
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, transportError(VendorAliyun, CapabilityTTS, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, classifyStatus(VendorAliyun, CapabilityTTS, voiceStatusKinds, resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
