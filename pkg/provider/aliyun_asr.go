package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// aliyunAsrStatusOK is the business status for a successful recognition.
const aliyunAsrStatusOK = 20000000

// AliyunAsrConfig carries the endpoint and application key for the
// Aliyun speech recognition API.
type AliyunAsrConfig struct {
	AppKey  string
	Token   string
	BaseURL string
}

// 阿里云语音识别服务
type AliyunAsr struct {
	cfg    AliyunAsrConfig
	client *http.Client
}

func NewAliyunAsr(cfg AliyunAsrConfig) *AliyunAsr {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://nls-gateway-cn-shanghai.aliyuncs.com"
	}
	return &AliyunAsr{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *AliyunAsr) Name() string {
	return VendorAliyun
}

type aliyunAsrRequest struct {
	AppKey                         string `json:"appkey"`
	AudioURL                       string `json:"audio_url"`
	EnablePunctuationPrediction    bool   `json:"enable_punctuation_prediction"`
	EnableInverseTextNormalization bool   `json:"enable_inverse_text_normalization"`
	EnableVoiceDetection           bool   `json:"enable_voice_detection"`
}

type aliyunAsrResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func (p *AliyunAsr) TranscribeURL(ctx context.Context, audioURL string) (string, error) {
	reqBody, err := json.Marshal(aliyunAsrRequest{
		AppKey:                         p.cfg.AppKey,
		AudioURL:                       audioURL,
		EnablePunctuationPrediction:    true,
		EnableInverseTextNormalization: true,
		EnableVoiceDetection:           false,
	})
	if err != nil {
		return "", protocolError(VendorAliyun, CapabilityASR, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.cfg.BaseURL+"/stream/v1/asr", bytes.NewReader(reqBody))
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityASR, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.Token != "" {
		httpReq.Header.Set("X-NLS-Token", p.cfg.Token)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityASR, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityASR, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(VendorAliyun, CapabilityASR, voiceStatusKinds, resp.StatusCode, string(body))
	}

	var asrResp aliyunAsrResponse
	if err := json.Unmarshal(body, &asrResp); err != nil {
		return "", protocolError(VendorAliyun, CapabilityASR, string(body), err)
	}

	// 业务状态码非 20000000 视为失败
	if asrResp.Status != aliyunAsrStatusOK {
		return "", &Error{
			Vendor:     VendorAliyun,
			Capability: CapabilityASR,
			Kind:       KindUpstream,
			Status:     resp.StatusCode,
			Body:       string(body),
		}
	}

	return strings.TrimSpace(asrResp.Result), nil
}
