package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

// QiniuAsrConfig carries the endpoint and model for the Qiniu speech
// recognition API.
type QiniuAsrConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// 七牛语音识别服务（URL 方式批量识别）
type QiniuAsr struct {
	cfg    QiniuAsrConfig
	client *http.Client
}

func NewQiniuAsr(cfg QiniuAsrConfig) *QiniuAsr {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openai.qiniu.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "asr"
	}
	return &QiniuAsr{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *QiniuAsr) Name() string {
	return VendorQiniu
}

var audioFormats = map[string]bool{
	"mp3":  true,
	"wav":  true,
	"m4a":  true,
	"flac": true,
	"aac":  true,
	"ogg":  true,
	"webm": true,
}

// detectAudioFormat sniffs the audio format from the URL extension,
// defaulting to wav.
func detectAudioFormat(audioURL string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(stripQuery(audioURL)), "."))
	if audioFormats[ext] {
		return ext
	}
	return "wav"
}

func stripQuery(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i]
	}
	return u
}

type qiniuAsrRequest struct {
	Model string `json:"model"`
	Audio struct {
		Format string `json:"format"`
		URL    string `json:"url"`
	} `json:"audio"`
}

// 识别文本可能出现在几个不同的位置
type qiniuAsrResponse struct {
	Result *struct {
		Text string `json:"text"`
	} `json:"result"`
	Data *struct {
		Result *struct {
			Text string `json:"text"`
		} `json:"result"`
	} `json:"data"`
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *QiniuAsr) TranscribeURL(ctx context.Context, audioURL string) (string, error) {
	var req qiniuAsrRequest
	req.Model = p.cfg.Model
	req.Audio.Format = detectAudioFormat(audioURL)
	req.Audio.URL = audioURL

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", protocolError(VendorQiniu, CapabilityASR, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.cfg.BaseURL+"/voice/asr", bytes.NewReader(reqBody))
	if err != nil {
		return "", transportError(VendorQiniu, CapabilityASR, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", transportError(VendorQiniu, CapabilityASR, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(VendorQiniu, CapabilityASR, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(VendorQiniu, CapabilityASR, voiceStatusKinds, resp.StatusCode, string(body))
	}

	var asrResp qiniuAsrResponse
	if err := json.Unmarshal(body, &asrResp); err != nil {
		return "", protocolError(VendorQiniu, CapabilityASR, string(body), err)
	}
	if asrResp.Error != nil {
		return "", &Error{
			Vendor:     VendorQiniu,
			Capability: CapabilityASR,
			Kind:       KindUpstream,
			Status:     resp.StatusCode,
			Body:       asrResp.Error.Message,
		}
	}

	switch {
	case asrResp.Result != nil && asrResp.Result.Text != "":
		return strings.TrimSpace(asrResp.Result.Text), nil
	case asrResp.Data != nil && asrResp.Data.Result != nil && asrResp.Data.Result.Text != "":
		return strings.TrimSpace(asrResp.Data.Result.Text), nil
	case asrResp.Text != "":
		return strings.TrimSpace(asrResp.Text), nil
	}
	return "", protocolError(VendorQiniu, CapabilityASR, string(body), nil)
}
