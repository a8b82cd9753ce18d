package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

// QiniuTtsConfig carries the endpoints and defaults for Qiniu speech
// synthesis. UseStreaming switches synthesis to the websocket API.
type QiniuTtsConfig struct {
	APIKey        string
	BaseURL       string
	WsURL         string
	DefaultVoice  string
	DefaultFormat string
	UseStreaming  bool
}

// 七牛语音合成服务，支持 HTTP 单次合成和 WebSocket 流式合成
type QiniuTts struct {
	cfg    QiniuTtsConfig
	client *http.Client
}

func NewQiniuTts(cfg QiniuTtsConfig) *QiniuTts {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openai.qiniu.com/v1"
	}
	if cfg.WsURL == "" {
		cfg.WsURL = "wss://api.qnaigc.com/v1/voice/tts"
	}
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = "qiniu_zh_female_wwxkjx"
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "mp3"
	}
	return &QiniuTts{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *QiniuTts) Name() string {
	return VendorQiniu
}

type qiniuTtsRequest struct {
	Audio struct {
		VoiceType  string  `json:"voice_type"`
		Encoding   string  `json:"encoding"`
		SpeedRatio float64 `json:"speed_ratio"`
	} `json:"audio"`
	Request struct {
		Text string `json:"text"`
	} `json:"request"`
}

type qiniuTtsResponse struct {
	ReqID     string `json:"reqid"`
	Operation string `json:"operation"`
	Sequence  int    `json:"sequence"`
	Audio     *struct {
		Data string `json:"data"`
	} `json:"audio"`
	Data string `json:"data"` // base64 音频数据
}

func (p *QiniuTts) Synthesize(ctx context.Context, text, voice, format string) ([]byte, error) {
	if text == "" {
		return nil, &Error{
			Vendor:     VendorQiniu,
			Capability: CapabilityTTS,
			Kind:       KindInvalidInput,
			Err:        fmt.Errorf("empty text"),
		}
	}
	if voice == "" {
		voice = p.cfg.DefaultVoice
	}
	if format == "" {
		format = p.cfg.DefaultFormat
	}

	if p.cfg.UseStreaming {
		return p.synthesizeStreamWS(ctx, text, voice, format)
	}
	return p.synthesizeHTTP(ctx, text, voice, format)
}

func (p *QiniuTts) synthesizeHTTP(ctx context.Context, text, voice, format string) ([]byte, error) {
	var req qiniuTtsRequest
	req.Audio.VoiceType = voice
	req.Audio.Encoding = format
	req.Audio.SpeedRatio = 1.0
	req.Request.Text = text

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, protocolError(VendorQiniu, CapabilityTTS, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.cfg.BaseURL+"/voice/tts", bytes.NewReader(reqBody))
	if err != nil {
		return nil, transportError(VendorQiniu, CapabilityTTS, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, transportError(VendorQiniu, CapabilityTTS, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(VendorQiniu, CapabilityTTS, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(VendorQiniu, CapabilityTTS, voiceStatusKinds, resp.StatusCode, string(body))
	}

	var ttsResp qiniuTtsResponse
	if err := json.Unmarshal(body, &ttsResp); err != nil {
		// 不是 JSON 时按原始音频字节处理
		return body, nil
	}

	encoded := ttsResp.Data
	if encoded == "" && ttsResp.Audio != nil {
		encoded = ttsResp.Audio.Data
	}
	if encoded == "" {
		return nil, protocolError(VendorQiniu, CapabilityTTS, string(body), nil)
	}

	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, protocolError(VendorQiniu, CapabilityTTS, "", err)
	}
	return audio, nil
}

// 基于 WebSocket 的流式合成，合并所有分片后整体返回
func (p *QiniuTts) synthesizeStreamWS(ctx context.Context, text, voice, format string) ([]byte, error) {
	header := http.Header{
		"Authorization": []string{"Bearer " + p.cfg.APIKey},
	}
	header.Set("VoiceType", voice)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, p.cfg.WsURL, header)
	if err != nil {
		return nil, transportError(VendorQiniu, CapabilityTTS, err)
	}
	defer conn.Close()

	var req qiniuTtsRequest
	req.Audio.VoiceType = voice
	req.Audio.Encoding = format
	req.Audio.SpeedRatio = 1.0
	req.Request.Text = text

	requestData, err := json.Marshal(req)
	if err != nil {
		return nil, protocolError(VendorQiniu, CapabilityTTS, "", err)
	}

	// 官方示例用 BinaryMessage 发送 JSON 请求
	if err := conn.WriteMessage(websocket.BinaryMessage, requestData); err != nil {
		return nil, transportError(VendorQiniu, CapabilityTTS, err)
	}

	var audioBuffer bytes.Buffer
	for {
		select {
		case <-ctx.Done():
			return nil, transportError(VendorQiniu, CapabilityTTS, ctx.Err())
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			return nil, transportError(VendorQiniu, CapabilityTTS, err)
		}

		var response qiniuTtsResponse
		if err := json.Unmarshal(message, &response); err != nil {
			logx.Errorf("failed to unmarshal TTS response: %v", err)
			continue
		}

		audioData, err := base64.StdEncoding.DecodeString(response.Data)
		if err != nil {
			logx.Errorf("failed to decode audio data: %v", err)
			continue
		}
		audioBuffer.Write(audioData)

		// sequence < 0 表示最后一个数据包
		if response.Sequence < 0 {
			logx.Infof("TTS synthesis completed, total audio size: %d bytes", audioBuffer.Len())
			break
		}
	}

	return audioBuffer.Bytes(), nil
}
