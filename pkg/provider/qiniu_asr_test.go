package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAudioFormat(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/a.mp3", "mp3"},
		{"https://cdn.example.com/a.WAV", "wav"},
		{"https://cdn.example.com/a.m4a?sig=abc", "m4a"},
		{"https://cdn.example.com/a.flac#frag", "flac"},
		{"https://cdn.example.com/a.ogg", "ogg"},
		{"https://cdn.example.com/a.webm", "webm"},
		{"https://cdn.example.com/a.aac", "aac"},
		{"https://cdn.example.com/a.bin", "wav"},
		{"https://cdn.example.com/noext", "wav"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectAudioFormat(tt.url), tt.url)
	}
}

func TestQiniuAsrTranscribeURL(t *testing.T) {
	bodies := []struct {
		name string
		body string
	}{
		{"result.text", `{"result":{"text":"你好，这是一个测试消息"}}`},
		{"data.result.text", `{"data":{"result":{"text":"你好，这是一个测试消息"}}}`},
		{"top-level text", `{"text":"你好，这是一个测试消息"}`},
	}

	for _, tt := range bodies {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/voice/asr", r.URL.Path)

				var req qiniuAsrRequest
				require.NoError(t, decodeJSONBody(r, &req))
				assert.Equal(t, "mp3", req.Audio.Format)
				assert.Equal(t, "https://cdn.example.com/a.mp3", req.Audio.URL)

				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			asr := NewQiniuAsr(QiniuAsrConfig{APIKey: "k", BaseURL: srv.URL})
			got, err := asr.TranscribeURL(context.Background(), "https://cdn.example.com/a.mp3")
			require.NoError(t, err)
			assert.Equal(t, "你好，这是一个测试消息", got)
		})
	}
}

func TestQiniuAsrErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"audio too long"}}`))
	}))
	defer srv.Close()

	asr := NewQiniuAsr(QiniuAsrConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := asr.TranscribeURL(context.Background(), "https://cdn.example.com/a.wav")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUpstream, perr.Kind)
	assert.Contains(t, perr.Body, "audio too long")
}

func TestQiniuAsrUnusableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"something":"else"}`))
	}))
	defer srv.Close()

	asr := NewQiniuAsr(QiniuAsrConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := asr.TranscribeURL(context.Background(), "https://cdn.example.com/a.wav")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindProtocol, perr.Kind)
}

func TestAliyunAsrTranscribeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stream/v1/asr", r.URL.Path)

		var req aliyunAsrRequest
		require.NoError(t, decodeJSONBody(r, &req))
		assert.Equal(t, "app-key", req.AppKey)
		assert.True(t, req.EnablePunctuationPrediction)
		assert.True(t, req.EnableInverseTextNormalization)
		assert.False(t, req.EnableVoiceDetection)

		_, _ = w.Write([]byte(`{"status":20000000,"result":"你好"}`))
	}))
	defer srv.Close()

	asr := NewAliyunAsr(AliyunAsrConfig{AppKey: "app-key", BaseURL: srv.URL})
	got, err := asr.TranscribeURL(context.Background(), "https://cdn.example.com/a.wav")
	require.NoError(t, err)
	assert.Equal(t, "你好", got)
}

func TestAliyunAsrBusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":40000001,"message":"Gateway:ACCESS_DENIED"}`))
	}))
	defer srv.Close()

	asr := NewAliyunAsr(AliyunAsrConfig{AppKey: "app-key", BaseURL: srv.URL})
	_, err := asr.TranscribeURL(context.Background(), "https://cdn.example.com/a.wav")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUpstream, perr.Kind)
	assert.Contains(t, perr.Body, "ACCESS_DENIED")
}
