package voice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	"github.com/warmtalk/backend/pkg/provider"

	"github.com/zeromicro/go-zero/core/logx"
)

type AsrLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAsrLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AsrLogic {
	return &AsrLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Asr 先上传音频再按 URL 转写，两步都走当前选中的厂商
func (l *AsrLogic) Asr(data []byte, filename string) (*types.AsrResponse, error) {
	transcript, err := l.transcribe(data, filename)
	if err != nil {
		return nil, err
	}
	return &types.AsrResponse{Text: transcript}, nil
}

func (l *AsrLogic) transcribe(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("音频内容不能为空")
	}

	oss, err := l.svcCtx.Router.OSS()
	if err != nil {
		return "", err
	}
	audioURL, err := oss.Upload(l.ctx, data, filename)
	if err != nil {
		l.logProviderError("upload failed", err)
		return "", err
	}
	l.Infof("audio uploaded for transcription: %s", audioURL)

	asr, err := l.svcCtx.Router.ASR()
	if err != nil {
		return "", err
	}
	transcript, err := asr.TranscribeURL(l.ctx, audioURL)
	if err != nil {
		l.logProviderError("transcription failed", err)
		return "", err
	}
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("语音转文本失败，未识别到有效内容")
	}
	return transcript, nil
}

func (l *AsrLogic) logProviderError(msg string, err error) {
	var perr *provider.Error
	if errors.As(err, &perr) {
		l.Errorf("%s, vendor: %s, kind: %s: %v", msg, perr.Vendor, perr.Kind, err)
	} else {
		l.Errorf("%s: %v", msg, err)
	}
}
