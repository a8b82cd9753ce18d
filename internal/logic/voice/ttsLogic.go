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

type TtsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTtsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TtsLogic {
	return &TtsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Tts synthesizes speech and returns the raw audio with its content type.
func (l *TtsLogic) Tts(req *types.TtsRequest) ([]byte, string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, "", fmt.Errorf("合成文本不能为空")
	}

	tts, err := l.svcCtx.Router.TTS()
	if err != nil {
		return nil, "", err
	}

	audio, err := tts.Synthesize(l.ctx, req.Text, req.Voice, req.Format)
	if err != nil {
		var perr *provider.Error
		if errors.As(err, &perr) {
			l.Errorf("synthesis failed, vendor: %s, kind: %s: %v", perr.Vendor, perr.Kind, err)
		} else {
			l.Errorf("synthesis failed: %v", err)
		}
		return nil, "", err
	}
	return audio, contentTypeForFormat(req.Format), nil
}

func contentTypeForFormat(format string) string {
	switch strings.ToLower(format) {
	case "", "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}
