package voice

import (
	"net/http"

	"github.com/warmtalk/backend/internal/logic/voice"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func TtsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TtsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := voice.NewTtsLogic(r.Context(), svcCtx)
		audio, contentType, err := l.Tts(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		// 直接回写音频字节，不走 JSON 包装
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(audio); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to write audio response: %v", err)
		}
	}
}
