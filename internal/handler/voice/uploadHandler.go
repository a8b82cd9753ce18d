package voice

import (
	"net/http"

	"github.com/warmtalk/backend/internal/logic/voice"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func UploadHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, filename, err := readUploadedFile(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := voice.NewUploadLogic(r.Context(), svcCtx)
		resp, err := l.Upload(data, filename)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
