package voice

import (
	"net/http"
	"strconv"

	"github.com/warmtalk/backend/internal/logic/voice"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func VoiceChatHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, filename, err := readUploadedFile(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		userId := r.FormValue("userId")
		characterId, _ := strconv.ParseInt(r.FormValue("characterId"), 10, 64)

		l := voice.NewVoiceChatLogic(r.Context(), svcCtx)
		resp, err := l.VoiceChat(data, filename, userId, characterId)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
