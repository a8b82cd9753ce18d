package character

import (
	"net/http"

	"github.com/warmtalk/backend/internal/logic/character"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func CreateCharacterHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateCharacterRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := character.NewCreateCharacterLogic(r.Context(), svcCtx)
		resp, err := l.CreateCharacter(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
