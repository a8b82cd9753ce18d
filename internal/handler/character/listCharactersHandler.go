package character

import (
	"net/http"

	"github.com/warmtalk/backend/internal/logic/character"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListCharactersHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := character.NewListCharactersLogic(r.Context(), svcCtx)
		resp, err := l.ListCharacters()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
