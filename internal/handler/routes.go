package handler

import (
	"net/http"

	"github.com/warmtalk/backend/internal/handler/auth"
	"github.com/warmtalk/backend/internal/handler/character"
	"github.com/warmtalk/backend/internal/handler/chat"
	"github.com/warmtalk/backend/internal/handler/health"
	"github.com/warmtalk/backend/internal/handler/service"
	"github.com/warmtalk/backend/internal/handler/voice"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/register",
				Handler: auth.RegisterHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/login",
				Handler: auth.LoginHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/auth"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/message",
				Handler: chat.ChatMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/send",
				Handler: chat.SendMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/history/:characterId",
				Handler: chat.ChatHistoryHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/chat"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: character.ListCharactersHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/",
				Handler: character.CreateCharacterHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/:id",
				Handler: character.DeleteCharacterHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/characters"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/tts",
				Handler: voice.TtsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/asr",
				Handler: voice.AsrHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/upload",
				Handler: voice.UploadHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chat",
				Handler: voice.VoiceChatHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/voice"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: service.GetServicesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/:type",
				Handler: service.GetServicesByTypeHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/:type/:name",
				Handler: service.GetServiceStatusHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/services"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: health.HealthHandler(serverCtx),
			},
		},
	)
}
