package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/pkg/companion"
	pkgmodel "github.com/warmtalk/backend/pkg/model"
	"github.com/warmtalk/backend/pkg/provider"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type stubAI struct {
	reply string
	err   error
	calls int
}

func (s *stubAI) Name() string { return provider.VendorQiniu }

func (s *stubAI) GenerateResponse(ctx context.Context, persona *pkgmodel.Persona, history []*pkgmodel.Turn) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// newTestContext 用共享缓存的内存库搭一个完整的服务上下文
func newTestContext(t *testing.T, ai provider.AIService) *svc.ServiceContext {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn := sqlx.NewSqlConn("sqlite3", dsn)
	model.MustInitSchema(conn)

	registry := provider.NewRegistry()
	if ai != nil {
		registry.RegisterAI(provider.VendorQiniu, ai)
	}

	return &svc.ServiceContext{
		Registry:          registry,
		Router:            provider.NewRouter(registry, provider.VendorQiniu),
		Filter:            companion.NewFilter(),
		CharactersModel:   model.NewCharactersModel(conn),
		ChatMessagesModel: model.NewChatMessagesModel(conn),
		UsersModel:        model.NewUsersModel(conn),
		UserMemoryModel:   model.NewUserMemoryModel(conn),
	}
}
