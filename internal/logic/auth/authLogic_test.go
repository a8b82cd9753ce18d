package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

func newTestContext(t *testing.T) *svc.ServiceContext {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn := sqlx.NewSqlConn("sqlite3", dsn)
	model.MustInitSchema(conn)

	return &svc.ServiceContext{
		UsersModel: model.NewUsersModel(conn),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svcCtx := newTestContext(t)
	ctx := context.Background()

	resp, err := NewRegisterLogic(ctx, svcCtx).Register(&types.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Code)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "alice", resp.Data.Username)
	assert.NotEmpty(t, resp.Data.UserId)

	login, err := NewLoginLogic(ctx, svcCtx).Login(&types.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, login.Code)
	require.NotNil(t, login.Data)
	assert.Equal(t, resp.Data.UserId, login.Data.UserId)

	// 密码以哈希形式存储
	user, err := svcCtx.UsersModel.FindOneByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterDuplicate(t *testing.T) {
	svcCtx := newTestContext(t)
	ctx := context.Background()

	_, err := NewRegisterLogic(ctx, svcCtx).Register(&types.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pw",
	})
	require.NoError(t, err)

	resp, err := NewRegisterLogic(ctx, svcCtx).Register(&types.RegisterRequest{
		Username: "bob",
		Email:    "other@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Code)

	resp, err = NewRegisterLogic(ctx, svcCtx).Register(&types.RegisterRequest{
		Username: "bob2",
		Email:    "bob@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Code)
}

func TestRegisterEmptyFields(t *testing.T) {
	svcCtx := newTestContext(t)

	resp, err := NewRegisterLogic(context.Background(), svcCtx).Register(&types.RegisterRequest{
		Username: " ",
		Email:    "a@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svcCtx := newTestContext(t)
	ctx := context.Background()

	_, err := NewRegisterLogic(ctx, svcCtx).Register(&types.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "right",
	})
	require.NoError(t, err)

	resp, err := NewLoginLogic(ctx, svcCtx).Login(&types.LoginRequest{
		Username: "carol",
		Password: "wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestLoginUnknownUser(t *testing.T) {
	svcCtx := newTestContext(t)

	resp, err := NewLoginLogic(context.Background(), svcCtx).Login(&types.LoginRequest{
		Username: "nobody",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Code)
}
