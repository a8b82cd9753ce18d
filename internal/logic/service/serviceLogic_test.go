package service

import (
	"context"
	"testing"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	pkgmodel "github.com/warmtalk/backend/pkg/model"
	"github.com/warmtalk/backend/pkg/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAI struct{}

func (s *stubAI) Name() string { return provider.VendorQiniu }
func (s *stubAI) GenerateResponse(ctx context.Context, persona *pkgmodel.Persona, history []*pkgmodel.Turn) (string, error) {
	return "好", nil
}

type stubTts struct{}

func (s *stubTts) Name() string { return provider.VendorAliyun }
func (s *stubTts) Synthesize(ctx context.Context, text, voice, format string) ([]byte, error) {
	return []byte("audio"), nil
}

func newTestContext() *svc.ServiceContext {
	registry := provider.NewRegistry()
	registry.RegisterAI(provider.VendorQiniu, &stubAI{})
	registry.RegisterTTS(provider.VendorAliyun, &stubTts{})
	return &svc.ServiceContext{Registry: registry}
}

func TestGetServices(t *testing.T) {
	svcCtx := newTestContext()

	resp, err := NewGetServicesLogic(context.Background(), svcCtx).GetServices()
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Code)
	assert.Len(t, resp.Data, 2)
}

func TestGetServicesByType(t *testing.T) {
	svcCtx := newTestContext()

	resp, err := NewGetServicesByTypeLogic(context.Background(), svcCtx).GetServicesByType(&types.ServicesByTypeRequest{Type: "ai"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, provider.VendorQiniu, resp.Data[0].Name)
}

func TestGetServiceStatus(t *testing.T) {
	svcCtx := newTestContext()
	l := NewGetServiceStatusLogic(context.Background(), svcCtx)

	resp, err := l.GetServiceStatus(&types.ServiceStatusRequest{Type: "tts", Name: provider.VendorAliyun})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Code)
	require.NotNil(t, resp.Data)
	assert.Equal(t, provider.VendorAliyun, resp.Data.Name)

	resp, err = l.GetServiceStatus(&types.ServiceStatusRequest{Type: "asr", Name: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Code)
	assert.Nil(t, resp.Data)
}
