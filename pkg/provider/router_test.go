package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmtalk/backend/pkg/model"
)

type stubAI struct{ name string }

func (s *stubAI) Name() string { return s.name }
func (s *stubAI) GenerateResponse(ctx context.Context, persona *model.Persona, history []*model.Turn) (string, error) {
	return "stub", nil
}

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.RegisterAI(VendorQiniu, &stubAI{name: "qiniu-ai"})
	r.RegisterAI(VendorAliyun, &stubAI{name: "aliyun-ai"})
	return r
}

func TestRouterSelector(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{"qiniu", VendorQiniu},
		{"aliyun", VendorAliyun},
		{"ALIYUN", VendorAliyun},
		{"Aliyun", VendorAliyun},
		{"  aliyun  ", VendorAliyun},
		{"", VendorQiniu},
		{"tencent", VendorQiniu},
		{"QINIU", VendorQiniu},
	}

	registry := newTestRegistry()
	for _, tt := range tests {
		t.Run("selector_"+tt.selector, func(t *testing.T) {
			r := NewRouter(registry, tt.selector)
			assert.Equal(t, tt.want, r.Vendor())

			ai, err := r.AI()
			require.NoError(t, err)
			assert.Equal(t, tt.want+"-ai", ai.Name())
		})
	}
}

func TestRouterMissingVendor(t *testing.T) {
	registry := NewRegistry()
	r := NewRouter(registry, "aliyun")

	_, err := r.AI()
	assert.Error(t, err)
	_, err = r.ASR()
	assert.Error(t, err)
	_, err = r.TTS()
	assert.Error(t, err)
	_, err = r.OSS()
	assert.Error(t, err)
}

func TestRegistryDiscovery(t *testing.T) {
	registry := newTestRegistry()

	all := registry.GetAllProviders()
	assert.Len(t, all, 2)

	ais := registry.GetProvidersByType(CapabilityAI)
	assert.Len(t, ais, 2)
	assert.Empty(t, registry.GetProvidersByType(CapabilityTTS))
	assert.Empty(t, registry.GetProvidersByType("bogus"))

	pi, err := registry.GetProviderInfo(CapabilityAI, VendorQiniu)
	require.NoError(t, err)
	assert.Equal(t, VendorQiniu, pi.Name)
	assert.Equal(t, "online", pi.Status)

	_, err = registry.GetProviderInfo(CapabilityASR, VendorQiniu)
	assert.Error(t, err)
}
