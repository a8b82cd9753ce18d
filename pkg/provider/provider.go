package provider

import (
	"context"
	"fmt"

	"github.com/warmtalk/backend/pkg/model"
)

// AIService generates an in-character reply from a persona and the
// conversation so far.
type AIService interface {
	Name() string
	GenerateResponse(ctx context.Context, persona *model.Persona, history []*model.Turn) (string, error)
}

// AsrService transcribes audio reachable at a public URL.
type AsrService interface {
	Name() string
	TranscribeURL(ctx context.Context, audioURL string) (string, error)
}

// TtsService synthesizes speech audio for a text.
type TtsService interface {
	Name() string
	Synthesize(ctx context.Context, text, voice, format string) ([]byte, error)
}

// OssService stores a blob and returns its public URL.
type OssService interface {
	Name() string
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// Registry holds the registered services per capability, keyed by vendor.
type Registry struct {
	aiServices  map[string]AIService
	asrServices map[string]AsrService
	ttsServices map[string]TtsService
	ossServices map[string]OssService
}

func NewRegistry() *Registry {
	return &Registry{
		aiServices:  make(map[string]AIService),
		asrServices: make(map[string]AsrService),
		ttsServices: make(map[string]TtsService),
		ossServices: make(map[string]OssService),
	}
}

func (r *Registry) RegisterAI(vendor string, svc AIService) {
	r.aiServices[vendor] = svc
}

func (r *Registry) RegisterASR(vendor string, svc AsrService) {
	r.asrServices[vendor] = svc
}

func (r *Registry) RegisterTTS(vendor string, svc TtsService) {
	r.ttsServices[vendor] = svc
}

func (r *Registry) RegisterOSS(vendor string, svc OssService) {
	r.ossServices[vendor] = svc
}

func (r *Registry) GetAI(vendor string) (AIService, error) {
	if svc, ok := r.aiServices[vendor]; ok {
		return svc, nil
	}
	return nil, fmt.Errorf("AI service '%s' not found", vendor)
}

func (r *Registry) GetASR(vendor string) (AsrService, error) {
	if svc, ok := r.asrServices[vendor]; ok {
		return svc, nil
	}
	return nil, fmt.Errorf("ASR service '%s' not found", vendor)
}

func (r *Registry) GetTTS(vendor string) (TtsService, error) {
	if svc, ok := r.ttsServices[vendor]; ok {
		return svc, nil
	}
	return nil, fmt.Errorf("TTS service '%s' not found", vendor)
}

func (r *Registry) GetOSS(vendor string) (OssService, error) {
	if svc, ok := r.ossServices[vendor]; ok {
		return svc, nil
	}
	return nil, fmt.Errorf("OSS service '%s' not found", vendor)
}

// 服务发现相关方法

// ProviderInfo 表示一个已注册服务的信息
type ProviderInfo struct {
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	Capabilities []string          `json:"capabilities,omitempty"`
	Config       map[string]string `json:"config,omitempty"`
}

var capabilityOps = map[string][]string{
	CapabilityAI:  {"generate"},
	CapabilityASR: {"transcribe_url"},
	CapabilityTTS: {"synthesize"},
	CapabilityOSS: {"upload"},
}

func info(vendor, typ string) ProviderInfo {
	return ProviderInfo{
		Name:         vendor,
		Type:         typ,
		Status:       "online",
		Capabilities: capabilityOps[typ],
	}
}

// GetAllProviders 获取所有已注册服务的信息
func (r *Registry) GetAllProviders() []ProviderInfo {
	var providers []ProviderInfo
	for vendor := range r.aiServices {
		providers = append(providers, info(vendor, CapabilityAI))
	}
	for vendor := range r.asrServices {
		providers = append(providers, info(vendor, CapabilityASR))
	}
	for vendor := range r.ttsServices {
		providers = append(providers, info(vendor, CapabilityTTS))
	}
	for vendor := range r.ossServices {
		providers = append(providers, info(vendor, CapabilityOSS))
	}
	return providers
}

// GetProvidersByType 根据能力类型获取服务信息
func (r *Registry) GetProvidersByType(providerType string) []ProviderInfo {
	var providers []ProviderInfo
	switch providerType {
	case CapabilityAI:
		for vendor := range r.aiServices {
			providers = append(providers, info(vendor, CapabilityAI))
		}
	case CapabilityASR:
		for vendor := range r.asrServices {
			providers = append(providers, info(vendor, CapabilityASR))
		}
	case CapabilityTTS:
		for vendor := range r.ttsServices {
			providers = append(providers, info(vendor, CapabilityTTS))
		}
	case CapabilityOSS:
		for vendor := range r.ossServices {
			providers = append(providers, info(vendor, CapabilityOSS))
		}
	}
	return providers
}

// GetProviderInfo 获取特定服务的信息
func (r *Registry) GetProviderInfo(providerType, vendor string) (*ProviderInfo, error) {
	var ok bool
	switch providerType {
	case CapabilityAI:
		_, ok = r.aiServices[vendor]
	case CapabilityASR:
		_, ok = r.asrServices[vendor]
	case CapabilityTTS:
		_, ok = r.ttsServices[vendor]
	case CapabilityOSS:
		_, ok = r.ossServices[vendor]
	}
	if !ok {
		return nil, fmt.Errorf("provider '%s' of type '%s' not found", vendor, providerType)
	}
	pi := info(vendor, providerType)
	return &pi, nil
}
