package provider

import "strings"

// Vendor names
const (
	VendorQiniu  = "qiniu"
	VendorAliyun = "aliyun"

	// DefaultVendor is used when the selector is empty or unrecognized.
	DefaultVendor = VendorQiniu
)

// Router resolves the active vendor for every capability from a single
// configured selector. The comparison is case-insensitive and anything
// other than "aliyun" falls back to the default vendor.
type Router struct {
	registry *Registry
	vendor   string
}

func NewRouter(registry *Registry, selector string) *Router {
	vendor := DefaultVendor
	if strings.EqualFold(strings.TrimSpace(selector), VendorAliyun) {
		vendor = VendorAliyun
	}
	return &Router{
		registry: registry,
		vendor:   vendor,
	}
}

// Vendor returns the resolved vendor name.
func (r *Router) Vendor() string {
	return r.vendor
}

// Registry exposes the underlying registry for service discovery.
func (r *Router) Registry() *Registry {
	return r.registry
}

func (r *Router) AI() (AIService, error) {
	return r.registry.GetAI(r.vendor)
}

func (r *Router) ASR() (AsrService, error) {
	return r.registry.GetASR(r.vendor)
}

func (r *Router) TTS() (TtsService, error) {
	return r.registry.GetTTS(r.vendor)
}

func (r *Router) OSS() (OssService, error) {
	return r.registry.GetOSS(r.vendor)
}
