package provider

import "fmt"

// Kind classifies an upstream failure.
type Kind int

const (
	// KindUpstream is the catch-all for unmapped upstream statuses.
	KindUpstream Kind = iota
	// KindTransport covers connection, DNS and timeout failures.
	KindTransport
	// KindProtocol covers responses the adapter could not interpret.
	KindProtocol
	// KindAuth covers rejected or expired credentials.
	KindAuth
	// KindRateLimit covers throttled calls.
	KindRateLimit
	// KindServer covers vendor-side internal errors.
	KindServer
	// KindInvalidInput covers requests the vendor rejected as malformed.
	KindInvalidInput
	// KindStorageAuth covers object-storage credential failures.
	KindStorageAuth
	// KindStorageQuota covers object-storage capacity refusals.
	KindStorageQuota
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindInvalidInput:
		return "invalid_input"
	case KindStorageAuth:
		return "storage_auth"
	case KindStorageQuota:
		return "storage_quota"
	default:
		return "upstream"
	}
}

// Capability names used in classified errors and service discovery.
const (
	CapabilityAI  = "ai"
	CapabilityASR = "asr"
	CapabilityTTS = "tts"
	CapabilityOSS = "oss"
)

// Error is a classified upstream failure. Status and Body carry the raw
// HTTP evidence when the failure came from a response.
type Error struct {
	Vendor     string
	Capability string
	Kind       Kind
	Status     int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Vendor, e.Capability, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// 每个厂商/能力一张状态码表，未命中的走 KindUpstream 并带上原始响应体。

var chatStatusKinds = map[int]Kind{
	400: KindInvalidInput,
	401: KindAuth,
	403: KindAuth,
	429: KindRateLimit,
	500: KindServer,
}

var voiceStatusKinds = map[int]Kind{
	400: KindInvalidInput,
	401: KindAuth,
	403: KindAuth,
	429: KindRateLimit,
	500: KindServer,
	503: KindServer,
}

var storageStatusKinds = map[int]Kind{
	401: KindStorageAuth,
	403: KindStorageAuth,
	413: KindStorageQuota,
	500: KindServer,
	503: KindServer,
}

func classifyStatus(vendor, capability string, table map[int]Kind, status int, body string) *Error {
	kind, ok := table[status]
	if !ok {
		kind = KindUpstream
	}
	return &Error{
		Vendor:     vendor,
		Capability: capability,
		Kind:       kind,
		Status:     status,
		Body:       body,
	}
}

func transportError(vendor, capability string, err error) *Error {
	return &Error{
		Vendor:     vendor,
		Capability: capability,
		Kind:       KindTransport,
		Err:        err,
	}
}

func protocolError(vendor, capability, body string, err error) *Error {
	return &Error{
		Vendor:     vendor,
		Capability: capability,
		Kind:       KindProtocol,
		Body:       body,
		Err:        err,
	}
}
