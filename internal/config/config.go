package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	// 云厂商选择，qiniu 或 aliyun，默认 qiniu
	Cloud CloudConfig `json:"cloud,omitempty"`

	Database DatabaseConfig `json:"database,omitempty"`

	AI AIConfig `json:"ai,omitempty"`

	// 各厂商服务配置
	Providers ProviderConfig `json:"providers,omitempty"`
}

type CloudConfig struct {
	Provider string `json:"provider,omitempty"`
}

type DatabaseConfig struct {
	Driver     string `json:"driver,omitempty"`
	DataSource string `json:"dataSource,omitempty"`
}

type AIConfig struct {
	MaxResponseLength int `json:"maxResponseLength,omitempty"`
}

type ProviderConfig struct {
	Qiniu  QiniuConfig  `json:"qiniu,omitempty"`
	Aliyun AliyunConfig `json:"aliyun,omitempty"`
}

type QiniuConfig struct {
	APIKey  string `json:"apiKey,omitempty"`  // AI/ASR/TTS 共用的 API 密钥
	BaseURL string `json:"baseUrl,omitempty"` // 已含版本路径
	Model   string `json:"model,omitempty"`

	// 对象存储
	AccessKey string `json:"accessKey,omitempty"`
	SecretKey string `json:"secretKey,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	Domain    string `json:"domain,omitempty"`

	// 语音合成
	DefaultVoice    string `json:"defaultVoice,omitempty"`
	DefaultFormat   string `json:"defaultFormat,omitempty"`
	UseStreamingTts bool   `json:"useStreamingTts,omitempty"`
}

type AliyunConfig struct {
	APIKey   string `json:"apiKey,omitempty"` // DashScope API 密钥
	BaseURL  string `json:"baseUrl,omitempty"`
	Model    string `json:"model,omitempty"`
	TtsModel string `json:"ttsModel,omitempty"`

	// 语音识别
	AsrAppKey  string `json:"asrAppKey,omitempty"`
	AsrToken   string `json:"asrToken,omitempty"`
	AsrBaseURL string `json:"asrBaseUrl,omitempty"`

	DefaultVoice string `json:"defaultVoice,omitempty"`

	Oss AliyunOssConfig `json:"oss,omitempty"`
}

type AliyunOssConfig struct {
	Endpoint  string `json:"endpoint,omitempty"`
	AccessKey string `json:"accessKey,omitempty"`
	SecretKey string `json:"secretKey,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	Domain    string `json:"domain,omitempty"`
}
