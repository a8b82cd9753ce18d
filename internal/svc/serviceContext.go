package svc

import (
	"fmt"
	"os"

	"github.com/warmtalk/backend/internal/config"
	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/pkg/companion"
	"github.com/warmtalk/backend/pkg/provider"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

type ServiceContext struct {
	Config   config.Config
	Registry *provider.Registry
	Router   *provider.Router
	Filter   *companion.Filter

	CharactersModel   *model.CharactersModel
	ChatMessagesModel *model.ChatMessagesModel
	UsersModel        *model.UsersModel
	UserMemoryModel   *model.UserMemoryModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	registry := provider.NewRegistry()

	// 注册七牛系列服务
	qiniuAPIKey := c.Providers.Qiniu.APIKey
	if qiniuAPIKey == "" {
		qiniuAPIKey = os.Getenv("QINIU_API_KEY")
	}
	if qiniuAPIKey != "" {
		registry.RegisterAI(provider.VendorQiniu, provider.NewQiniuAI(provider.QiniuAIConfig{
			APIKey:  qiniuAPIKey,
			BaseURL: c.Providers.Qiniu.BaseURL,
			Model:   c.Providers.Qiniu.Model,
		}))
		registry.RegisterASR(provider.VendorQiniu, provider.NewQiniuAsr(provider.QiniuAsrConfig{
			APIKey:  qiniuAPIKey,
			BaseURL: c.Providers.Qiniu.BaseURL,
		}))
		registry.RegisterTTS(provider.VendorQiniu, provider.NewQiniuTts(provider.QiniuTtsConfig{
			APIKey:        qiniuAPIKey,
			BaseURL:       c.Providers.Qiniu.BaseURL,
			DefaultVoice:  c.Providers.Qiniu.DefaultVoice,
			DefaultFormat: c.Providers.Qiniu.DefaultFormat,
			UseStreaming:  c.Providers.Qiniu.UseStreamingTts,
		}))
	}

	qiniuAccessKey := c.Providers.Qiniu.AccessKey
	if qiniuAccessKey == "" {
		qiniuAccessKey = os.Getenv("QINIU_ACCESS_KEY")
	}
	qiniuSecretKey := c.Providers.Qiniu.SecretKey
	if qiniuSecretKey == "" {
		qiniuSecretKey = os.Getenv("QINIU_SECRET_KEY")
	}
	if qiniuAccessKey != "" && qiniuSecretKey != "" {
		registry.RegisterOSS(provider.VendorQiniu, provider.NewQiniuOss(provider.QiniuOssConfig{
			AccessKey: qiniuAccessKey,
			SecretKey: qiniuSecretKey,
			Bucket:    c.Providers.Qiniu.Bucket,
			Domain:    c.Providers.Qiniu.Domain,
		}))
	}

	// 注册阿里云系列服务
	aliyunAPIKey := c.Providers.Aliyun.APIKey
	if aliyunAPIKey == "" {
		aliyunAPIKey = os.Getenv("DASHSCOPE_API_KEY")
	}
	if aliyunAPIKey != "" {
		registry.RegisterAI(provider.VendorAliyun, provider.NewAliyunAI(provider.AliyunAIConfig{
			APIKey:            aliyunAPIKey,
			BaseURL:           c.Providers.Aliyun.BaseURL,
			Model:             c.Providers.Aliyun.Model,
			MaxResponseLength: c.AI.MaxResponseLength,
		}))
		registry.RegisterTTS(provider.VendorAliyun, provider.NewAliyunTts(provider.AliyunTtsConfig{
			APIKey:       aliyunAPIKey,
			BaseURL:      c.Providers.Aliyun.BaseURL,
			Model:        c.Providers.Aliyun.TtsModel,
			DefaultVoice: c.Providers.Aliyun.DefaultVoice,
		}))
	}
	if c.Providers.Aliyun.AsrAppKey != "" {
		registry.RegisterASR(provider.VendorAliyun, provider.NewAliyunAsr(provider.AliyunAsrConfig{
			AppKey:  c.Providers.Aliyun.AsrAppKey,
			Token:   c.Providers.Aliyun.AsrToken,
			BaseURL: c.Providers.Aliyun.AsrBaseURL,
		}))
	}
	if c.Providers.Aliyun.Oss.AccessKey != "" && c.Providers.Aliyun.Oss.SecretKey != "" {
		registry.RegisterOSS(provider.VendorAliyun, provider.NewAliyunOss(provider.AliyunOssConfig{
			AccessKey: c.Providers.Aliyun.Oss.AccessKey,
			SecretKey: c.Providers.Aliyun.Oss.SecretKey,
			Bucket:    c.Providers.Aliyun.Oss.Bucket,
			Endpoint:  c.Providers.Aliyun.Oss.Endpoint,
			Domain:    c.Providers.Aliyun.Oss.Domain,
		}))
	}

	router := provider.NewRouter(registry, c.Cloud.Provider)
	// 选中的厂商必须至少配置了对话能力，否则直接启动失败
	if _, err := router.AI(); err != nil {
		logx.Must(fmt.Errorf("cloud provider %q is not configured: %w", router.Vendor(), err))
	}

	driver := c.Database.Driver
	if driver == "" {
		driver = "sqlite3"
	}
	dataSource := c.Database.DataSource
	if dataSource == "" {
		dataSource = "warmtalk.db"
	}
	conn := sqlx.NewSqlConn(driver, dataSource)
	model.MustInitSchema(conn)

	return &ServiceContext{
		Config:            c,
		Registry:          registry,
		Router:            router,
		Filter:            companion.NewFilter(),
		CharactersModel:   model.NewCharactersModel(conn),
		ChatMessagesModel: model.NewChatMessagesModel(conn),
		UsersModel:        model.NewUsersModel(conn),
		UserMemoryModel:   model.NewUserMemoryModel(conn),
	}
}
