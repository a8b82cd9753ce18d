package provider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AliyunOssConfig carries the storage credentials, bucket, region
// endpoint and the public download domain.
type AliyunOssConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Endpoint  string
	Domain    string
}

// 阿里云对象存储服务
type AliyunOss struct {
	cfg    AliyunOssConfig
	client *http.Client
}

func NewAliyunOss(cfg AliyunOssConfig) *AliyunOss {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "oss-cn-shanghai.aliyuncs.com"
	}
	return &AliyunOss{
		cfg: cfg,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *AliyunOss) Name() string {
	return VendorAliyun
}

// sign builds the "OSS AccessKey:Signature" authorization value for a
// PUT of the given object.
func (p *AliyunOss) sign(contentType, date, key string) string {
	toSign := "PUT\n\n" + contentType + "\n" + date + "\n/" + p.cfg.Bucket + "/" + key

	mac := hmac.New(sha1.New, []byte(p.cfg.SecretKey))
	mac.Write([]byte(toSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return "OSS " + p.cfg.AccessKey + ":" + signature
}

// Upload stores the blob under a random key and returns the public URL
// on the configured domain.
func (p *AliyunOss) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", &Error{
			Vendor:     VendorAliyun,
			Capability: CapabilityOSS,
			Kind:       KindInvalidInput,
			Err:        fmt.Errorf("empty file"),
		}
	}

	ext := strings.ToLower(path.Ext(filename))
	key := uuid.New().String() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	date := time.Now().UTC().Format(http.TimeFormat)

	url := fmt.Sprintf("https://%s.%s/%s", p.cfg.Bucket, p.cfg.Endpoint, key)
	httpReq, err := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(data))
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityOSS, err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Date", date)
	httpReq.Header.Set("Authorization", p.sign(contentType, date, key))

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", transportError(VendorAliyun, CapabilityOSS, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(VendorAliyun, CapabilityOSS, storageStatusKinds, resp.StatusCode, string(body))
	}

	return strings.TrimRight(p.cfg.Domain, "/") + "/" + key, nil
}
