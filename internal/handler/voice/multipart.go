package voice

import (
	"fmt"
	"io"
	"net/http"
)

// 单个音频文件最大 32MB
const maxUploadSize = 32 << 20

// readUploadedFile 从 multipart 表单中取出 file 字段的内容和文件名
func readUploadedFile(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", fmt.Errorf("解析上传表单失败: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("缺少 file 字段: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
