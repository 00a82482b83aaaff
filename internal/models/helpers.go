package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ValidateURL 验证URL
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("无效的URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL必须是HTTP或HTTPS协议")
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL必须包含主机名")
	}
	return nil
}

// IsSuccessStatus 是否为2xx状态码
func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

// FileNameFromURL 取URL最后一个 "/" 之后的文本作为文件名
// 不做任何解码或清理,查询参数也会保留在文件名中
func FileNameFromURL(rawURL string) string {
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 {
		return rawURL[idx+1:]
	}
	return rawURL
}

// generateID 生成唯一ID
func generateID() string {
	return uuid.New().String()
}
