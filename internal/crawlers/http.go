package crawlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crozone/ScrapeMonet/internal/models"
)

// NewHTTPClient 创建共享的HTTP客户端
// 不设置超时
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}

// newGetRequest 创建GET请求并应用自定义头部
func newGetRequest(ctx context.Context, rawURL string, headers models.HeaderProvider) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	if err := models.ApplyHeaders(req, headers); err != nil {
		return nil, fmt.Errorf("应用HTTP头部失败: %w", err)
	}
	return req, nil
}
