package crawlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ManifestFetcher 清单获取器
type ManifestFetcher struct {
	client  *http.Client
	headers models.HeaderProvider
}

// NewManifestFetcher 创建清单获取器
func NewManifestFetcher(client *http.Client, headers models.HeaderProvider) *ManifestFetcher {
	return &ManifestFetcher{client: client, headers: headers}
}

// FetchManifest 获取清单并返回下载URL列表
// 每个相对路径直接拼接在 downloadBasePath 之后,不补充也不合并分隔符
//
// 错误:
//   - *models.FetchError: 网络错误或非2xx状态码
//   - *models.ManifestFormatError: 内容不是JSON字符串数组
func (f *ManifestFetcher) FetchManifest(ctx context.Context, manifestURL string, downloadBasePath string) ([]string, error) {
	req, err := newGetRequest(ctx, manifestURL, f.headers)
	if err != nil {
		return nil, &models.FetchError{URL: manifestURL, Cause: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &models.FetchError{URL: manifestURL, Cause: err}
	}
	defer resp.Body.Close()

	if !models.IsSuccessStatus(resp.StatusCode) {
		return nil, &models.FetchError{
			URL:        manifestURL,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("非成功状态码: %s", resp.Status),
		}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, &models.FetchError{URL: manifestURL, StatusCode: resp.StatusCode, Cause: err}
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &models.FetchError{URL: manifestURL, StatusCode: resp.StatusCode, Cause: fmt.Errorf("读取清单失败: %w", err)}
	}

	paths, err := ParseManifest(data)
	if err != nil {
		return nil, &models.ManifestFormatError{URL: manifestURL, Cause: err}
	}

	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		urls = append(urls, downloadBasePath+p)
	}

	utils.Debugf("清单 %s 包含 %d 个文件", manifestURL, len(urls))
	return urls, nil
}

// ParseManifest 将清单内容解码为字符串数组
// 顶层为null或数组中含有非字符串元素(包括null)都视为格式错误
func ParseManifest(data []byte) ([]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var items []*string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errors.New("清单为null,期望字符串数组")
	}

	paths := make([]string, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("清单第%d项为null,期望字符串", i+1)
		}
		paths[i] = *item
	}
	return paths, nil
}
