package crawlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html/charset"
)

// PageFetcher HTML页面获取器(使用Colly)
type PageFetcher struct {
	client  *http.Client
	headers models.HeaderProvider
}

// NewPageFetcher 创建页面获取器
func NewPageFetcher(client *http.Client, headers models.HeaderProvider) *PageFetcher {
	return &PageFetcher{client: client, headers: headers}
}

// newCollector 每次获取使用独立的collector,避免Colly的访问历史影响重复获取
func (f *PageFetcher) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.MaxBodySize(0),
		colly.ParseHTTPErrorResponse(),
		colly.AllowURLRevisit(),
	)
	if f.client != nil {
		c.SetClient(f.client)
	}
	return c
}

// FetchPage 获取页面并返回UTF-8文本
// 非2xx状态码或网络错误返回 *models.FetchError
func (f *PageFetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &models.FetchError{URL: pageURL, Cause: err}
	}

	var (
		text        string
		contentType string
		fetchErr    error
	)

	c := f.newCollector(ctx)

	c.OnRequest(func(r *colly.Request) {
		if f.headers != nil {
			headers, err := f.headers.GetHeaders()
			if err != nil {
				fetchErr = &models.FetchError{URL: pageURL, Cause: fmt.Errorf("应用HTTP头部失败: %w", err)}
				r.Abort()
				return
			}
			for name, values := range headers {
				if len(values) > 0 {
					r.Headers.Set(name, values[0])
				}
			}
		}
		utils.Debugf("访问: %s", r.URL.String())
	})

	// Colly会按Content-Type自动转码,但br/deflate响应此时仍是压缩数据。
	// 这里取走Content-Type,转码在解压之后由toUTF8完成
	c.OnResponseHeaders(func(r *colly.Response) {
		contentType = r.Headers.Get("Content-Type")
		r.Headers.Del("Content-Type")
	})

	c.OnResponse(func(r *colly.Response) {
		if !models.IsSuccessStatus(r.StatusCode) {
			fetchErr = &models.FetchError{
				URL:        pageURL,
				StatusCode: r.StatusCode,
				Cause:      fmt.Errorf("非成功状态码: %d", r.StatusCode),
			}
			return
		}

		body := r.Body
		if encoding := r.Headers.Get("Content-Encoding"); encoding != "" {
			decompressed, err := decompressBytes(encoding, body)
			switch {
			case err == nil:
				body = decompressed
			case isGzipEncoding(encoding):
				// Colly已经解压过gzip,此时使用原始body
				utils.Debugf("页面 %s 已由Colly解压 (编码=%s): %v", pageURL, encoding, err)
			default:
				fetchErr = &models.FetchError{URL: pageURL, StatusCode: r.StatusCode, Cause: err}
				return
			}
		}

		decoded, err := toUTF8(body, contentType)
		if err != nil {
			fetchErr = &models.FetchError{URL: pageURL, StatusCode: r.StatusCode, Cause: err}
			return
		}
		text = decoded
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = &models.FetchError{URL: pageURL, StatusCode: r.StatusCode, Cause: err}
	})

	if err := c.Visit(pageURL); err != nil && fetchErr == nil {
		fetchErr = &models.FetchError{URL: pageURL, Cause: err}
	}
	if fetchErr != nil {
		return "", fetchErr
	}

	utils.Debugf("页面 %s 获取完成, 长度: %d", pageURL, len(text))
	return text, nil
}

// toUTF8 按Content-Type(缺失时嗅探内容)把页面转码为UTF-8
func toUTF8(body []byte, contentType string) (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", fmt.Errorf("页面转码失败: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("页面转码失败: %w", err)
	}
	return string(decoded), nil
}
