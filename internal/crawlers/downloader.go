package crawlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/dustin/go-humanize"
)

// FileDownloader 单文件下载器
type FileDownloader struct {
	client  *http.Client
	headers models.HeaderProvider
}

// NewFileDownloader 创建单文件下载器
func NewFileDownloader(client *http.Client, headers models.HeaderProvider) *FileDownloader {
	return &FileDownloader{client: client, headers: headers}
}

// DownloadFile 下载URL到目标目录
// 处理流程:
//  1. 取URL最后一个 "/" 之后的文本作为文件名
//  2. 创建(或覆盖)目标文件
//  3. GET请求,要求2xx状态码
//  4. 响应体流式写入文件后关闭
//
// 任何一步失败都会删除已创建的文件,并返回 *models.DownloadError。
// 失败日志由调用方负责记录。
func (d *FileDownloader) DownloadFile(ctx context.Context, fileURL string, destinationDir string) (*models.AssetFile, error) {
	name := models.FileNameFromURL(fileURL)
	if name == "" || name == "." || name == ".." {
		return nil, &models.DownloadError{URL: fileURL, Cause: errors.New("无法从URL中提取文件名")}
	}
	filePath := filepath.Join(destinationDir, name)

	utils.Logger.Info().Str("url", fileURL).Msgf("⬇️  正在下载文件 %s", fileURL)

	file, err := os.Create(filePath)
	if err != nil {
		return nil, &models.DownloadError{URL: fileURL, FilePath: filePath, Cause: fmt.Errorf("创建文件失败: %w", err)}
	}

	size, contentType, err := d.fetchTo(ctx, fileURL, filePath, file)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = &models.DownloadError{URL: fileURL, FilePath: filePath, Cause: fmt.Errorf("关闭文件失败: %w", closeErr)}
	}
	if err != nil {
		if rmErr := os.Remove(filePath); rmErr != nil && !os.IsNotExist(rmErr) {
			utils.Debugf("删除未完成的文件失败 [%s]: %v", filePath, rmErr)
		}
		return nil, err
	}

	utils.Logger.Info().
		Str("url", fileURL).
		Str("dest", filePath).
		Int64("bytes", size).
		Msgf("📥 已下载文件 %s (%s)", fileURL, humanize.Bytes(uint64(size)))

	return &models.AssetFile{
		URL:          fileURL,
		FilePath:     filePath,
		Size:         size,
		ContentType:  contentType,
		DownloadedAt: time.Now(),
	}, nil
}

// fetchTo 发起请求并把解压后的响应体写入w
// 返回写入的字节数和Content-Type
func (d *FileDownloader) fetchTo(ctx context.Context, fileURL, filePath string, w io.Writer) (int64, string, error) {
	req, err := newGetRequest(ctx, fileURL, d.headers)
	if err != nil {
		return 0, "", &models.DownloadError{URL: fileURL, FilePath: filePath, Cause: err}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, "", &models.DownloadError{URL: fileURL, FilePath: filePath, Cause: err}
	}
	defer resp.Body.Close()

	if !models.IsSuccessStatus(resp.StatusCode) {
		return 0, "", &models.DownloadError{
			URL:        fileURL,
			FilePath:   filePath,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("非成功状态码: %s", resp.Status),
		}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return 0, "", &models.DownloadError{URL: fileURL, FilePath: filePath, Cause: err}
	}
	defer body.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return n, "", &models.DownloadError{URL: fileURL, FilePath: filePath, Cause: fmt.Errorf("写入文件失败: %w", err)}
	}

	return n, resp.Header.Get("Content-Type"), nil
}
