package core

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/rs/zerolog"
)

// fetcherFunc 把函数适配为 FileFetcher
type fetcherFunc func(ctx context.Context, fileURL, destinationDir string) (*models.AssetFile, error)

func (f fetcherFunc) DownloadFile(ctx context.Context, fileURL, destinationDir string) (*models.AssetFile, error) {
	return f(ctx, fileURL, destinationDir)
}

// captureLogs 把全局日志重定向到缓冲区,测试结束后恢复
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := utils.Logger
	utils.Logger = zerolog.New(zerolog.SyncWriter(buf)).Level(zerolog.DebugLevel)
	t.Cleanup(func() { utils.Logger = prev })
	return buf
}

// errorLinesFor 统计引用指定URL的error级别日志行数
func errorLinesFor(t *testing.T, logs *bytes.Buffer, url string) int {
	t.Helper()
	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(logs.Bytes()))
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("无法解析日志行 %q: %v", scanner.Text(), err)
		}
		if entry["level"] == "error" && entry["url"] == url {
			count++
		}
	}
	return count
}
