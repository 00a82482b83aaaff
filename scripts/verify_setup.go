package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/crozone/ScrapeMonet/internal/config"
	"github.com/crozone/ScrapeMonet/internal/core"
	"github.com/crozone/ScrapeMonet/internal/crawlers"
	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
)

// 运行环境与站点可达性检查: go run ./scripts/verify_setup.go
// 只获取清单和首页,不下载任何资源文件
func main() {
	fmt.Println("==============================================")
	fmt.Println("  ScrapeMonet 环境验证")
	fmt.Println("==============================================")
	fmt.Println()

	allOK := true

	fmt.Printf("✅ Go版本: %s\n", runtime.Version())
	fmt.Printf("✅ 操作系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// 检查项目结构
	fmt.Println()
	fmt.Println("检查项目结构...")
	requiredDirs := []string{
		"cmd/scrapemonet",
		"internal/config",
		"internal/core",
		"internal/crawlers",
		"internal/models",
		"internal/utils",
	}
	for _, dir := range requiredDirs {
		if _, err := os.Stat(dir); err == nil {
			fmt.Printf("✅ %s/\n", dir)
		} else {
			fmt.Printf("❌ %s/ 不存在\n", dir)
			allOK = false
		}
	}

	// 检查站点来源
	fmt.Println()
	fmt.Println("检查站点来源...")
	headerManager, err := core.NewHeaderManager(nil, nil)
	if err != nil {
		fmt.Printf("❌ 创建HTTP头部管理器失败: %v\n", err)
		os.Exit(1)
	}

	site := config.DefaultSite()
	client := crawlers.NewHTTPClient()
	manifests := crawlers.NewManifestFetcher(client, headerManager)
	pages := crawlers.NewPageFetcher(client, headerManager)
	ctx := context.Background()

	for _, src := range site.Sources {
		sourceURL := site.SourceURL(src)
		var (
			urls []string
			err  error
		)
		switch src.(type) {
		case models.ManifestSource:
			urls, err = manifests.FetchManifest(ctx, sourceURL, site.BaseURL)
		case models.HTMLSource:
			var text string
			if text, err = pages.FetchPage(ctx, sourceURL); err == nil {
				urls = crawlers.ExtractAssetURLs(text, site.BaseURL)
			}
		}
		if err != nil {
			fmt.Printf("❌ %s: %v\n", sourceURL, err)
			allOK = false
			continue
		}
		fmt.Printf("✅ %s → %s/ (%d个文件)\n", sourceURL, src.Destination(), len(urls))
	}

	// 检查输出目录可写
	fmt.Println()
	probe, err := os.MkdirTemp(".", ".scrapemonet-probe-")
	if err == nil {
		err = utils.EnsureDir(probe)
		_ = os.RemoveAll(probe)
	}
	if err != nil {
		fmt.Printf("❌ 当前目录不可写: %v\n", err)
		allOK = false
	} else {
		fmt.Println("✅ 当前目录可写")
	}

	fmt.Println()
	fmt.Println("==============================================")
	if allOK {
		fmt.Println("✅ 环境验证通过!")
		fmt.Println()
		fmt.Println("下一步:")
		fmt.Println("  1. 运行 'go build ./cmd/scrapemonet' 构建项目")
		fmt.Println("  2. 运行 './scrapemonet --help' 查看帮助")
		os.Exit(0)
	}
	fmt.Println("❌ 环境验证失败,请解决上述问题。")
	os.Exit(1)
}
