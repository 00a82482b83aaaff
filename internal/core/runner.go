package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/crozone/ScrapeMonet/internal/config"
	"github.com/crozone/ScrapeMonet/internal/crawlers"
	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// ManifestFetcher 获取清单并返回资源URL列表
type ManifestFetcher interface {
	FetchManifest(ctx context.Context, manifestURL string, downloadBasePath string) ([]string, error)
}

// PageFetcher 获取页面文本
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

// Runner 抓取编排器
// 每个来源一条流水线(清单/页面 → 批量下载),所有流水线并发执行
type Runner struct {
	site      *config.Site
	manifests ManifestFetcher
	pages     PageFetcher
	batch     *BatchDownloader
	outputDir string
	reporter  *utils.Reporter
}

// NewRunner 创建编排器
// 各来源的保存目录相对于outputDir
func NewRunner(site *config.Site, manifests ManifestFetcher, pages PageFetcher, batch *BatchDownloader, outputDir string) *Runner {
	return &Runner{
		site:      site,
		manifests: manifests,
		pages:     pages,
		batch:     batch,
		outputDir: outputDir,
	}
}

// SetReporter 设置报告生成器,为nil时不生成报告
func (r *Runner) SetReporter(reporter *utils.Reporter) {
	r.reporter = reporter
}

// Run 执行一次完整抓取
// 等待所有流水线结束后返回; 清单/页面级别的错误汇总为返回的error,
// 单个文件的下载失败只体现在结果中
func (r *Runner) Run(ctx context.Context) (*models.RunResult, error) {
	result := models.NewRunResult(r.site.BaseURL)

	utils.Logger.Info().
		Str("run_id", result.RunID).
		Str("base_url", r.site.BaseURL).
		Msgf("🚀 开始抓取 %s (%d个来源)", r.site.BaseURL, len(r.site.Sources))

	batches := make([]*models.BatchSummary, len(r.site.Sources))
	errs := make([]error, len(r.site.Sources))

	var g errgroup.Group
	for i, src := range r.site.Sources {
		g.Go(func() error {
			batches[i], errs[i] = r.runSource(ctx, src)
			return nil
		})
	}
	_ = g.Wait()
	r.batch.FinishProgress()

	for _, b := range batches {
		if b != nil {
			result.Batches = append(result.Batches, *b)
		}
	}
	result.FinishedAt = time.Now()
	runErr := errors.Join(errs...)

	total, succeeded, failed, size := result.Totals()
	utils.Logger.Info().
		Str("run_id", result.RunID).
		Dur("duration", result.Duration()).
		Msgf("🏁 抓取结束, 耗时 %.2f秒", result.Duration().Seconds())
	utils.Infof("📊 共%d个文件: ✅ 成功 %d, ❌ 失败 %d, 📦 %s", total, succeeded, failed, humanize.Bytes(uint64(size)))

	if r.reporter != nil {
		if _, err := r.reporter.GenerateReport(result, runErr); err != nil {
			utils.Warnf("⚠️  生成报告失败: %v", err)
		}
	}

	return result, runErr
}

// runSource 执行单个来源的流水线
func (r *Runner) runSource(ctx context.Context, src models.Source) (*models.BatchSummary, error) {
	sourceURL := r.site.SourceURL(src)
	destinationDir := filepath.Join(r.outputDir, src.Destination())

	var (
		urls []string
		err  error
	)

	switch s := src.(type) {
	case models.ManifestSource:
		utils.Logger.Info().Str("url", sourceURL).Msgf("📋 开始下载清单中的所有文件 %s", sourceURL)
		urls, err = r.manifests.FetchManifest(ctx, sourceURL, r.site.BaseURL)
	case models.HTMLSource:
		utils.Logger.Info().Str("url", sourceURL).Msgf("🌐 开始提取页面中的资源 %s", sourceURL)
		var text string
		text, err = r.pages.FetchPage(ctx, sourceURL)
		if err == nil {
			urls = crawlers.ExtractAssetURLs(text, r.site.BaseURL)
		}
	default:
		err = fmt.Errorf("未知来源类型: %T", s)
	}

	if err != nil {
		utils.Logger.Error().Str("url", sourceURL).Err(err).Msgf("❌ 来源处理失败 %s", sourceURL)
		return nil, fmt.Errorf("来源 %s: %w", sourceURL, err)
	}

	summary := r.batch.DownloadAll(ctx, src.Destination(), urls, destinationDir)
	utils.Logger.Info().Str("url", sourceURL).Msgf("✅ 来源处理完成 %s", sourceURL)
	return summary, nil
}
