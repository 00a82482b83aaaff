package core

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// FileFetcher 下载单个文件到目标目录
// 由 crawlers.FileDownloader 实现
type FileFetcher interface {
	DownloadFile(ctx context.Context, fileURL string, destinationDir string) (*models.AssetFile, error)
}

// BatchDownloader 批量下载器
// 每个URL一个并发任务,单个任务失败不影响其他任务
type BatchDownloader struct {
	fetcher FileFetcher

	// maxConcurrency 为0时不限制并发
	maxConcurrency int

	// progressOut 非nil时显示进度条
	progressOut io.Writer

	// progress 所有批次共用一个进度条,避免并发批次在同一终端交错输出
	progressMu sync.Mutex
	progress   *progressbar.ProgressBar
}

// NewBatchDownloader 创建批量下载器
func NewBatchDownloader(fetcher FileFetcher, maxConcurrency int, progressOut io.Writer) *BatchDownloader {
	return &BatchDownloader{
		fetcher:        fetcher,
		maxConcurrency: maxConcurrency,
		progressOut:    progressOut,
	}
}

// DownloadAll 并发下载全部URL到destinationDir
// 所有任务(成功或失败)结束后才返回; 批量操作本身永不失败,失败信息在摘要的Results中
func (bd *BatchDownloader) DownloadAll(ctx context.Context, source string, urls []string, destinationDir string) *models.BatchSummary {
	startTime := time.Now()

	utils.Logger.Info().
		Str("source", source).
		Str("dest", destinationDir).
		Msgf("🚀 开始批量下载 [%s]: %d个文件", source, len(urls))

	jobs := make([]models.DownloadJob, len(urls))
	for i, u := range urls {
		jobs[i] = models.NewDownloadJob(u, destinationDir)
	}
	results := make([]models.JobResult, len(jobs))

	if err := utils.EnsureDir(destinationDir); err != nil {
		// 目录不可用时每个任务都无法完成,逐个记录失败
		for i, job := range jobs {
			results[i] = failedResult(job, &models.DownloadError{
				URL:   job.URL,
				Cause: fmt.Errorf("创建目录失败: %w", err),
			}, 0)
		}
		summary := models.NewBatchSummary(source, destinationDir, results, time.Since(startTime))
		bd.printSummary(summary)
		return summary
	}

	progress := bd.trackProgress(len(jobs))

	var g errgroup.Group
	if bd.maxConcurrency > 0 {
		g.SetLimit(bd.maxConcurrency)
	}

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = bd.runJob(ctx, job)
			if progress != nil {
				_ = progress.Add(1)
			}
			// 任务错误已记录在结果中,不能让它取消兄弟任务
			return nil
		})
	}
	_ = g.Wait()

	summary := models.NewBatchSummary(source, destinationDir, results, time.Since(startTime))
	bd.printSummary(summary)
	return summary
}

// trackProgress 把本批任务数计入共享进度条,未启用进度显示时返回nil
func (bd *BatchDownloader) trackProgress(n int) *progressbar.ProgressBar {
	if bd.progressOut == nil || n == 0 {
		return nil
	}

	bd.progressMu.Lock()
	defer bd.progressMu.Unlock()

	if bd.progress == nil {
		// 多出的1由FinishProgress补齐,先完成的批次不会让进度条提前结束
		bd.progress = utils.NewProgressBar(n+1, "下载资源", bd.progressOut)
	} else {
		bd.progress.ChangeMax(bd.progress.GetMax() + n)
	}
	return bd.progress
}

// FinishProgress 所有批次结束后调用,结束共享进度条
func (bd *BatchDownloader) FinishProgress() {
	bd.progressMu.Lock()
	defer bd.progressMu.Unlock()

	if bd.progress != nil {
		_ = bd.progress.Finish()
		bd.progress = nil
	}
}

// runJob 执行单个下载任务
// 错误(包括panic)在这里被捕获并记录一次
func (bd *BatchDownloader) runJob(ctx context.Context, job models.DownloadJob) (result models.JobResult) {
	startTime := time.Now()
	result.Job = job

	defer func() {
		if r := recover(); r != nil {
			result.File = nil
			result.Err = &models.DownloadError{URL: job.URL, Cause: fmt.Errorf("下载任务异常: %v", r)}
		}
		result.Duration = time.Since(startTime)
		if result.Err != nil {
			logJobFailure(job, result.Err)
		}
	}()

	result.File, result.Err = bd.fetcher.DownloadFile(ctx, job.URL, job.DestinationDir)
	return result
}

func failedResult(job models.DownloadJob, err error, d time.Duration) models.JobResult {
	logJobFailure(job, err)
	return models.JobResult{Job: job, Duration: d, Err: err}
}

func logJobFailure(job models.DownloadJob, err error) {
	utils.Logger.Error().
		Str("url", job.URL).
		Str("job_id", job.ID).
		Err(err).
		Msgf("❌ 下载失败 %s", job.URL)
}

// printSummary 打印批量下载摘要
func (bd *BatchDownloader) printSummary(summary *models.BatchSummary) {
	utils.Logger.Info().
		Str("source", summary.Source).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Dur("duration", summary.Duration).
		Msgf("📊 [%s] 批量下载完成: %d个文件, ✅ 成功 %d, ❌ 失败 %d, 📦 %s, ⏱️  %.2f秒",
			summary.Source, summary.Total, summary.Succeeded, summary.Failed,
			humanize.Bytes(uint64(summary.TotalSize)), summary.Duration.Seconds())
}
