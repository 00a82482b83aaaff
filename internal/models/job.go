package models

import (
	"time"
)

// DownloadJob 单个下载任务: 一个URL对应一个目标目录
type DownloadJob struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	DestinationDir string    `json:"destination_dir"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewDownloadJob 创建下载任务
func NewDownloadJob(url, destinationDir string) DownloadJob {
	return DownloadJob{
		ID:             generateID(),
		URL:            url,
		DestinationDir: destinationDir,
		CreatedAt:      time.Now(),
	}
}

// JobResult 下载任务结果
// Err 为 nil 表示下载成功,此时 File 非空
type JobResult struct {
	Job      DownloadJob   `json:"job"`
	File     *AssetFile    `json:"file,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// Success 是否下载成功
func (r JobResult) Success() bool {
	return r.Err == nil
}

// BatchSummary 一个来源的批量下载摘要
type BatchSummary struct {
	Source         string        `json:"source"`
	DestinationDir string        `json:"destination_dir"`
	Total          int           `json:"total"`
	Succeeded      int           `json:"succeeded"`
	Failed         int           `json:"failed"`
	TotalSize      int64         `json:"total_size"`
	Duration       time.Duration `json:"duration"`
	Results        []JobResult   `json:"results"`
}

// NewBatchSummary 根据任务结果汇总统计
func NewBatchSummary(source, destinationDir string, results []JobResult, duration time.Duration) *BatchSummary {
	summary := &BatchSummary{
		Source:         source,
		DestinationDir: destinationDir,
		Total:          len(results),
		Duration:       duration,
		Results:        results,
	}
	for _, r := range results {
		if r.Success() {
			summary.Succeeded++
			if r.File != nil {
				summary.TotalSize += r.File.Size
			}
		} else {
			summary.Failed++
		}
	}
	return summary
}

// FailedURLs 返回下载失败的URL
func (s *BatchSummary) FailedURLs() []string {
	urls := make([]string, 0, s.Failed)
	for _, r := range s.Results {
		if !r.Success() {
			urls = append(urls, r.Job.URL)
		}
	}
	return urls
}

// RunResult 一次完整抓取的结果
type RunResult struct {
	RunID      string         `json:"run_id"`
	BaseURL    string         `json:"base_url"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Batches    []BatchSummary `json:"batches"`
}

// NewRunResult 创建抓取结果
func NewRunResult(baseURL string) *RunResult {
	return &RunResult{
		RunID:     generateID(),
		BaseURL:   baseURL,
		StartedAt: time.Now(),
	}
}

// Duration 总耗时
func (r *RunResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Totals 汇总所有批次: 总数, 成功数, 失败数, 总字节数
func (r *RunResult) Totals() (total, succeeded, failed int, size int64) {
	for _, b := range r.Batches {
		total += b.Total
		succeeded += b.Succeeded
		failed += b.Failed
		size += b.TotalSize
	}
	return total, succeeded, failed, size
}
