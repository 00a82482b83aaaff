package models

import (
	"encoding/json"
	"errors"
	"time"
)

// RunReport 抓取报告
type RunReport struct {
	RunID     string    `json:"run_id"`
	BaseURL   string    `json:"base_url"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  float64   `json:"duration"` // 秒

	TotalFiles     int   `json:"total_files"`
	SucceededFiles int   `json:"succeeded_files"`
	FailedFiles    int   `json:"failed_files"`
	TotalSize      int64 `json:"total_size"`

	Sources []SourceReport `json:"sources"`

	// Error 流水线级错误(如清单格式错误),为空表示成功
	Error string `json:"error,omitempty"`
}

// SourceReport 单个来源的下载情况
type SourceReport struct {
	Source         string           `json:"source"`
	DestinationDir string           `json:"destination_dir"`
	Duration       float64          `json:"duration"`
	SuccessFiles   []FileInfo       `json:"success_files"`
	FailedFiles    []FailedFileInfo `json:"failed_files"`
}

// FileInfo 文件信息
type FileInfo struct {
	URL          string    `json:"url"`
	FilePath     string    `json:"file_path"`
	Size         int64     `json:"size"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// FailedFileInfo 失败文件信息
type FailedFileInfo struct {
	URL        string `json:"url"`
	ErrorType  string `json:"error_type"` // http_status, network_error
	StatusCode int    `json:"status_code,omitempty"`
	ErrorMsg   string `json:"error_msg"`
}

// NewRunReport 根据抓取结果生成报告
func NewRunReport(result *RunResult, runErr error) *RunReport {
	total, succeeded, failed, size := result.Totals()
	report := &RunReport{
		RunID:          result.RunID,
		BaseURL:        result.BaseURL,
		StartTime:      result.StartedAt,
		EndTime:        result.FinishedAt,
		Duration:       result.Duration().Seconds(),
		TotalFiles:     total,
		SucceededFiles: succeeded,
		FailedFiles:    failed,
		TotalSize:      size,
		Sources:        make([]SourceReport, 0, len(result.Batches)),
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}

	for _, batch := range result.Batches {
		sr := SourceReport{
			Source:         batch.Source,
			DestinationDir: batch.DestinationDir,
			Duration:       batch.Duration.Seconds(),
			SuccessFiles:   make([]FileInfo, 0, batch.Succeeded),
			FailedFiles:    make([]FailedFileInfo, 0, batch.Failed),
		}
		for _, r := range batch.Results {
			if r.Success() {
				if r.File == nil {
					continue
				}
				sr.SuccessFiles = append(sr.SuccessFiles, FileInfo{
					URL:          r.File.URL,
					FilePath:     r.File.FilePath,
					Size:         r.File.Size,
					DownloadedAt: r.File.DownloadedAt,
				})
				continue
			}
			sr.FailedFiles = append(sr.FailedFiles, newFailedFileInfo(r))
		}
		report.Sources = append(report.Sources, sr)
	}

	return report
}

func newFailedFileInfo(r JobResult) FailedFileInfo {
	info := FailedFileInfo{
		URL:       r.Job.URL,
		ErrorType: "network_error",
		ErrorMsg:  r.Err.Error(),
	}
	var de *DownloadError
	if errors.As(r.Err, &de) && de.StatusCode != 0 {
		info.ErrorType = "http_status"
		info.StatusCode = de.StatusCode
	}
	return info
}

// ToJSON 序列化为JSON
func (r *RunReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FromJSON 从JSON反序列化
func (r *RunReport) FromJSON(data []byte) error {
	return json.Unmarshal(data, r)
}
