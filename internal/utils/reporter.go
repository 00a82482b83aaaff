package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/schollz/progressbar/v3"
)

const (
	reportsDirName     = "reports"
	runReportFileName  = "run_report.json"
	failedURLsFileName = "failed_files.json"
)

// Reporter 报告生成器
type Reporter struct {
	outputDir string
}

// NewReporter 创建报告生成器,报告写入 {outputDir}/reports
func NewReporter(outputDir string) *Reporter {
	return &Reporter{outputDir: outputDir}
}

// GenerateReport 生成抓取报告
// 返回主报告文件路径
func (r *Reporter) GenerateReport(result *models.RunResult, runErr error) (string, error) {
	reportsDir := filepath.Join(r.outputDir, reportsDirName)
	if err := EnsureDir(reportsDir); err != nil {
		return "", fmt.Errorf("创建报告目录失败: %w", err)
	}

	report := models.NewRunReport(result, runErr)

	reportPath := filepath.Join(reportsDir, runReportFileName)
	if err := r.saveJSONReport(reportPath, report); err != nil {
		return "", err
	}

	failed := make([]models.FailedFileInfo, 0, report.FailedFiles)
	for _, src := range report.Sources {
		failed = append(failed, src.FailedFiles...)
	}
	if err := r.saveJSONReport(filepath.Join(reportsDir, failedURLsFileName), failed); err != nil {
		return "", err
	}

	Infof("✅ 报告已生成: %s", reportsDir)
	return reportPath, nil
}

// saveJSONReport 保存JSON报告
func (r *Reporter) saveJSONReport(path string, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化JSON失败: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("写入报告文件失败: %w", err)
	}

	Debugf("保存报告: %s", path)
	return nil
}

// NewProgressBar 创建进度条
func NewProgressBar(max int, description string, out io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
