package models

import (
	"fmt"
)

// FetchError 获取清单或页面失败(网络错误或非2xx状态码)
// 对所属来源的流水线是致命错误
type FetchError struct {
	URL        string
	StatusCode int // 0 表示未收到响应
	Cause      error
}

// Error 实现error接口
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("获取失败 [%s]: HTTP %d: %v", e.URL, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("获取失败 [%s]: %v", e.URL, e.Cause)
}

// Unwrap 支持errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ManifestFormatError 清单内容不是JSON字符串数组
type ManifestFormatError struct {
	URL   string
	Cause error
}

// Error 实现error接口
func (e *ManifestFormatError) Error() string {
	return fmt.Sprintf("清单格式错误 [%s]: %v", e.URL, e.Cause)
}

// Unwrap 支持errors.Unwrap
func (e *ManifestFormatError) Unwrap() error {
	return e.Cause
}

// DownloadError 单个文件下载失败
// 由批量下载器在任务边界处捕获,不会影响其他任务
type DownloadError struct {
	URL        string
	FilePath   string
	StatusCode int
	Cause      error
}

// Error 实现error接口
func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("下载失败 [%s]: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("下载失败 [%s]: %v", e.URL, e.Cause)
}

// Unwrap 支持errors.Unwrap
func (e *DownloadError) Unwrap() error {
	return e.Cause
}

// ValidationError 头部验证错误
type ValidationError struct {
	// Field 出错的字段 ("name" 或 "value")
	Field string

	HeaderName string
	Reason     string

	// Suggestion 修复建议 (可选)
	Suggestion string
}

// Error 实现error接口
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("头部验证失败 [%s]: %s", e.HeaderName, e.Reason)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (建议: %s)", e.Suggestion)
	}
	return msg
}

// ConfigError 配置文件错误
type ConfigError struct {
	FilePath string
	Cause    error
}

// Error 实现error接口
func (e *ConfigError) Error() string {
	return fmt.Sprintf("配置文件错误 [%s]: %v", e.FilePath, e.Cause)
}

// Unwrap 支持errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Cause
}
