package main

import (
	"fmt"
	"strings"

	"github.com/crozone/ScrapeMonet/internal/models"
)

// validLogLevels 允许的日志级别
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateFlags 验证命令行标志
func ValidateFlags(logLevel string, maxConcurrency int, headers []string) error {
	if logLevel != "" && !validLogLevels[strings.ToLower(logLevel)] {
		return fmt.Errorf("无效的日志级别: %s (有效值: trace, debug, info, warn, error)", logLevel)
	}

	if maxConcurrency < 0 {
		return fmt.Errorf("最大并发数不能为负数,当前值: %d", maxConcurrency)
	}

	if _, err := models.CliHeaders(headers).Parse(); err != nil {
		return err
	}

	return nil
}
