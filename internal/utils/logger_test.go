package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestInitLogger(t *testing.T) {
	tempDir := t.TempDir()

	config := LogConfig{
		Level:      "debug",
		LogDir:     tempDir,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	if err := InitLogger(config); err != nil {
		t.Fatalf("初始化日志器失败: %v", err)
	}

	Info("测试信息日志")
	Warn("测试警告日志")
	Debug("测试调试日志")

	time.Sleep(100 * time.Millisecond)

	mainLogPath := filepath.Join(tempDir, mainLogFileName)
	if _, err := os.Stat(mainLogPath); os.IsNotExist(err) {
		t.Errorf("主日志文件未创建: %s", mainLogPath)
	}
}

func TestErrorLogFileOnlyHasErrors(t *testing.T) {
	tempDir := t.TempDir()

	config := DefaultLogConfig()
	config.LogDir = tempDir
	config.Compress = false

	if err := InitLogger(config); err != nil {
		t.Fatalf("初始化日志器失败: %v", err)
	}

	Info("普通信息-不应出现在错误日志")
	Errorf("下载失败: %s", "http://cachemonet.com/x.gif")

	time.Sleep(100 * time.Millisecond)

	content, err := os.ReadFile(filepath.Join(tempDir, errorLogFileName))
	if err != nil {
		t.Fatalf("读取错误日志失败: %v", err)
	}
	if strings.Contains(string(content), "普通信息") {
		t.Error("错误日志中不应包含info级别日志")
	}
	if !strings.Contains(string(content), "http://cachemonet.com/x.gif") {
		t.Error("错误日志中应包含error级别日志")
	}

	main, err := os.ReadFile(filepath.Join(tempDir, mainLogFileName))
	if err != nil {
		t.Fatalf("读取主日志失败: %v", err)
	}
	if !strings.Contains(string(main), "普通信息") {
		t.Error("主日志应包含所有级别")
	}
}

func TestInitLoggerConsoleOnly(t *testing.T) {
	config := DefaultLogConfig()
	config.LogDir = ""

	if err := InitLogger(config); err != nil {
		t.Fatalf("仅控制台日志初始化失败: %v", err)
	}
	if _, err := os.Stat("logs"); err == nil {
		t.Error("LogDir为空时不应创建日志目录")
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	config := DefaultLogConfig()
	config.Level = "verbose-ish"
	config.LogDir = ""

	if err := InitLogger(config); err != nil {
		t.Fatalf("初始化日志器失败: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("无效级别应回退为info, 得到 %s", zerolog.GlobalLevel())
	}
}

func TestFilteredWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &FilteredWriter{Writer: &buf, MinLevel: zerolog.ErrorLevel}

	n, err := w.WriteLevel(zerolog.InfoLevel, []byte("info\n"))
	if err != nil || n != 5 {
		t.Errorf("被过滤的写入应返回完整长度: n=%d err=%v", n, err)
	}
	if buf.Len() != 0 {
		t.Error("info级别不应被写入")
	}

	if _, err := w.WriteLevel(zerolog.ErrorLevel, []byte("error\n")); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if buf.String() != "error\n" {
		t.Errorf("error级别应被写入, 得到 %q", buf.String())
	}
}

func TestDefaultLogConfig(t *testing.T) {
	config := DefaultLogConfig()

	if config.Level != "info" {
		t.Errorf("默认日志级别错误: 期望 'info', 得到 '%s'", config.Level)
	}
	if config.LogDir != "logs" {
		t.Errorf("默认日志目录错误: 期望 'logs', 得到 '%s'", config.LogDir)
	}
	if config.MaxSize != 10 || config.MaxBackups != 3 || config.MaxAge != 28 {
		t.Errorf("默认轮转配置错误: %+v", config)
	}
	if !config.Compress {
		t.Error("默认应该启用压缩")
	}
}
