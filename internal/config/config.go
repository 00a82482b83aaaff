package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crozone/ScrapeMonet/internal/models"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/spf13/viper"
)

// Config 应用程序配置
// 站点和来源列表是固定的,不在此处配置,见 DefaultSite
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Output   OutputConfig   `mapstructure:"output"`
	Download DownloadConfig `mapstructure:"download"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level    string         `mapstructure:"level"`
	LogDir   string         `mapstructure:"log_dir"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig 日志轮转配置
type RotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	// BaseDir bg/center/misc 目录所在的根目录
	BaseDir  string `mapstructure:"base_dir"`
	Report   bool   `mapstructure:"report"`
	Progress bool   `mapstructure:"progress"`
}

// DownloadConfig 下载配置
type DownloadConfig struct {
	// MaxConcurrency 单个批次的最大并发下载数, 0 表示不限制
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// HTTPConfig HTTP请求配置
type HTTPConfig struct {
	// Headers 附加到每个请求的头部
	Headers map[string]string `mapstructure:"headers"`
}

// LoadConfig 加载配置文件
// configPath 为空时依次搜索 ./configs, . 和 ~/.scrapemonet 下的 config.yaml,
// 找不到则使用默认值
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".scrapemonet"))
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &models.ConfigError{FilePath: configPath, Cause: err}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, &models.ConfigError{
			FilePath: v.ConfigFileUsed(),
			Cause:    fmt.Errorf("配置绑定失败: %w", err),
		}
	}
	if config.HTTP.Headers == nil {
		config.HTTP.Headers = make(map[string]string)
	}

	if err := config.Validate(); err != nil {
		return nil, &models.ConfigError{FilePath: v.ConfigFileUsed(), Cause: err}
	}

	return &config, nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.log_dir", "logs")
	v.SetDefault("logging.rotation.max_size", 10)
	v.SetDefault("logging.rotation.max_backups", 3)
	v.SetDefault("logging.rotation.max_age", 28)
	v.SetDefault("logging.rotation.compress", true)

	v.SetDefault("output.base_dir", ".")
	v.SetDefault("output.report", false)
	v.SetDefault("output.progress", false)

	v.SetDefault("download.max_concurrency", 0)
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Download.MaxConcurrency < 0 {
		return fmt.Errorf("download.max_concurrency 不能为负数: %d", c.Download.MaxConcurrency)
	}
	if c.Output.BaseDir == "" {
		return fmt.Errorf("output.base_dir 不能为空")
	}
	return nil
}

// LogConfig 转换为日志系统配置
func (c *Config) LogConfig() utils.LogConfig {
	return utils.LogConfig{
		Level:      c.Logging.Level,
		LogDir:     c.Logging.LogDir,
		MaxSize:    c.Logging.Rotation.MaxSize,
		MaxBackups: c.Logging.Rotation.MaxBackups,
		MaxAge:     c.Logging.Rotation.MaxAge,
		Compress:   c.Logging.Rotation.Compress,
	}
}
