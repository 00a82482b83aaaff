package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/crozone/ScrapeMonet/internal/config"
	"github.com/crozone/ScrapeMonet/internal/core"
	"github.com/crozone/ScrapeMonet/internal/crawlers"
	"github.com/crozone/ScrapeMonet/internal/utils"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

// 命令行参数
var (
	// 全局参数
	configFile string
	verbose    bool
	logLevel   string

	// HTTP头部参数
	headers        []string // 自定义HTTP请求头
	validateConfig bool     // 验证配置文件

	// 下载参数
	outputDir      string
	maxConcurrency int
	writeReport    bool
	showProgress   bool
)

// appConfig 在 PersistentPreRunE 中加载
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "scrapemonet",
	Short: "cachemonet.com 资源批量下载工具",
	Long: `ScrapeMonet - cachemonet.com 资源批量下载工具

读取站点的两个JSON清单 (json/bg.json, json/center.json) 和首页,
把其中引用的全部图片/音频/视频并发下载到本地:
  • bg/      背景清单中的文件
  • center/  中心清单中的文件
  • misc/    首页中引用的资源

示例:
  # 下载到当前目录
  scrapemonet

  # 指定输出目录并生成JSON报告
  scrapemonet -o ./cachemonet --report

  # 自定义HTTP头部
  scrapemonet -H "User-Agent: MyBot/1.0"

  # 验证配置文件
  scrapemonet --validate-config

版本: ` + Version + `
构建时间: ` + BuildTime,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ValidateFlags(logLevel, maxConcurrency, headers); err != nil {
			return err
		}

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}

		// 命令行参数覆盖配置文件
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.Output.BaseDir = outputDir
		}
		if flags.Changed("max-concurrency") {
			cfg.Download.MaxConcurrency = maxConcurrency
		}
		if flags.Changed("report") {
			cfg.Output.Report = writeReport
		}
		if flags.Changed("progress") {
			cfg.Output.Progress = showProgress
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		logConfig := cfg.LogConfig()
		if logLevel != "" {
			logConfig.Level = strings.ToLower(logLevel)
		}
		if verbose && logLevel == "" {
			logConfig.Level = "debug"
		}

		if err := utils.InitLogger(logConfig); err != nil {
			return fmt.Errorf("初始化日志系统失败: %w", err)
		}

		if verbose {
			utils.Debug("详细模式已启用")
		}

		appConfig = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// 设置信号处理(Ctrl+C退出)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		go func() {
			sig := <-sigChan
			utils.Warnf("收到中断信号: %v, 退出", sig)
			os.Exit(130)
		}()

		headerManager, err := core.NewHeaderManager(appConfig.HTTP.Headers, headers)
		if err != nil {
			return fmt.Errorf("创建HTTP头部管理器失败: %w", err)
		}

		if validateConfig {
			utils.Info("🔍 验证HTTP头部配置...")
			if err := headerManager.Validate(); err != nil {
				return fmt.Errorf("配置验证失败: %w", err)
			}
			utils.Info("✅ 配置验证通过!")
			utils.Infof("当前有效的HTTP头部: %s", headerManager.SafeHeadersString())
			return nil
		}

		site := config.DefaultSite()
		if err := site.Validate(); err != nil {
			return err
		}

		runner := newRunner(site, appConfig, headerManager)

		if _, err := runner.Run(context.Background()); err != nil {
			return fmt.Errorf("抓取失败: %w", err)
		}

		utils.Info("✨ 抓取任务完成!")
		return nil
	},
}

// newRunner 按配置组装下载流水线
func newRunner(site *config.Site, cfg *config.Config, headerManager *core.HeaderManager) *core.Runner {
	client := crawlers.NewHTTPClient()

	var progressOut io.Writer
	if cfg.Output.Progress {
		progressOut = os.Stderr
	}
	batch := core.NewBatchDownloader(crawlers.NewFileDownloader(client, headerManager), cfg.Download.MaxConcurrency, progressOut)

	runner := core.NewRunner(
		site,
		crawlers.NewManifestFetcher(client, headerManager),
		crawlers.NewPageFetcher(client, headerManager),
		batch,
		cfg.Output.BaseDir,
	)
	if cfg.Output.Report {
		runner.SetReporter(utils.NewReporter(cfg.Output.BaseDir))
	}
	return runner
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ScrapeMonet %s\n", Version)
		fmt.Printf("构建时间: %s\n", BuildTime)
	},
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出模式")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (trace|debug|info|warn|error)")

	// HTTP头部参数
	rootCmd.PersistentFlags().StringArrayVarP(&headers, "header", "H", []string{}, "自定义HTTP头部,格式: 'Name: Value',可多次指定")
	rootCmd.PersistentFlags().BoolVar(&validateConfig, "validate-config", false, "验证配置文件正确性")

	// 下载参数
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "输出目录 (bg/center/misc 位于其下)")
	rootCmd.Flags().IntVar(&maxConcurrency, "max-concurrency", 0, "每批最大并发下载数 (0 表示不限制)")
	rootCmd.Flags().BoolVar(&writeReport, "report", false, "生成JSON运行报告")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "显示下载进度条")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.Error(err, "❌ 运行失败")
		os.Exit(1)
	}
}
