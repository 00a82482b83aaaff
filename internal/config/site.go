package config

import (
	"fmt"

	"github.com/crozone/ScrapeMonet/internal/models"
)

// CacheMonetBaseURL 站点基础URL
// 清单中的相对路径和页面中的相对引用都直接拼接在其后
const CacheMonetBaseURL = "http://cachemonet.com/"

// Site 抓取目标: 基础URL + 固定的来源列表
// 启动时构造一次,之后只读
type Site struct {
	BaseURL string
	Sources []models.Source
}

// DefaultSite 返回 cachemonet.com 的固定来源:
// 两个JSON清单(bg, center)和首页(misc)
func DefaultSite() *Site {
	return NewSite(CacheMonetBaseURL)
}

// NewSite 用指定基础URL构造相同的来源列表
func NewSite(baseURL string) *Site {
	return &Site{
		BaseURL: baseURL,
		Sources: []models.Source{
			models.ManifestSource{ManifestPath: "json/bg.json", DestinationDir: "bg"},
			models.ManifestSource{ManifestPath: "json/center.json", DestinationDir: "center"},
			models.HTMLSource{PagePath: "", DestinationDir: "misc"},
		},
	}
}

// SourceURL 来源的完整URL (基础URL + 路径,不做任何规范化)
func (s *Site) SourceURL(src models.Source) string {
	return s.BaseURL + src.Path()
}

// Validate 验证站点定义
func (s *Site) Validate() error {
	if err := models.ValidateURL(s.BaseURL); err != nil {
		return fmt.Errorf("无效的站点基础URL: %w", err)
	}
	if len(s.Sources) == 0 {
		return fmt.Errorf("站点没有任何来源")
	}
	seen := make(map[string]bool, len(s.Sources))
	for _, src := range s.Sources {
		if src.Destination() == "" {
			return fmt.Errorf("来源 %q 缺少保存目录", src.Path())
		}
		key := string(src.Kind()) + ":" + src.Path()
		if seen[key] {
			return fmt.Errorf("重复的来源: %s", key)
		}
		seen[key] = true
	}
	return nil
}
