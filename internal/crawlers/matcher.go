package crawlers

import (
	"strings"

	"github.com/crozone/ScrapeMonet/internal/models"
)

// IsInterestingAsset 判断候选字符串是否以资源扩展名结尾(不区分大小写)
func IsInterestingAsset(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, ext := range models.AssetExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
