package crawlers

import (
	"strings"
)

// ExtractAssetURLs 从HTML文本中提取资源URL
//
// 按 `"` 切分后,奇数下标的片段即引号内的文本(假设引号总是成对出现且没有转义)。
// 以资源扩展名结尾的片段会被解析为绝对URL后按出现顺序输出,不去重。
func ExtractAssetURLs(htmlText string, basePath string) []string {
	segments := strings.Split(htmlText, `"`)

	urls := make([]string, 0)
	for i := 1; i < len(segments); i += 2 {
		candidate := segments[i]
		if !IsInterestingAsset(candidate) {
			continue
		}
		urls = append(urls, ResolveAssetURL(candidate, basePath))
	}
	return urls
}

// ResolveAssetURL 候选已以basePath开头(不区分大小写)时原样返回,否则直接拼接basePath
func ResolveAssetURL(candidate string, basePath string) string {
	if hasPrefixFold(candidate, basePath) {
		return candidate
	}
	return basePath + candidate
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
