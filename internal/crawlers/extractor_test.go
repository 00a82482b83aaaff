package crawlers

import (
	"reflect"
	"testing"
)

const testBase = "http://cachemonet.com/"

func TestExtractAssetURLs(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name:     "只取引号内且扩展名匹配的文本",
			html:     `the "a.gif" is "http://cachemonet.com/b.png" here "c.txt"`,
			expected: []string{"http://cachemonet.com/a.gif", "http://cachemonet.com/b.png"},
		},
		{
			name:     "引号外的文本不提取",
			html:     `outside.gif "inside.png" after.jpg`,
			expected: []string{"http://cachemonet.com/inside.png"},
		},
		{
			name:     "不去重且保持顺序",
			html:     `<img src="x.gif"><img src="y.gif"><img src="x.gif">`,
			expected: []string{"http://cachemonet.com/x.gif", "http://cachemonet.com/y.gif", "http://cachemonet.com/x.gif"},
		},
		{
			name:     "前缀匹配不区分大小写且不重复拼接",
			html:     `<a href="HTTP://CacheMonet.com/Loud.MP3">`,
			expected: []string{"HTTP://CacheMonet.com/Loud.MP3"},
		},
		{
			name:     "其他主机的URL被当作相对路径拼接",
			html:     `"http://other.com/z.gif"`,
			expected: []string{"http://cachemonet.com/http://other.com/z.gif"},
		},
		{
			name:     "相对路径不做分隔符规范化",
			html:     `"/abs/path.ogg"`,
			expected: []string{"http://cachemonet.com//abs/path.ogg"},
		},
		{
			name: "引号不成对时后续候选错位",
			// 多出的一个引号使 a.gif 和 b.gif 落在偶数下标
			html:     `x" "a.gif" "b.gif"`,
			expected: []string{},
		},
		{
			name:     "空文本",
			html:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAssetURLs(tt.html, testBase)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractAssetURLs() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

func TestResolveAssetURL(t *testing.T) {
	if got := ResolveAssetURL("bg/1.gif", testBase); got != "http://cachemonet.com/bg/1.gif" {
		t.Errorf("相对路径解析错误: %s", got)
	}
	if got := ResolveAssetURL("http://cachemonet.com/1.gif", testBase); got != "http://cachemonet.com/1.gif" {
		t.Errorf("绝对路径不应再拼接: %s", got)
	}
	if got := ResolveAssetURL("http://cache", testBase); got != "http://cachemonet.com/http://cache" {
		t.Errorf("比前缀短的候选应拼接: %s", got)
	}
}
