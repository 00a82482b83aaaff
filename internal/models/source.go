package models

// SourceKind 来源类型
type SourceKind string

const (
	SourceKindManifest SourceKind = "manifest" // JSON清单
	SourceKindHTML     SourceKind = "html"     // HTML页面
)

// Source 一批下载URL的来源
// 仅 ManifestSource 和 HTMLSource 实现此接口
type Source interface {
	// Kind 返回来源类型
	Kind() SourceKind

	// Path 返回相对于站点基础URL的路径
	Path() string

	// Destination 返回该来源文件的保存目录
	Destination() string

	isSource()
}

// ManifestSource JSON清单来源
// 清单内容为字符串数组,每一项都是相对于下载基础路径的文件路径
type ManifestSource struct {
	ManifestPath   string `json:"manifest_path"`
	DestinationDir string `json:"destination_dir"`
}

func (s ManifestSource) Kind() SourceKind    { return SourceKindManifest }
func (s ManifestSource) Path() string        { return s.ManifestPath }
func (s ManifestSource) Destination() string { return s.DestinationDir }
func (ManifestSource) isSource()             {}

// HTMLSource HTML页面来源
// 页面中引号内以资源扩展名结尾的字符串会被当作下载URL
type HTMLSource struct {
	PagePath       string `json:"page_path"`
	DestinationDir string `json:"destination_dir"`
}

func (s HTMLSource) Kind() SourceKind    { return SourceKindHTML }
func (s HTMLSource) Path() string        { return s.PagePath }
func (s HTMLSource) Destination() string { return s.DestinationDir }
func (HTMLSource) isSource()             {}
