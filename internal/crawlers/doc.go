// Package crawlers 提供资源URL的发现和单文件下载功能
//
// # 概述
//
// crawlers包负责一条抓取流水线中除并发调度以外的所有步骤:
// 获取JSON清单或HTML页面、从中得到资源URL、把单个URL流式下载到本地目录。
// 并发扇出与失败隔离由 core.BatchDownloader 负责。
//
// # 核心组件
//
// ## IsInterestingAsset / ExtractAssetURLs
//
// 纯函数。ExtractAssetURLs 按双引号切分HTML文本,取奇数位置的片段作为候选,
// 保留以资源扩展名结尾的候选并补全为绝对URL。这是词法扫描,不解析HTML结构,
// 引号不成对时后续候选会错位,这是已知的限制。
//
//	urls := ExtractAssetURLs(html, "http://cachemonet.com/")
//
// ## ManifestFetcher
//
// 获取清单并解码为字符串数组,每一项直接拼接在下载基础路径之后(不做路径规范化)。
// 内容不是字符串数组时返回 models.ManifestFormatError。
//
//	urls, err := NewManifestFetcher(client, headers).FetchManifest(ctx, manifestURL, basePath)
//
// ## PageFetcher
//
// 基于Colly获取HTML页面,解压并按Content-Type转码为UTF-8文本。
//
// ## FileDownloader
//
// 下载单个URL到目标目录,文件名取URL最后一个 "/" 之后的文本。
// 响应体直接流式写入磁盘,失败时删除已创建的文件并返回 models.DownloadError。
//
// # 超时
//
// 不对HTTP请求设置超时,无响应的服务器会让对应任务一直等待。
package crawlers
