package models

import (
	"time"
)

// AssetExtensions 需要下载的资源文件扩展名(小写)
var AssetExtensions = []string{".gif", ".png", ".jpg", ".ico", ".mp3", ".ogg", ".mp4", ".aac"}

// AssetFile 已下载到本地的资源文件
type AssetFile struct {
	URL          string    `json:"url"`
	FilePath     string    `json:"file_path"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	DownloadedAt time.Time `json:"downloaded_at"`
}
