package utils

import (
	"fmt"
	"os"
)

// EnsureDir 递归创建目录,目录已存在时不做任何事
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败 [%s]: %w", dir, err)
	}
	return nil
}
