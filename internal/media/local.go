package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// LocalBackend 将图片写入本地目录，并通过静态路由对外提供
type LocalBackend struct {
	dir     string
	urlPath string
}

// NewLocalBackend 构造 LocalBackend
func NewLocalBackend(dir, urlPath string) *LocalBackend {
	return &LocalBackend{dir: dir, urlPath: urlPath}
}

// Dir 返回图片所在目录
func (b *LocalBackend) Dir() string {
	return b.dir
}

func (b *LocalBackend) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join("/", b.urlPath, key), nil
}
