// Package media stores uploaded images for the content managers (parallax
// backgrounds, project covers) on local disk or in an S3 bucket.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes 是单张图片的默认大小上限
const DefaultMaxBytes = 10 << 20

var (
	// ErrNotImage 在上传内容无法识别为图片时返回
	ErrNotImage = errors.New("file is not a supported image")
	// ErrTooLarge 在上传内容超过大小上限时返回
	ErrTooLarge = errors.New("image exceeds size limit")
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// Backend 持久化图片字节并返回可公开访问的地址
type Backend interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Image 描述一次成功上传的结果
type Image struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"`
}

// Uploader 负责校验图片并写入 Backend
type Uploader struct {
	backend  Backend
	maxBytes int64
	now      func() time.Time
}

// NewUploader 构造 Uploader，maxBytes<=0 时使用 DefaultMaxBytes
func NewUploader(backend Backend, maxBytes int64) *Uploader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Uploader{backend: backend, maxBytes: maxBytes, now: time.Now}
}

// SaveImage 读取并解析图片头部，按真实格式生成文件名后写入存储
func (u *Uploader) SaveImage(ctx context.Context, r io.Reader) (Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > u.maxBytes {
		return Image{}, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, ErrNotImage
	}
	contentType, ok := contentTypes[format]
	if !ok {
		return Image{}, ErrNotImage
	}

	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}
	key := fmt.Sprintf("%s-%s.%s", u.now().Format("20060102"), uuid.New().String(), ext)

	url, err := u.backend.Put(ctx, key, contentType, data)
	if err != nil {
		return Image{}, fmt.Errorf("store image: %w", err)
	}

	return Image{
		Key:         key,
		URL:         url,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Size:        len(data),
	}, nil
}
