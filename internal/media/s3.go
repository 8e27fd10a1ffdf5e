package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter 是 S3Backend 用到的 s3.Client 子集
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Backend 将图片上传到 S3 存储桶
type S3Backend struct {
	client     objectPutter
	bucket     string
	region     string
	publicBase string
}

// NewS3Backend 使用默认凭证链创建 S3 客户端
// publicBase 为空时返回存储桶的虚拟主机地址
func NewS3Backend(ctx context.Context, bucket, region, publicBase string) (*S3Backend, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newS3Backend(s3.NewFromConfig(cfg), bucket, region, publicBase), nil
}

func newS3Backend(client objectPutter, bucket, region, publicBase string) *S3Backend {
	return &S3Backend{
		client:     client,
		bucket:     bucket,
		region:     region,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

func (b *S3Backend) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3 object %s: %w", key, err)
	}
	return b.objectURL(key), nil
}

func (b *S3Backend) objectURL(key string) string {
	if b.publicBase != "" {
		return b.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key)
}
