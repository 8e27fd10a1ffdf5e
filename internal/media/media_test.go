package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0xf9, G: 0xea, B: 0xdb, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploaderSavesLocally(t *testing.T) {
	dir := t.TempDir()
	uploader := NewUploader(NewLocalBackend(dir, "/uploads"), 0)
	uploader.now = func() time.Time { return time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) }

	img, err := uploader.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 32, 18)))
	require.NoError(t, err)

	assert.Equal(t, 32, img.Width)
	assert.Equal(t, 18, img.Height)
	assert.Equal(t, "image/png", img.ContentType)
	assert.True(t, strings.HasPrefix(img.Key, "20240506-"))
	assert.True(t, strings.HasSuffix(img.Key, ".png"))
	assert.Equal(t, "/uploads/"+img.Key, img.URL)

	stored, err := os.ReadFile(filepath.Join(dir, img.Key))
	require.NoError(t, err)
	assert.Len(t, stored, img.Size)
}

func TestUploaderRejectsNonImages(t *testing.T) {
	uploader := NewUploader(NewLocalBackend(t.TempDir(), "/uploads"), 0)

	_, err := uploader.SaveImage(context.Background(), strings.NewReader("<html>not an image</html>"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestUploaderEnforcesSizeLimit(t *testing.T) {
	uploader := NewUploader(NewLocalBackend(t.TempDir(), "/uploads"), 16)

	_, err := uploader.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 8, 8)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	body, _ := io.ReadAll(params.Body)
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3BackendPut(t *testing.T) {
	putter := &fakePutter{}
	backend := newS3Backend(putter, "site-media", "eu-west-1", "")

	url, err := backend.Put(context.Background(), "a.png", "image/png", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "https://site-media.s3.eu-west-1.amazonaws.com/a.png", url)
	assert.Equal(t, "site-media", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "a.png", aws.ToString(putter.input.Key))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, []byte("data"), putter.body)

	cdn := newS3Backend(putter, "site-media", "eu-west-1", "https://cdn.example.com/")
	url, err = cdn.Put(context.Background(), "b.png", "image/png", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/b.png", url)
}

func TestS3BackendPutError(t *testing.T) {
	backend := newS3Backend(&fakePutter{err: errors.New("denied")}, "site-media", "eu-west-1", "")

	uploader := NewUploader(backend, 0)
	_, err := uploader.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 4, 4)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}
