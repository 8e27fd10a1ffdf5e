package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/config"
	"github.com/sitedeck/internal/db"
	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

func TestOpenWiresSQLStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := config.AppConfig{
		DatabaseURL:   filepath.Join(dir, "nested", "site.db"),
		StoreDriver:   config.StoreDriverSQL,
		MediaDriver:   config.MediaDriverLocal,
		UploadDir:     filepath.Join(dir, "uploads"),
		UploadURLPath: "/uploads",
		SessionSecret: "test-secret",
		AdminUserName: "admin",
		AdminPassword: "s3cret",
		CacheTTL:      time.Minute,
	}

	deps, err := Open(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer deps.Close()

	if _, ok := deps.Store.(*store.GormStore); !ok {
		t.Fatalf("expected gorm store without redis, got %T", deps.Store)
	}
	if _, err := db.Authenticate(deps.DB, "admin", "s3cret"); err != nil {
		t.Fatalf("admin user not created: %v", err)
	}

	uploader, uploadDir, err := NewUploader(context.Background(), cfg)
	if err != nil || uploader == nil {
		t.Fatalf("local uploader failed: %v", err)
	}
	if uploadDir != cfg.UploadDir {
		t.Fatalf("unexpected upload dir: %s", uploadDir)
	}

	r := deps.Router(cfg, uploader, uploadDir)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected healthy router, got %d", rr.Code)
	}

	services := deps.SeedServices()
	if services.Projects == nil || services.Contacts == nil {
		t.Fatalf("seed services not wired")
	}
}

func TestNewUploaderRequiresBucketForS3(t *testing.T) {
	cfg := config.AppConfig{MediaDriver: config.MediaDriverS3, S3Region: "us-east-1"}
	if _, _, err := NewUploader(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without bucket")
	}
}
