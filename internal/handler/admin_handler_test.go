package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/db"
	"github.com/sitedeck/internal/media"
	"github.com/sitedeck/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	gdb := setupHandlerTestDB(t)
	uploader := media.NewUploader(media.NewLocalBackend(t.TempDir(), "/uploads"), 0)
	return NewAPI(gdb, store.NewGormStore(gdb), uploader, nil)
}

func newTestEngine(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func TestLoginAndAuthRequired(t *testing.T) {
	api := newTestAPI(t)
	if err := db.EnsureUser(api.db, "admin", "s3cret"); err != nil {
		t.Fatalf("ensure user failed: %v", err)
	}

	r := newTestEngine(api)
	r.POST("/login", api.Login)
	r.GET("/private", AuthRequired(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	if rr := doJSON(t, r, http.MethodGet, "/private", nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rr.Code)
	}

	if rr := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "admin", "password": "wrong"}); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "admin"}); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rr.Code)
	}

	rr := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "admin", "password": "s3cret"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected login success, got %d: %s", rr.Code, rr.Body.String())
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	authed := httptest.NewRecorder()
	r.ServeHTTP(authed, req)
	if authed.Code != http.StatusNoContent {
		t.Fatalf("expected access with session, got %d", authed.Code)
	}
}
