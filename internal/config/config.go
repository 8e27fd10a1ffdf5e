package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 存储与媒体驱动的可选值。
const (
	StoreDriverSQL   = "sql"
	StoreDriverMongo = "mongo"

	MediaDriverLocal = "local"
	MediaDriverS3    = "s3"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	GinMode       string
	AppEnv        string
	SessionSecret string

	StoreDriver   string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	RedisURL      string
	CacheTTL      time.Duration

	MediaDriver     string
	UploadDir       string
	UploadURLPath   string
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string

	AdminUserName  string
	AdminPassword  string
	AllowedOrigins []string
}

// IsProduction 判断当前是否运行在生产环境。
func (c AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 若工作目录下存在 .env 文件，会先将其加载到环境变量中（已存在的变量不会被覆盖）。
func Load() AppConfig {
	_ = godotenv.Load()

	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	storeDriver := strings.ToLower(envOr("STORE_DRIVER", StoreDriverSQL))
	if storeDriver != StoreDriverMongo {
		storeDriver = StoreDriverSQL
	}

	mediaDriver := strings.ToLower(envOr("MEDIA_DRIVER", MediaDriverLocal))
	if mediaDriver != MediaDriverS3 {
		mediaDriver = MediaDriverLocal
	}

	cacheTTL := 5 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cacheTTL = parsed
		}
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		GinMode:       envOr("GIN_MODE", "release"),
		AppEnv:        strings.ToLower(envOr("APP_ENV", "development")),
		SessionSecret: envOr("SESSION_SECRET", "sitedeck-dev-secret"),

		StoreDriver:   storeDriver,
		DatabaseURL:   envOr("DATABASE_URL", "data/sitedeck.db"),
		MongoURI:      envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: envOr("MONGO_DATABASE", "sitedeck"),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
		CacheTTL:      cacheTTL,

		MediaDriver:     mediaDriver,
		UploadDir:       envOr("UPLOAD_DIR", "data/uploads"),
		UploadURLPath:   envOr("UPLOAD_URL_PATH", "/uploads"),
		S3Bucket:        strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:        envOr("S3_REGION", "us-east-1"),
		S3PublicBaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")), "/"),

		AdminUserName:  strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword:  strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
