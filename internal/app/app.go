// Package app wires configuration into stores, services and the HTTP router.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/config"
	"github.com/sitedeck/internal/db"
	"github.com/sitedeck/internal/handler"
	"github.com/sitedeck/internal/media"
	"github.com/sitedeck/internal/router"
	"github.com/sitedeck/internal/seed"
	"github.com/sitedeck/internal/service"
	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Deps 持有进程级别的存储连接
type Deps struct {
	DB    *gorm.DB
	Store store.Store

	log     *zap.Logger
	closers []func(context.Context) error
}

// Open 连接 SQL 数据库（管理员账号，以及 sql 驱动下的站点内容），
// 按配置选择 MongoDB 作为内容存储，并在配置了 REDIS_URL 时叠加列表缓存。
func Open(ctx context.Context, cfg config.AppConfig, log *zap.Logger) (*Deps, error) {
	logLevel := logger.Warn
	if cfg.IsProduction() {
		logLevel = logger.Error
	}
	if err := db.Init(cfg.DatabaseURL, logLevel); err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.EnsureUser(db.DB, cfg.AdminUserName, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("ensure admin user: %w", err)
	}

	deps := &Deps{DB: db.DB, log: log}
	deps.closers = append(deps.closers, func(context.Context) error {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		mongoStore, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		deps.Store = mongoStore
		deps.closers = append(deps.closers, mongoStore.Close)
		log.Info("content store ready", zap.String("driver", "mongo"), zap.String("database", cfg.MongoDatabase))
	default:
		deps.Store = store.NewGormStore(db.DB)
		log.Info("content store ready", zap.String("driver", "sql"))
	}

	if cfg.RedisURL != "" {
		cache, err := store.NewRedisCache(cfg.RedisURL)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		deps.Store = store.NewCachedStore(deps.Store, cache, cfg.CacheTTL, log)
		deps.closers = append(deps.closers, func(context.Context) error { return cache.Close() })
		log.Info("list cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}

	return deps, nil
}

// Close 按打开的逆序释放连接
func (d *Deps) Close() {
	ctx := context.Background()
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil && d.log != nil {
			d.log.Warn("close failed", zap.Error(err))
		}
	}
	d.closers = nil
}

// SeedServices 构造种子数据写入所需的内容服务
func (d *Deps) SeedServices() seed.Services {
	return seed.Services{
		SocialLinks: service.NewSocialLinkService(d.Store, d.log),
		Projects:    service.NewProjectService(d.Store, d.log),
		Pricing:     service.NewPricingService(d.Store, d.log),
		Parallax:    service.NewParallaxService(d.Store, d.log),
		Contacts:    service.NewContactService(d.Store, d.log),
	}
}

// NewUploader 按 MEDIA_DRIVER 构造图片存储，本地存储时同时返回需要挂载的目录
func NewUploader(ctx context.Context, cfg config.AppConfig) (*media.Uploader, string, error) {
	if cfg.MediaDriver == config.MediaDriverS3 {
		backend, err := media.NewS3Backend(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
		if err != nil {
			return nil, "", err
		}
		return media.NewUploader(backend, media.DefaultMaxBytes), "", nil
	}
	backend := media.NewLocalBackend(cfg.UploadDir, cfg.UploadURLPath)
	return media.NewUploader(backend, media.DefaultMaxBytes), backend.Dir(), nil
}

// Router 组装 HTTP 路由
func (d *Deps) Router(cfg config.AppConfig, uploader *media.Uploader, uploadDir string) *gin.Engine {
	api := handler.NewAPI(d.DB, d.Store, uploader, d.log)
	return router.SetupRouter(router.Options{
		API:            api,
		Logger:         d.log,
		SessionSecret:  cfg.SessionSecret,
		SecureCookie:   cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      uploadDir,
		UploadURLPath:  cfg.UploadURLPath,
	})
}
