package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/handler"
	"github.com/sitedeck/internal/middleware"
	"go.uber.org/zap"
)

// Options 汇总构建路由所需的依赖
type Options struct {
	API            *handler.API
	Logger         *zap.Logger
	SessionSecret  string
	SecureCookie   bool
	AllowedOrigins []string
	// UploadDir 非空时以 UploadURLPath 提供本地上传文件
	UploadDir     string
	UploadURLPath string
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	// 配置会话中间件
	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("sitedeck_session", store))

	if opts.UploadDir != "" {
		urlPath := "/" + strings.Trim(opts.UploadURLPath, "/")
		if urlPath == "/" {
			urlPath = "/uploads"
		}
		r.Static(urlPath, opts.UploadDir)
	}

	api := opts.API
	r.GET("/healthz", api.HealthCheck)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的 API 路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/social-links", api.ListSocialLinks)
			auth.GET("/social-links/icons", api.ListSocialIcons)
			auth.GET("/social-links/:id", api.GetSocialLink)
			auth.POST("/social-links", api.CreateSocialLink)
			auth.PUT("/social-links/:id", api.UpdateSocialLink)
			auth.DELETE("/social-links/:id", api.DeleteSocialLink)

			auth.GET("/projects", api.ListProjects)
			auth.GET("/projects/:id", api.GetProject)
			auth.GET("/projects/:id/preview", api.PreviewProject)
			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)

			auth.GET("/pricing-plans", api.ListPricingPlans)
			auth.GET("/pricing-plans/:id", api.GetPricingPlan)
			auth.POST("/pricing-plans", api.CreatePricingPlan)
			auth.PUT("/pricing-plans/:id", api.UpdatePricingPlan)
			auth.DELETE("/pricing-plans/:id", api.DeletePricingPlan)

			auth.GET("/parallax-sections", api.ListParallaxSections)
			auth.GET("/parallax-sections/background/random", api.RandomParallaxBackground)
			auth.GET("/parallax-sections/:id", api.GetParallaxSection)
			auth.POST("/parallax-sections", api.CreateParallaxSection)
			auth.PUT("/parallax-sections/:id", api.UpdateParallaxSection)
			auth.DELETE("/parallax-sections/:id", api.DeleteParallaxSection)

			auth.GET("/contacts", api.ListContacts)
			auth.GET("/contacts/:id", api.GetContact)
			auth.POST("/contacts", api.CreateContact)
			auth.PUT("/contacts/:id", api.UpdateContact)
			auth.DELETE("/contacts/:id", api.DeleteContact)

			auth.GET("/platforms", api.ListPlatforms)
			auth.GET("/resolve", api.ResolveVideoURL)
			auth.POST("/uploads", api.UploadImage)
		}
	}

	return r
}

// corsConfig 未配置来源时放行所有来源，便于本地开发
func corsConfig(allowed []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(allowed) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return true }
		return cfg
	}
	cfg.AllowOrigins = allowed
	return cfg
}
