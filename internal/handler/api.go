package handler

import (
	"github.com/sitedeck/internal/media"
	"github.com/sitedeck/internal/service"
	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	store    store.Store
	social   *service.SocialLinkService
	projects *service.ProjectService
	pricing  *service.PricingService
	parallax *service.ParallaxService
	contacts *service.ContactService
	uploader *media.Uploader
	log      *zap.Logger
}

// NewAPI constructs a handler set with shared services.
// gdb holds the admin accounts; st holds the site content.
func NewAPI(gdb *gorm.DB, st store.Store, uploader *media.Uploader, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}

	return &API{
		db:       gdb,
		store:    st,
		social:   service.NewSocialLinkService(st, log),
		projects: service.NewProjectService(st, log),
		pricing:  service.NewPricingService(st, log),
		parallax: service.NewParallaxService(st, log),
		contacts: service.NewContactService(st, log),
		uploader: uploader,
		log:      log,
	}
}
