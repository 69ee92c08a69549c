package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
)

// SetupRoutes mounts the full API surface under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger, mail mailer.Mailer) {
	api := r.Group("/api")

	SetupUserRoutes(api, db, cfg, logger, mail)
	SetupAdminRoutes(api, db, cfg, logger, mail)
	SetupCatalogRoutes(api, db, cfg, logger, mail)
	SetupCartRoutes(api, db, cfg, logger)
	SetupOrderRoutes(api, db, cfg, logger)
	SetupWishlistRoutes(api, db, cfg, logger)
	SetupAddressRoutes(api, db, cfg, logger)
}
