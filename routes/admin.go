package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	adminControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/admin"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
)

func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger, mail mailer.Mailer) {
	admin := api.Group("/admin")
	{
		admin.POST("/register", adminControllers.Register(db, logger))
		admin.POST("/login", adminControllers.Login(db, cfg, logger))
		admin.POST("/forgot-password", adminControllers.ForgotPassword(db, cfg, mail, logger))
		admin.POST("/reset-password/:token", adminControllers.ResetPassword(db, logger))

		authed := admin.Group("", middleware.ValidateAdminToken(cfg))
		{
			authed.GET("/profile", adminControllers.GetProfile(db, logger))
			authed.GET("", adminControllers.GetAllAdmins(db, logger))
			authed.GET("/:id", adminControllers.GetAdmin(db, logger))
			authed.PUT("/:id", adminControllers.UpdateAdmin(db, logger))
			authed.DELETE("/:id", adminControllers.DeleteAdmin(db, logger))
		}
	}
}
