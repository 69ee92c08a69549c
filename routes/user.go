package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	addressControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/address"
	cartControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/cart"
	userControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/user"
	wishlistControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/wishlist"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
)

func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger, mail mailer.Mailer) {
	user := api.Group("/user")
	{
		user.POST("/signup", userControllers.Signup(db, cfg, logger))
		user.POST("/login", userControllers.Login(db, cfg, logger))
		user.POST("/forgot-password", userControllers.ForgotPassword(db, cfg, mail, logger))
		user.POST("/reset-password/:token", userControllers.ResetPassword(db, logger))

		authed := user.Group("", middleware.ValidateUserToken(cfg))
		{
			authed.GET("/profile", userControllers.GetProfile(db, logger))
			authed.PUT("/profile", userControllers.UpdateProfile(db, logger))
			authed.PUT("/change-password", userControllers.ChangePassword(db, logger))
		}

		admin := user.Group("/admin", middleware.ValidateAdminToken(cfg))
		{
			admin.GET("", userControllers.GetAllUsers(db, logger))
			admin.GET("/user/:id", userControllers.GetUserByID(db, logger))
			admin.PUT("/user/edit/:id", userControllers.AdminUpdateUser(db, logger))
			admin.DELETE("/:id", userControllers.AdminDeleteUser(db, logger))
		}
	}
}

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	cart := api.Group("/cart", middleware.ValidateUserToken(cfg))
	{
		cart.GET("", cartControllers.GetUserCart(db, cfg, logger))
		cart.POST("", cartControllers.AddToCart(db, logger))
		cart.DELETE("/remove/:productId", cartControllers.RemoveFromCart(db, logger))
		cart.PATCH("/increase/:productId", cartControllers.IncreaseQuantity(db, logger))
		cart.PATCH("/decrease/:productId", cartControllers.DecreaseQuantity(db, logger))
		cart.DELETE("/clear", cartControllers.ClearUserCart(db, logger))
	}
}

func SetupWishlistRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	wishlist := api.Group("/wishlist", middleware.ValidateUserToken(cfg))
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db, cfg, logger))
		wishlist.POST("", wishlistControllers.AddToWishlist(db, logger))
		wishlist.DELETE("/:productId", wishlistControllers.RemoveFromWishlist(db, logger))
	}
}

func SetupAddressRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	addresses := api.Group("/shipping-addresses", middleware.ValidateUserToken(cfg))
	{
		addresses.GET("", addressControllers.ListAddresses(db, logger))
		addresses.GET("/:addressId", addressControllers.GetAddress(db, logger))
		addresses.POST("", addressControllers.CreateAddress(db, logger))
		addresses.PUT("/:addressId", addressControllers.UpdateAddress(db, logger))
	}
}
