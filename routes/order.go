package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	orderControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/order"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	order := api.Group("/order")
	{
		authed := order.Group("", middleware.ValidateUserToken(cfg))
		{
			authed.POST("/checkout", orderControllers.CheckoutHandler(db, logger))
			authed.GET("", orderControllers.GetMyOrders(db, logger))
			authed.GET("/:orderId", orderControllers.GetOrderDetail(db, cfg, logger))
			authed.PATCH("/:orderId/cancel", orderControllers.CancelOrder(db, logger))
			authed.DELETE("/delete/:orderId", orderControllers.DeleteOrder(db, logger))
		}

		admin := order.Group("/admin", middleware.ValidateAdminToken(cfg))
		{
			admin.GET("", orderControllers.GetAllOrders(db, logger))
			admin.GET("/:orderId", orderControllers.GetOrderDetailAdmin(db, cfg, logger))
			admin.PATCH("/:orderId/status", orderControllers.UpdateOrderStatus(db, logger))
		}

		// Live order feed for the admin dashboard.
		order.GET("/ws", orderControllers.OrderFeedHandler)
	}
}
