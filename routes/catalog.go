package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	categoryControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/category"
	contactControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/contact"
	geoControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/geo"
	productControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/product"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
)

func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *zap.Logger, mail mailer.Mailer) {
	category := api.Group("/category")
	{
		category.GET("", categoryControllers.GetCategories(db, logger))

		admin := category.Group("", middleware.ValidateAdminToken(cfg))
		{
			admin.POST("", categoryControllers.CreateCategory(db, logger))
			admin.PUT("/:id", categoryControllers.UpdateCategory(db, logger))
			admin.DELETE("/:id", categoryControllers.DeleteCategory(db, logger))
		}
	}

	subcategory := api.Group("/subcategory")
	{
		subcategory.GET("/list", categoryControllers.ListCategoriesWithSubcategories(db, logger))
		subcategory.GET("/category/:categoryId", categoryControllers.GetSubcategoriesByCategory(db, logger))

		admin := subcategory.Group("", middleware.ValidateAdminToken(cfg))
		{
			admin.GET("/admin/list", categoryControllers.ListCategoriesWithSubcategoriesAdmin(db, logger))
			admin.GET("/:id", categoryControllers.GetSubcategoryByID(db, logger))
			admin.POST("", categoryControllers.CreateSubcategory(db, logger))
			admin.PUT("/:id", categoryControllers.UpdateSubcategory(db, logger))
			admin.DELETE("/:id", categoryControllers.DeleteSubcategory(db, logger))
		}
	}

	product := api.Group("/product")
	{
		product.GET("", productControllers.GetProducts(db, cfg, logger))
		product.GET("/featured", productControllers.GetFeaturedProducts(db, cfg, logger))
		product.GET("/new-arrivals", productControllers.GetNewArrivals(db, cfg, logger))
		product.GET("/colors", productControllers.GetProductColors(db, logger))
		product.GET("/subcategory/:subcategoryId", productControllers.GetProductsBySubcategory(db, cfg, logger))
		product.GET("/:id", productControllers.GetProductByID(db, cfg, logger))

		admin := product.Group("", middleware.ValidateAdminToken(cfg))
		{
			admin.POST("", productControllers.CreateProduct(db, logger))
			admin.PUT("/:id", productControllers.UpdateProduct(db, logger))
			admin.DELETE("/:id", productControllers.DeleteProduct(db, logger))
			admin.GET("/export/excel", productControllers.ExportProductsToExcel(db, logger))
		}
	}

	api.POST("/upload/:productId", middleware.ValidateAdminToken(cfg), productControllers.UploadProductImages(db, cfg, logger))

	country := api.Group("/country")
	{
		country.GET("", geoControllers.GetCountries(db, logger))
		country.GET("/:id", geoControllers.GetCountry(db, logger))

		admin := country.Group("", middleware.ValidateAdminToken(cfg))
		{
			admin.POST("", geoControllers.CreateCountry(db, logger))
			admin.PUT("/:id", geoControllers.UpdateCountry(db, logger))
			admin.DELETE("/:id", geoControllers.DeleteCountry(db, logger))
		}
	}

	state := api.Group("/state")
	{
		state.GET("/country/:countryId", geoControllers.GetStatesByCountry(db, logger))
	}

	contact := api.Group("/contact")
	{
		contact.POST("", contactControllers.SubmitContactForm(db, cfg, mail, logger))
		contact.GET("", middleware.ValidateAdminToken(cfg), contactControllers.ListContactMessages(db, logger))
	}
}
