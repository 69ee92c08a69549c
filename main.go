package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
	"github.com/Rahul-rk007/shopping-kart-api/models"
	"github.com/Rahul-rk007/shopping-kart-api/routes"
	"github.com/Rahul-rk007/shopping-kart-api/seeder"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Country{},
		&models.State{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.ShippingAddress{},
		&models.Order{},
		&models.OrderItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.ContactMessage{},
	); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if cfg.RunSeed {
		if err := seeder.Run(db, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	var mail mailer.Mailer = mailer.Nop{}
	if cfg.SMTP.Host != "" {
		mail = mailer.New(cfg.SMTP)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, db, cfg, logger, mail)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
