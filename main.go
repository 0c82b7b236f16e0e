package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/controllers"
	"github.com/sushibar/sushi-bar-api/middleware"
	"github.com/sushibar/sushi-bar-api/models"
	"github.com/sushibar/sushi-bar-api/services"
	"github.com/sushibar/sushi-bar-api/utils"
)

func main() {
	log.Println("Starting Sushi Bar API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.Reservation{},
		&models.SiteSetting{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Menu images go to S3 when a bucket is configured, otherwise to the
	// local uploads directory
	if cfg.HasS3() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
		log.Printf("Image storage: S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalImageService(utils.UploadDir)
		log.Printf("Image storage: local directory %s", utils.UploadDir)
	}

	// Seed the default admin account if no admin exists yet
	if err := ensureAdminUser(cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	router := setupAppRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupAppRouter builds the Gin engine with all application routes
func setupAppRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Public catalog and appearance settings
		v1.GET("/menu", controllers.ListMenu)
		v1.GET("/settings", controllers.GetSiteSettings)
		v1.GET("/uploads/:filename", controllers.GetUploadedImage)

		// Account registration and login
		auth := v1.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// Cart, checkout, history, reservations
		authed := v1.Group("")
		authed.Use(middleware.RequireAuth(cfg))
		{
			authed.POST("/add_to_cart/:item_id", controllers.AddToCart)
			authed.GET("/cart", controllers.GetCart)
			authed.POST("/update_cart/:order_id", controllers.UpdateCart)
			authed.POST("/checkout", controllers.Checkout)
			authed.GET("/cancel_order/:order_id", controllers.CancelOrder)
			authed.GET("/order_history", controllers.OrderHistory)
			authed.POST("/reservations", controllers.CreateReservation)
			authed.GET("/reservations", controllers.MyReservations)
		}

		// Back office
		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth(cfg), middleware.RequireAdmin())
		{
			admin.GET("/dashboard", controllers.AdminDashboard)

			admin.GET("/menu", controllers.AdminListMenuItems)
			admin.POST("/menu", controllers.AdminCreateMenuItem)
			admin.PUT("/menu/:item_id", controllers.AdminUpdateMenuItem)
			admin.DELETE("/menu/:item_id", controllers.AdminDeleteMenuItem)
			admin.POST("/menu/:item_id/image", controllers.AdminUploadMenuItemImage)

			admin.GET("/orders", controllers.AdminListOrders)
			admin.POST("/orders/update_status/:order_id", controllers.AdminUpdateOrderStatus)
			admin.POST("/orders/cancel/:order_id", controllers.AdminCancelOrder)

			admin.GET("/users", controllers.AdminListUsers)
			admin.POST("/users/toggle_admin/:user_id", controllers.AdminToggleAdmin)
			admin.POST("/users/delete/:user_id", controllers.AdminDeleteUser)

			admin.GET("/settings", controllers.AdminGetSiteSettings)
			admin.POST("/settings", controllers.AdminUpdateSiteSettings)
		}
	}

	return router
}

// ensureAdminUser creates the configured admin account when no admin exists.
// Skipped when ADMIN_PASSWORD is unset.
func ensureAdminUser(cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	db := config.GetDB()
	var count int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		IsAdmin:  true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account %q", admin.Username)
	return nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sushi Bar API is running",
	})
}
