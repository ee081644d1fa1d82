// @title           FBS Backend API
// @version         1.0.0
// @description     Order-fulfillment relay. Converts a remote resource into a downloadable file via the EasyBargain conversion service, re-hosts the result on Dropbox and records the transaction against the user's prepaid credits.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

package main

import (
	"log"
	"net/http"

	"fbs-backend/docs"
	"fbs-backend/internal/config"
	"fbs-backend/internal/dropbox"
	"fbs-backend/internal/easybargain"
	"fbs-backend/internal/handlers"
	"fbs-backend/internal/middleware"
	"fbs-backend/internal/services"
	"fbs-backend/internal/sheets"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	// External service clients
	providerClient := easybargain.NewClient(cfg.EasyBargainBaseURL, cfg.EasyBargainAPIKey)
	dropboxClient := dropbox.NewClient(cfg.DropboxContentBaseURL, cfg.DropboxAPIBaseURL, cfg.DropboxToken)
	usersClient := sheets.NewUsersClient(cfg.SheetUsersURL)
	ordersClient := sheets.NewOrdersClient(cfg.SheetOrdersURL)

	// Fulfillment pipeline
	fulfillment := services.NewFulfillmentService(
		providerClient,
		usersClient,
		ordersClient,
		dropboxClient,
		services.DefaultPollInterval,
		services.DefaultMaxPollAttempts,
	)

	// Handlers
	orderHandler := handlers.NewOrderHandler(fulfillment)
	infoHandler := handlers.NewInfoHandler(providerClient)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness
	router.GET("/", handlers.RootHandler)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api")
	api.GET("/info", infoHandler.GetInfo)
	api.POST("/order", orderHandler.PlaceOrder)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
