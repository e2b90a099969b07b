package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"condogest/internal/config"
	"condogest/internal/handlers"
	"condogest/internal/logger"
	"condogest/internal/middleware"
	"condogest/internal/recordstore"
	"condogest/internal/report"
	"condogest/internal/validator"

	_ "condogest/internal/docs" // Import swagger docs
)

// @title           CondoGest Report Service
// @version         1.0
// @description     Reporting service for the CondoGest condominium management platform: financial, occurrence, water consumption, and reservation reports with public share links.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Record store client and reporting pipeline
	store := recordstore.New(appConfig.RecordStoreBaseURL, appConfig.RecordStoreTimeout)
	orchestrator := report.NewOrchestrator(store)
	issuer := report.NewShareIssuer(store, appConfig.PublicBaseURL)

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(orchestrator, issuer)
	publicHandler := handlers.NewPublicReportHandler(orchestrator)
	transactionHandler := handlers.NewTransactionHandler(store)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public share-link viewer (token-scoped, no authentication)
	router.GET("/relatorio-financeiro/:token", publicHandler.View)

	// API v1 group, all authenticated
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware())

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/:slug", reportHandler.Generate)
	reports.POST("/financeiro/share", reportHandler.Share)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.PATCH("/:id/status", transactionHandler.ToggleStatus)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	log.Infof("Starting CondoGest report service on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
