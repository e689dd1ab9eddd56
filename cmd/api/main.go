package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"pembukuan/internal/config"
	"pembukuan/internal/database"
	"pembukuan/internal/handlers"
	"pembukuan/internal/logger"
	"pembukuan/internal/middleware"
	"pembukuan/internal/report"
	"pembukuan/internal/services"
	"pembukuan/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pembukuan/internal/docs" // Import swagger docs
)

// @title           Pembukuan API
// @version         1.0
// @description     Pembukuan is a family finance ledger: record income and expenses, review monthly summaries and export monthly reports as PDF.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

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

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if appConfig.Database.AutoMigrate {
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	validator.Register()

	router := newRouter(dbManager, appConfig)

	log.Infof("Starting Pembukuan server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

func newRouter(dbManager *database.Manager, appConfig *config.Config) *gin.Engine {
	ledger := appConfig.Ledger

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	summaryService := services.NewSummaryService(db, ledger.OwnerScoping)
	renderer := report.NewRenderer(report.Options{
		CurrencyPrefix: ledger.CurrencyPrefix,
		Locale:         ledger.Locale,
		ShowOwner:      ledger.OwnerScoping,
	})
	reportService := services.NewReportService(summaryService, renderer)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, time.Now)
	reportHandler := handlers.NewReportHandler(reportService, summaryService)
	referenceHandler := handlers.NewReferenceHandler(ledger.OwnerScoping)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	v1.GET("/reference", referenceHandler.GetReference)
	v1.GET("/summary", summaryHandler.GetSummary)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("", reportHandler.PreviewReport)
	reports.GET("/export", reportHandler.ExportReport)

	return router
}
