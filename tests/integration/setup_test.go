package integration

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pembukuan/internal/database"
	"pembukuan/internal/handlers"
	"pembukuan/internal/logger"
	"pembukuan/internal/middleware"
	"pembukuan/internal/report"
	"pembukuan/internal/services"
	"pembukuan/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// fixedNow is the clock of the dashboard in every flow.
func fixedNow() time.Time {
	return time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
}

// setupIsolatedDB creates a SQLite database file for a single test and
// applies the SQL migrations to it.
func setupIsolatedDB(t *testing.T) *database.Manager {
	t.Helper()

	cfg := database.Config{
		Driver:        database.DriverSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "ledger.db"),
		MigrationsDir: filepath.Join("..", "..", "migrations"),
		MaxIdleConns:  1,
		MaxOpenConns:  1,
	}
	manager, err := database.NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return manager
}

// setupApp creates a full application stack backed by an isolated SQLite database.
func setupApp(t *testing.T, ownerScoping bool) *testApp {
	t.Helper()

	db := setupIsolatedDB(t).DB()

	// Services
	transactionService := services.NewTransactionService(db)
	summaryService := services.NewSummaryService(db, ownerScoping)
	renderer := report.NewRenderer(report.Options{
		CurrencyPrefix: "Rp",
		Locale:         "id",
		ShowOwner:      ownerScoping,
		Now:            fixedNow,
	})
	reportService := services.NewReportService(summaryService, renderer)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, fixedNow)
	reportHandler := handlers.NewReportHandler(reportService, summaryService)
	referenceHandler := handlers.NewReferenceHandler(ownerScoping)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	v1 := router.Group("/api/v1")
	v1.GET("/reference", referenceHandler.GetReference)
	v1.GET("/summary", summaryHandler.GetSummary)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	reports := v1.Group("/reports")
	reports.GET("", reportHandler.PreviewReport)
	reports.GET("/export", reportHandler.ExportReport)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createTransaction posts body and returns the id of the new transaction.
func (app *testApp) createTransaction(t *testing.T, body string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/transactions", body)
	if rec.Code != 201 {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	return tx["id"].(string)
}

// seedMarch records the household's reference month: a 5,000,000 salary and
// a 1,200,000 food expense, both owned by Me.
func (app *testApp) seedMarch(t *testing.T) (incomeID, expenseID string) {
	t.Helper()
	incomeID = app.createTransaction(t, `{"date":"2024-03-05","category":"Salary","amount":5000000,"kind":"income","owner":"Me"}`)
	expenseID = app.createTransaction(t, `{"date":"2024-03-10","category":"Food & Drink","amount":1200000,"kind":"expense","owner":"Me"}`)
	return incomeID, expenseID
}
