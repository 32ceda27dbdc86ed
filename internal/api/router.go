package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nexus-inventory/inventory-system/docs"
	"github.com/nexus-inventory/inventory-system/internal/api/handler"
	"github.com/nexus-inventory/inventory-system/internal/api/middleware"
	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/service"
	mongodb "github.com/nexus-inventory/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/nexus-inventory/inventory-system/internal/infrastructure/db/redis"
	"github.com/nexus-inventory/inventory-system/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	log := logger.Get()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	areaRepo := mongodb.NewAreaRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	logRepo := mongodb.NewLogRepository(db)
	codeStore := redisdb.NewResetCodeStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, logRepo, codeStore, jwtSecret, tokenTTL, log)
	itemService := service.NewItemService(itemRepo, logRepo, log)
	areaService := service.NewAreaService(areaRepo, logRepo, log)
	dashboardService := service.NewDashboardService(itemRepo, areaRepo)
	logService := service.NewLogService(logRepo)
	userService := service.NewUserService(userRepo, logRepo, jwtSecret, tokenTTL, log)
	exportService := service.NewExportService(itemService, areaRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService, exportService)
	areaHandler := handler.NewAreaHandler(areaService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	logHandler := handler.NewLogHandler(logService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))
	superuserOnly := middleware.SuperUser()

	// --- Auth routes (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/password-reset/request", authHandler.RequestPasswordReset)
	e.POST("/auth/password-reset/confirm", authHandler.ConfirmPasswordReset)
	e.POST("/auth/recover-admin", authHandler.RecoverAdminCredentials)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authRequired)

	v1.GET("/items", itemHandler.List)
	v1.GET("/items/export/csv", itemHandler.ExportCSV)
	v1.GET("/items/export/pdf", itemHandler.ExportPDF)
	v1.POST("/items", itemHandler.Create, adminOnly)
	v1.PUT("/items/:id", itemHandler.Update, adminOnly)
	v1.DELETE("/items/:id", itemHandler.Delete, adminOnly)

	v1.GET("/areas", areaHandler.List)
	v1.POST("/areas", areaHandler.Create, adminOnly)
	v1.PUT("/areas/:id", areaHandler.Update, adminOnly)
	v1.DELETE("/areas/:id", areaHandler.Delete, adminOnly)

	v1.GET("/dashboard/stats", dashboardHandler.Stats)

	v1.GET("/logs", logHandler.Recent)

	v1.GET("/users", userHandler.List, superuserOnly)
	v1.POST("/users", userHandler.Create, superuserOnly)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete, superuserOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
