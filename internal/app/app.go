package app

import (
	"fmt"
	"time"

	"admin_backend/internal/auth"
	"admin_backend/internal/config"
	"admin_backend/internal/database"
	"admin_backend/internal/handlers"
	"admin_backend/internal/logger"
	"admin_backend/internal/middleware"
	"admin_backend/internal/repositories"
	"admin_backend/internal/routes"
	"admin_backend/internal/services"
	"admin_backend/internal/validator"
	"admin_backend/pkg/apperrors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedAdmin(gormDB, cfg); err != nil {
		// Without the admin account the console is unreachable; refuse to start
		logger.Fatal("Failed to seed admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine: middleware, services, handlers,
// routes. Separated from Run so tests can mount it on httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	auth.Init(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	apperrors.SetDebug(!cfg.IsProduction())

	serviceContainer := initializeServices(gormDB, cfg)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authMW := middleware.AuthMiddleware(serviceContainer.AuthService)
	routes.RegisterRoutes(ginRouter, appHandlers, authMW)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	faqRepo := repositories.NewFAQRepository(gormDB)
	planRepo := repositories.NewPlanRepository(gormDB)

	policy := services.AdminPolicy{
		UserID: cfg.Admin.UserID,
		Email:  cfg.Admin.Email,
	}

	return &services.ServiceContainer{
		AuthService: services.NewAuthService(userRepo, policy),
		UserService: services.NewUserService(userRepo),
		FAQService:  services.NewFAQService(faqRepo),
		PlanService: services.NewPlanService(planRepo),
	}
}
