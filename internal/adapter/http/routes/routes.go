package routes

import (
	"fmt"
	"log"

	_ "projeto_solar/docs" // swag-generated documentation
	"projeto_solar/internal/adapter/http/handlers"
	"projeto_solar/internal/adapter/http/middleware"
	"projeto_solar/internal/adapter/persistence/repository"
	"projeto_solar/internal/infrastructure/config"
	"projeto_solar/internal/infrastructure/database"
	"projeto_solar/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run loads configuration, wires the application and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.Log.Level)
	defer logger.Sync()

	engine := NewEngine(cfg, logger)
	if err := engine.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewEngine builds the gin engine with middlewares, dependencies and all
// route groups. The engine is constructed and returned locally, never held
// as package state, so tests can build isolated instances.
func NewEngine(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.CORS())
	engine.Use(gin.Recovery())

	// Swagger documentation endpoint
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb := database.ConnectDynamoDB()

	projectRepo := repository.NewProjectDynamoRepository(ddb)
	equipmentRepo := repository.NewEquipmentDynamoRepository(ddb)
	accessRepo := repository.NewAccessDynamoRepository(ddb)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, equipmentRepo)
	equipmentUseCase := usecase.NewEquipmentUseCase(equipmentRepo)
	accessUseCase := usecase.NewAccessUseCase(accessRepo)

	v1 := engine.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("", middleware.Auth(cfg.JWT.Secret))
	addProjectRoutes(protected, handlers.NewProjectHandler(projectUseCase))
	addEquipmentRoutes(protected, handlers.NewEquipmentHandler(equipmentUseCase))
	addAccessRoutes(protected, handlers.NewAccessHandler(accessUseCase))

	return engine
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	}
	return gin.ReleaseMode
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}
