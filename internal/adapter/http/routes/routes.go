package routes

import (
	"log/slog"
	"os"
	"strconv"

	_ "boxertrucks/docs" // This will be auto-generated
	"boxertrucks/internal/adapter/http/handlers"
	repository2 "boxertrucks/internal/adapter/persistence/repository"
	"boxertrucks/internal/domain/pricing"
	"boxertrucks/internal/infrastructure/clock"
	"boxertrucks/internal/infrastructure/database"
	"boxertrucks/internal/infrastructure/logger"
	"boxertrucks/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	log := logger.New()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Error("failed to startup the application", "error", err)
		os.Exit(1)
	}
}

func getRoutes(log *slog.Logger) {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	driverRepo := repository2.NewDriverDynamoRepository(ddb)
	assignmentRepo := repository2.NewJobAssignmentDynamoRepository(ddb)

	rates := loadRates(log)
	timeProvider := clock.SystemTimeProvider{}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, rates, timeProvider)
	driverUseCase := usecase.NewDriverUseCase(driverRepo, timeProvider)
	jobUseCase := usecase.NewJobUseCase(jobRepo, quoteRepo, driverRepo, assignmentRepo, rates, timeProvider, log)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	driverHandler := handlers.NewDriverHandler(driverUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMovingRoutes(v1, quoteHandler, jobHandler, driverHandler)
}

// loadRates reads the rate card from RATES_FILE when set, otherwise falls
// back to the built-in defaults.
func loadRates(log *slog.Logger) pricing.Rates {
	path := os.Getenv("RATES_FILE")
	if path == "" {
		return pricing.DefaultRates()
	}

	rates, err := pricing.LoadRates(path)
	if err != nil {
		log.Warn("failed to load rates file, using defaults", "path", path, "error", err)
		return pricing.DefaultRates()
	}

	log.Info("loaded rates file", "path", path)
	return rates
}

func setMiddlewares(log *slog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
