package routes

import (
	"log"
	"os"
	"strings"

	_ "sparklean/docs" // swag-generated swagger docs
	"sparklean/internal/adapter/http/handlers"
	"sparklean/internal/adapter/persistence/repository"
	"sparklean/internal/adapter/persistence/snapshot"
	"sparklean/internal/adapter/persistence/sqlite"
	"sparklean/internal/infrastructure/database"
	"sparklean/internal/infrastructure/notify"
	"sparklean/internal/usecase"
	"sparklean/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	repo := newEstimateRequestRepository()

	deliveries := snapshot.NewNotificationLog(getenvDefault("NOTIFICATIONS_DATA_PATH", "data/notifications.json"))

	var sms interfaces.ISMSGateway
	twilioGateway, err := notify.NewTwilioGateway()
	if err != nil {
		log.Printf("SMS gateway not configured: %v", err)
	} else {
		sms = twilioGateway
	}

	intakeUseCase := usecase.NewIntakeUseCase(repo, sms, deliveries)
	reviewUseCase := usecase.NewReviewUseCase(repo, deliveries)

	intakeHandler := handlers.NewIntakeHandler(intakeUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, intakeHandler, reviewHandler)
}

// newEstimateRequestRepository picks the storage backend. The JSON snapshot
// file is the default; DynamoDB and SQLite exist for deployments that need
// more than one process or more volume than a whole-file rewrite can take.
func newEstimateRequestRepository() interfaces.IEstimateRequestRepository {
	switch strings.ToLower(getenvDefault("STORAGE_BACKEND", "snapshot")) {
	case "dynamodb":
		return repository.NewEstimateRequestDynamoRepository(database.ConnectDynamoDB())
	case "sqlite":
		db, err := sqlite.Open(getenvDefault("ESTIMATES_DB_PATH", "data/estimates.db"))
		if err != nil {
			log.Fatalf("Failed to open sqlite backend: %v", err)
		}
		return sqlite.NewEstimateRequestSQLiteRepository(db)
	default:
		return snapshot.New(getenvDefault("ESTIMATES_DATA_PATH", "data/estimates.json"))
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware())
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}

	origins := getenvDefault("CORS_ALLOW_ORIGINS", "*")
	if origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cors.New(cfg)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
