package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/port"
	"todoapi/pkg/config"
	"todoapi/pkg/tracing"
)

type HandlersConfig struct {
	AccountHandler *handler.AccountHandler
	TodoHandler    *handler.TodoHandler
}

func SetupRouter(handlers HandlersConfig, issuer port.TokenIssuer, metrics *tracing.AppMetrics, logger *config.AppLogger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("todoapi"))
	router.Use(middleware.RequestLogging(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers, issuer)

	return router
}

// SetupRouterForTests wires the same routes without the telemetry stack.
func SetupRouterForTests(handlers HandlersConfig, issuer port.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers, issuer)

	return router
}

func registerRoutes(router *gin.Engine, handlers HandlersConfig, issuer port.TokenIssuer) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := router.Group("/api")

	api.POST("/register", handlers.AccountHandler.Register)
	api.POST("/login", handlers.AccountHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.BearerAuth(issuer))
	{
		protected.POST("/todos", handlers.TodoHandler.CreateTodo)
		protected.GET("/todos", handlers.TodoHandler.GetTodos)
		protected.PATCH("/todos/:id/complete", handlers.TodoHandler.MarkAsCompleted)
		protected.DELETE("/todos/:id", handlers.TodoHandler.DeleteTodo)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
