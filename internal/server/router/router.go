package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/datalog/internal/config"
	"github.com/mamadbah2/datalog/internal/domain/models"
	"github.com/mamadbah2/datalog/internal/server/handlers"
)

// Handlers bundles the four record-kind adapters the router exposes.
type Handlers struct {
	Larvae    *handlers.LogHandler[models.LarvaeFeedingLogCreate, models.LarvaeFeedingLog]
	Prepupae  *handlers.LogHandler[models.ContainerLogPrepupaeCreate, models.ContainerLogPrepupae]
	Neonates  *handlers.LogHandler[models.ContainerLogNeonatesCreate, models.ContainerLogNeonates]
	Microwave *handlers.MicrowaveHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, corsCfg config.CORSConfig, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(cors.New(corsConfig(corsCfg)))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	registerLogRoutes(api.Group("/logs"), h.Larvae)
	registerLogRoutes(api.Group("/container-logs/prepupae"), h.Prepupae)
	registerLogRoutes(api.Group("/container-logs/neonates"), h.Neonates)

	microwave := api.Group("/microwave-logs")
	registerLogRoutes(microwave, h.Microwave.LogHandler)
	microwave.PUT("/:id", h.Microwave.Update)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func registerLogRoutes[C, T any](g *gin.RouterGroup, h *handlers.LogHandler[C, T]) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
