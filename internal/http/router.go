package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/propdesk-backend/internal/http/handlers"
	httpMW "github.com/yungbote/propdesk-backend/internal/http/middleware"
	"github.com/yungbote/propdesk-backend/internal/observability"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	EntityHandler *httpH.EntityHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Entities
		if cfg.EntityHandler != nil {
			api.GET("/entities", cfg.EntityHandler.ListEntities)
			api.GET("/:entity", cfg.EntityHandler.QueryAll)
			api.POST("/:entity", cfg.EntityHandler.Create)
			api.PUT("/:entity", cfg.EntityHandler.Update)
			api.PUT("/:entity/:id", cfg.EntityHandler.Update)
		}
	}

	return r
}
