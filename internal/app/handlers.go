package app

import (
	"github.com/yungbote/propdesk-backend/internal/data/db"
	"github.com/yungbote/propdesk-backend/internal/http"
	httpH "github.com/yungbote/propdesk-backend/internal/http/handlers"
	"github.com/yungbote/propdesk-backend/internal/observability"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Entity *httpH.EntityHandler
}

func wireHandlers(log *logger.Logger, store *db.Service, services Services) Handlers {
	log.Info("Wiring handlers...")
	var pinger httpH.Pinger
	if store != nil {
		pinger = store
	}
	return Handlers{
		Health: httpH.NewHealthHandler(pinger),
		Entity: httpH.NewEntityHandler(services.Actions),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:           log.With("component", "http"),
		Metrics:       metrics,
		ServiceName:   serviceName,
		CORSOrigins:   cfg.CORSOrigins,
		EntityHandler: handlers.Entity,
		HealthHandler: handlers.Health,
	})
}
