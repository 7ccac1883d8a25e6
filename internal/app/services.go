package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/data/aggregates"
	"github.com/yungbote/propdesk-backend/internal/observability"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
	"github.com/yungbote/propdesk-backend/internal/services"
)

type Services struct {
	Actions services.ActionService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	var notifier services.ChangeNotifier = services.NoopNotifier()
	if clients.ChangeBus != nil {
		notifier = clients.ChangeBus
	}
	return Services{
		Actions: services.NewActionService(
			log,
			aggregates.NewGormTxRunner(db),
			reposet.Tables,
			aggregates.NewObservabilityHooks(metrics),
			notifier,
		),
	}
}
