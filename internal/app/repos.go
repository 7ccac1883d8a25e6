package app

import (
	"gorm.io/gorm"

	repos "github.com/yungbote/propdesk-backend/internal/data/repos/rental"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
	"github.com/yungbote/propdesk-backend/internal/platform/payments"
)

type Repos struct {
	Tables map[entity.Kind]entity.Table
}

func wireRepos(db *gorm.DB, log *logger.Logger, processor payments.Processor) Repos {
	log.Info("Wiring repos...")
	return Repos{Tables: repos.NewTables(db, log, processor)}
}
