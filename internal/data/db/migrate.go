package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/domain/rental"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(rental.Models()...)
}

type foreignKey struct {
	table, column, refTable string
}

var foreignKeys = []foreignKey{
	{"property", "owner_id", "owner"},
	{"manager", "property_id", "property"},
	{"unit", "property_id", "property"},
	{"tenant", "property_id", "property"},
	{"contract", "unit_id", "unit"},
	{"contract", "tenant_id", "tenant"},
	{"ticket", "tenant_id", "tenant"},
	{"ticket", "contractor_id", "contractor"},
	{"contract_payment", "contract_id", "contract"},
	{"ticket_payment", "ticket_id", "ticket"},
}

// EnsureForeignKeys adds the parent references gorm was told not to create.
// Postgres only; re-running is a no-op.
func EnsureForeignKeys(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		name := fmt.Sprintf("fk_%s_%s", fk.table, fk.column)
		stmt := fmt.Sprintf(`
			DO $$
			BEGIN
				ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q ("id");
			EXCEPTION
				WHEN duplicate_object THEN NULL;
			END $$;
		`, fk.table, name, fk.column, fk.refTable)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if s.driver != DriverPostgres {
		return nil
	}
	if err := EnsureForeignKeys(s.db); err != nil {
		s.log.Error("Foreign key migration failed", "error", err)
		return err
	}
	return nil
}
