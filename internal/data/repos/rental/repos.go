package rental

import (
	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	types "github.com/yungbote/propdesk-backend/internal/domain/rental"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
	"github.com/yungbote/propdesk-backend/internal/platform/payments"
)

// NewTables wires one table per kind. Property, Tenant and Contractor get
// payment-capable tables backed by processor.
func NewTables(db *gorm.DB, baseLog *logger.Logger, processor payments.Processor) map[entity.Kind]entity.Table {
	return map[entity.Kind]entity.Table{
		entity.Owner:           NewTable(db, baseLog, types.OwnerSchema),
		entity.Property:        NewPayableTable(db, baseLog, types.PropertySchema, processor),
		entity.Manager:         NewTable(db, baseLog, types.ManagerSchema),
		entity.Tenant:          NewPayableTable(db, baseLog, types.TenantSchema, processor),
		entity.Ticket:          NewTable(db, baseLog, types.TicketSchema),
		entity.Unit:            NewTable(db, baseLog, types.UnitSchema),
		entity.Contract:        NewTable(db, baseLog, types.ContractSchema),
		entity.Contractor:      NewPayableTable(db, baseLog, types.ContractorSchema, processor),
		entity.ContractPayment: NewTable(db, baseLog, types.ContractPaymentSchema),
		entity.TicketPayment:   NewTable(db, baseLog, types.TicketPaymentSchema),
	}
}
