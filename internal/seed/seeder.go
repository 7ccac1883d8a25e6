package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	types "github.com/yungbote/propdesk-backend/internal/domain/rental"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
	"github.com/yungbote/propdesk-backend/internal/services"
)

// Result holds every record the seeder wrote, by kind, in creation order.
type Result map[entity.Kind][]entity.Record

func (r Result) Count(k entity.Kind) int { return len(r[k]) }

type Seeder struct {
	actions services.ActionService
	log     *logger.Logger
	tokens  func() string
}

func NewSeeder(actions services.ActionService, baseLog *logger.Logger) *Seeder {
	return &Seeder{
		actions: actions,
		log:     baseLog.With("service", "Seeder"),
		tokens:  func() string { return "tok_" + strings.ReplaceAll(uuid.NewString(), "-", "") },
	}
}

// Run writes plan through the dispatcher, parents first. With payments on,
// every property, tenant and contractor gets a token update after creation.
func (s *Seeder) Run(ctx context.Context, plan Plan) (Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	run := &seedRun{s: s, plan: plan, out: Result{}}
	d := plan.Defaults

	for i := 0; i < plan.Owners; i++ {
		owner, err := run.create(ctx, entity.Owner, map[string]any{"email": d.Email, "password": d.Password})
		if err != nil {
			return run.out, err
		}
		for j := 0; j < plan.PropertiesPerOwner; j++ {
			if err := run.property(ctx, owner); err != nil {
				return run.out, err
			}
		}
	}
	s.log.Info("Seed complete", "owners", run.out.Count(entity.Owner), "properties", run.out.Count(entity.Property))
	return run.out, nil
}

type seedRun struct {
	s    *Seeder
	plan Plan
	out  Result
}

func (r *seedRun) property(ctx context.Context, ownerID uint) error {
	d := r.plan.Defaults
	prop, err := r.createPayable(ctx, entity.Property, map[string]any{"address": d.Address, "owner_id": ownerID})
	if err != nil {
		return err
	}
	for i := 0; i < r.plan.ManagersPerProperty; i++ {
		if _, err := r.create(ctx, entity.Manager, map[string]any{"email": d.Email, "password": d.Password, "property_id": prop}); err != nil {
			return err
		}
	}

	var units, tenants, contractors []uint
	for i := 0; i < r.plan.UnitsPerProperty; i++ {
		id, err := r.create(ctx, entity.Unit, map[string]any{"property_id": prop, "label": fmt.Sprintf("Unit %d", i+1)})
		if err != nil {
			return err
		}
		units = append(units, id)
	}
	for i := 0; i < r.plan.TenantsPerProperty; i++ {
		id, err := r.createPayable(ctx, entity.Tenant, map[string]any{"email": d.Email, "password": d.Password, "property_id": prop})
		if err != nil {
			return err
		}
		tenants = append(tenants, id)
	}
	for i := 0; i < r.plan.ContractorsPerProperty; i++ {
		id, err := r.createPayable(ctx, entity.Contractor, map[string]any{"email": d.Email, "password": d.Password})
		if err != nil {
			return err
		}
		contractors = append(contractors, id)
	}

	for i := 0; i < r.plan.ContractsPerProperty; i++ {
		contract, err := r.create(ctx, entity.Contract, map[string]any{"unit_id": units[i], "tenant_id": tenants[i], "rent": d.Amount})
		if err != nil {
			return err
		}
		if !r.plan.Payments {
			continue
		}
		for j := 0; j < r.plan.PaymentsPerContract; j++ {
			if _, err := r.create(ctx, entity.ContractPayment, map[string]any{"contract_id": contract, "amount": d.Amount, "status": types.PaymentStatusPending}); err != nil {
				return err
			}
		}
	}
	for i := 0; i < r.plan.TicketsPerProperty; i++ {
		tenant := tenants[i%len(tenants)]
		contractor := contractors[i%len(contractors)]
		ticket, err := r.create(ctx, entity.Ticket, map[string]any{"tenant_id": tenant, "contractor_id": contractor, "amount": d.Amount})
		if err != nil {
			return err
		}
		if !r.plan.Payments {
			continue
		}
		for j := 0; j < r.plan.PaymentsPerTicket; j++ {
			if _, err := r.create(ctx, entity.TicketPayment, map[string]any{"ticket_id": ticket, "amount": d.Amount, "status": types.PaymentStatusPending}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *seedRun) create(ctx context.Context, kind entity.Kind, payload map[string]any) (uint, error) {
	d, err := r.s.actions.Resolve(kind.String())
	if err != nil {
		return 0, err
	}
	rec, err := d.Create(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("seed %s: %w", kind, err)
	}
	r.out[kind] = append(r.out[kind], rec)
	return recordID(kind, rec)
}

// createPayable creates the row and, with payments on, attaches a processor
// account through a token update.
func (r *seedRun) createPayable(ctx context.Context, kind entity.Kind, payload map[string]any) (uint, error) {
	id, err := r.create(ctx, kind, payload)
	if err != nil || !r.plan.Payments {
		return id, err
	}
	d, err := r.s.actions.Resolve(kind.String())
	if err != nil {
		return 0, err
	}
	token := r.s.tokens()
	rec, err := d.Update(ctx, services.UpdateRequest{ID: id, PaymentToken: &token})
	if err != nil {
		return 0, fmt.Errorf("seed %s payments: %w", kind, err)
	}
	recs := r.out[kind]
	recs[len(recs)-1] = rec
	return id, nil
}

func recordID(kind entity.Kind, rec entity.Record) (uint, error) {
	raw, ok := rec.Value("id")
	if !ok {
		return 0, fmt.Errorf("seed %s: record has no id", kind)
	}
	return entity.AsID(raw)
}
