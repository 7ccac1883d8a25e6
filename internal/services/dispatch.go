package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/propdesk-backend/internal/data/aggregates"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/ctxutil"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

// ChangeNotifier receives an event after every committed create or update.
type ChangeNotifier interface {
	Publish(ctx context.Context, ev entity.ChangeEvent) error
}

type noopNotifier struct{}

func (noopNotifier) Publish(context.Context, entity.ChangeEvent) error { return nil }

// NoopNotifier drops every event.
func NoopNotifier() ChangeNotifier { return noopNotifier{} }

// ActionService resolves entity names to dispatchers. The kind -> table map
// is fixed at construction.
type ActionService interface {
	Resolve(name string) (Dispatcher, error)
	Names() []string
}

// Dispatcher runs the generic operations against one resolved kind.
type Dispatcher interface {
	Kind() entity.Kind
	QueryAll(ctx context.Context) ([]entity.Record, error)
	Create(ctx context.Context, payload map[string]any) (entity.Record, error)
	Update(ctx context.Context, req UpdateRequest) (entity.Record, error)
}

type actionService struct {
	log      *logger.Logger
	tx       aggregates.TxRunner
	tables   map[entity.Kind]entity.Table
	hooks    aggregates.Hooks
	notifier ChangeNotifier
	now      func() time.Time
}

func NewActionService(
	baseLog *logger.Logger,
	tx aggregates.TxRunner,
	tables map[entity.Kind]entity.Table,
	hooks aggregates.Hooks,
	notifier ChangeNotifier,
) ActionService {
	if hooks == nil {
		hooks = aggregates.NoopHooks()
	}
	if notifier == nil {
		notifier = NoopNotifier()
	}
	copied := make(map[entity.Kind]entity.Table, len(tables))
	for k, t := range tables {
		copied[k] = t
	}
	return &actionService{
		log:      baseLog.With("service", "ActionService"),
		tx:       tx,
		tables:   copied,
		hooks:    hooks,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *actionService) Resolve(name string) (Dispatcher, error) {
	kind, err := entity.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return &dispatcher{svc: s, kind: kind}, nil
}

// Names lists the canonical name of every kind that has a table wired.
func (s *actionService) Names() []string {
	out := make([]string, 0, len(s.tables))
	for _, k := range entity.Kinds() {
		if _, ok := s.tables[k]; ok {
			out = append(out, k.String())
		}
	}
	return out
}

type dispatcher struct {
	svc  *actionService
	kind entity.Kind
}

func (d *dispatcher) Kind() entity.Kind { return d.kind }

func (d *dispatcher) QueryAll(ctx context.Context) (out []entity.Record, err error) {
	const op = "dispatch.query_all"
	defer d.observe(ctx, op, time.Now(), &err)

	tbl, err := d.table(op)
	if err != nil {
		return nil, err
	}
	rows, err := tbl.QueryAll(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	out = make([]entity.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.Serialize(r.Columns()))
	}
	return out, nil
}

func (d *dispatcher) Create(ctx context.Context, payload map[string]any) (rec entity.Record, err error) {
	const op = "dispatch.create"
	defer d.observe(ctx, op, time.Now(), &err)

	tbl, err := d.table(op)
	if err != nil {
		return nil, err
	}
	if missing := missingFields(tbl.RequiredFields(), payload); len(missing) > 0 {
		return nil, entity.NewError(entity.CodeIncompletePayload, op,
			fmt.Sprintf("%s: missing required fields: %s", d.kind, strings.Join(missing, ", ")), nil)
	}

	var id uint
	err = d.svc.tx.InTx(ctx, func(dbc dbctx.Context) error {
		row, err := tbl.Construct(dbc, payload)
		if err != nil {
			return err
		}
		id = row.ID()
		rec = entity.Serialize(row.Columns())
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	d.publish(ctx, entity.OpCreate, id)
	return rec, nil
}

func (d *dispatcher) Update(ctx context.Context, req UpdateRequest) (rec entity.Record, err error) {
	const op = "dispatch.update"
	defer d.observe(ctx, op, time.Now(), &err)

	tbl, err := d.table(op)
	if err != nil {
		return nil, err
	}

	var (
		row   entity.Row
		saved bool
	)
	err = d.svc.tx.InTx(ctx, func(dbc dbctx.Context) error {
		r, err := tbl.QueryByID(dbc, req.ID)
		if err != nil {
			return err
		}
		if r == nil {
			return entity.NewError(entity.CodeNotFound, op, fmt.Sprintf("%s %d not found", d.kind, req.ID), nil)
		}
		if len(req.Fields) > 0 {
			if err := r.AssignFrom(req.Fields); err != nil {
				return err
			}
			if err := tbl.Save(dbc, r); err != nil {
				return err
			}
			saved = true
		}
		row = r
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if saved {
		d.publish(ctx, entity.OpUpdate, row.ID())
	}

	if req.PaymentToken != nil && d.kind.AcceptsPayments() {
		if err := d.initiatePayment(ctx, tbl, row, *req.PaymentToken); err != nil {
			return nil, err
		}
	}
	return entity.Serialize(row.Columns()), nil
}

// initiatePayment runs in its own transaction. A failure here leaves the
// preceding field update committed.
func (d *dispatcher) initiatePayment(ctx context.Context, tbl entity.Table, row entity.Row, token string) (err error) {
	const op = "dispatch.payment"
	defer func() { d.svc.hooks.IncPaymentInit(d.kind.String(), aggregates.StatusOf(err)) }()

	pt, ok := tbl.(entity.PaymentTable)
	if !ok {
		return entity.NewError(entity.CodeUndefinedOperation, op,
			fmt.Sprintf("%s table cannot initiate payments", d.kind), nil)
	}
	err = d.svc.tx.InTx(ctx, func(dbc dbctx.Context) error {
		return pt.InitiatePayment(dbc, row, token)
	})
	if err != nil {
		return entity.NewError(entity.CodePaymentFailed, op,
			fmt.Sprintf("%s %d: field update committed, payment initialization failed: %v", d.kind, row.ID(), err), err)
	}
	d.publish(ctx, entity.OpPayment, row.ID())
	return nil
}

func (d *dispatcher) table(op string) (entity.Table, error) {
	tbl, ok := d.svc.tables[d.kind]
	if !ok || tbl == nil {
		return nil, entity.NewError(entity.CodeUndefinedOperation, op,
			fmt.Sprintf("no table wired for %s", d.kind), nil)
	}
	return tbl, nil
}

func (d *dispatcher) publish(ctx context.Context, op entity.ChangeOp, id uint) {
	ev := entity.ChangeEvent{Kind: d.kind.String(), Op: op, ID: id, At: d.svc.now().UTC()}
	if err := d.svc.notifier.Publish(ctx, ev); err != nil {
		d.logger(ctx).Warn("Change notification failed", "op", string(op), "id", id, "error", err)
	}
}

func (d *dispatcher) observe(ctx context.Context, op string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	dur := time.Since(start)
	status := aggregates.StatusOf(err)
	d.svc.hooks.ObserveOperation(d.kind.String(), op, status, dur)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("entity.kind", d.kind.String()),
		attribute.String("dispatch.op", op),
		attribute.String("dispatch.status", status),
	)
	log := d.logger(ctx)
	switch {
	case err == nil:
		log.Debug("Dispatch ok", "op", op, "duration_ms", dur.Milliseconds())
	case entity.IsCode(err, entity.CodeInternal), entity.IsCode(err, entity.CodePaymentFailed), entity.IsCode(err, entity.CodeUndefinedOperation):
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
		log.Error("Dispatch failed", "op", op, "status", status, "error", err)
	default:
		log.Info("Dispatch rejected", "op", op, "status", status, "error", err)
	}
}

func (d *dispatcher) logger(ctx context.Context) *logger.Logger {
	kv := append([]interface{}{"entity", d.kind.String()}, ctxutil.LogFields(ctx)...)
	return d.svc.log.With(kv...)
}

func missingFields(required []string, payload map[string]any) []string {
	var missing []string
	for _, name := range required {
		if _, ok := payload[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
