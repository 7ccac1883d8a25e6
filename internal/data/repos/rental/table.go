package rental

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

type table[T any] struct {
	db     *gorm.DB
	log    *logger.Logger
	schema *entity.Schema[T]
}

// NewTable returns gorm-backed table access for the kind described by schema.
func NewTable[T any](db *gorm.DB, baseLog *logger.Logger, schema *entity.Schema[T]) entity.Table {
	return newTable(db, baseLog, schema)
}

func newTable[T any](db *gorm.DB, baseLog *logger.Logger, schema *entity.Schema[T]) *table[T] {
	return &table[T]{
		db:     db,
		log:    baseLog.With("repo", schema.Kind.String()+"Table"),
		schema: schema,
	}
}

type row[T any] struct {
	model  *T
	schema *entity.Schema[T]
}

func (r *row[T]) ID() uint                 { return r.schema.ID(r.model) }
func (r *row[T]) Columns() []entity.Column { return r.schema.Columns(r.model) }
func (r *row[T]) AssignFrom(fields map[string]any) error {
	return r.schema.Assign(r.model, fields)
}

func (t *table[T]) wrap(m *T) *row[T] { return &row[T]{model: m, schema: t.schema} }

func (t *table[T]) unwrap(r entity.Row) (*row[T], error) {
	rr, ok := r.(*row[T])
	if !ok || rr == nil || rr.model == nil {
		return nil, entity.NewError(entity.CodeInternal, "table.unwrap",
			fmt.Sprintf("row %T does not belong to the %s table", r, t.schema.Kind), nil)
	}
	return rr, nil
}

func (t *table[T]) Kind() entity.Kind { return t.schema.Kind }

func (t *table[T]) RequiredFields() []string { return t.schema.RequiredFields() }

func (t *table[T]) QueryAll(dbc dbctx.Context) ([]entity.Row, error) {
	var models []*T
	if err := dbc.Handle(t.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Row, 0, len(models))
	for _, m := range models {
		out = append(out, t.wrap(m))
	}
	return out, nil
}

func (t *table[T]) QueryByID(dbc dbctx.Context, id uint) (entity.Row, error) {
	var models []*T
	if err := dbc.Handle(t.db).
		Where("id = ?", id).
		Limit(1).
		Find(&models).Error; err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	return t.wrap(models[0]), nil
}

func (t *table[T]) Construct(dbc dbctx.Context, fields map[string]any) (entity.Row, error) {
	m, err := t.schema.Construct(fields)
	if err != nil {
		return nil, err
	}
	if err := dbc.Handle(t.db).Create(m).Error; err != nil {
		return nil, err
	}
	r := t.wrap(m)
	t.log.Debug("Row created", "id", r.ID())
	return r, nil
}

func (t *table[T]) Save(dbc dbctx.Context, r entity.Row) error {
	rr, err := t.unwrap(r)
	if err != nil {
		return err
	}
	return dbc.Handle(t.db).Save(rr.model).Error
}
