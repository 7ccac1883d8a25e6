package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"gorm.io/gorm"
)

// MapError maps infrastructure failures onto entity error codes. Errors that
// already carry a code pass through.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if entity.CodeOf(err) != "" {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.Wrap(entity.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.Wrap(entity.CodeConflict, op, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return entity.Wrap(entity.CodePreconditionFailed, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return entity.Wrap(entity.CodeInternal, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return entity.Wrap(entity.CodeConflict, op, err) // unique_violation
		case "23503":
			return entity.Wrap(entity.CodePreconditionFailed, op, err) // foreign_key_violation
		case "23502":
			return entity.Wrap(entity.CodeInvalidField, op, err) // not_null_violation
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint failed"):
		return entity.Wrap(entity.CodeConflict, op, err)
	case strings.Contains(msg, "foreign key constraint"):
		return entity.Wrap(entity.CodePreconditionFailed, op, err)
	default:
		return entity.Wrap(entity.CodeInternal, op, err)
	}
}
