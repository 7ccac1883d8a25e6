package aggregates

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want entity.ErrorCode
	}{
		{"record not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), entity.CodeNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, entity.CodeConflict},
		{"pg fk", &pgconn.PgError{Code: "23503"}, entity.CodePreconditionFailed},
		{"pg not null", &pgconn.PgError{Code: "23502"}, entity.CodeInvalidField},
		{"sqlite unique", errors.New("UNIQUE constraint failed: payment_account.external_id"), entity.CodeConflict},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), entity.CodePreconditionFailed},
		{"canceled", context.Canceled, entity.CodeInternal},
		{"unknown", errors.New("boom"), entity.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError("test.op", tc.err)
			if !entity.IsCode(got, tc.want) {
				t.Fatalf("MapError(%v) = %v, want code %s", tc.err, got, tc.want)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("MapError lost the cause")
			}
		})
	}
}

func TestMapErrorKeepsCodedErrors(t *testing.T) {
	coded := entity.NewError(entity.CodeIncompletePayload, "create", "missing", nil)
	if got := MapError("other", coded); got != coded {
		t.Fatalf("coded error should pass through unchanged, got %v", got)
	}
	if MapError("x", nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}

func TestStatusOf(t *testing.T) {
	if StatusOf(nil) != "success" {
		t.Fatalf("nil status")
	}
	if StatusOf(entity.NewError(entity.CodeNotFound, "", "", nil)) != "not_found" {
		t.Fatalf("coded status")
	}
	if StatusOf(errors.New("x")) != "failure" {
		t.Fatalf("plain status")
	}
}
