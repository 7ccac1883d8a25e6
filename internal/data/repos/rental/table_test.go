package rental

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yungbote/propdesk-backend/internal/data/repos/testutil"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	types "github.com/yungbote/propdesk-backend/internal/domain/rental"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/propdesk-backend/internal/platform/payments"
)

func TestTableConstructQueryAndSave(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	tbl := NewTable(db, testutil.Logger(t), types.UnitSchema)

	if tbl.Kind() != entity.Unit {
		t.Fatalf("Kind = %v", tbl.Kind())
	}
	rows, err := tbl.QueryAll(dbc)
	if err != nil {
		t.Fatalf("QueryAll (empty): %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}

	first, err := tbl.Construct(dbc, map[string]any{"property_id": 9, "label": "1A"})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	second, err := tbl.Construct(dbc, map[string]any{"property_id": 9})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if first.ID() == 0 || second.ID() <= first.ID() {
		t.Fatalf("unexpected ids %d, %d", first.ID(), second.ID())
	}

	rows, err = tbl.QueryAll(dbc)
	if err != nil {
		t.Fatalf("QueryAll: %v", err)
	}
	if len(rows) != 2 || rows[0].ID() != first.ID() || rows[1].ID() != second.ID() {
		t.Fatalf("QueryAll returned wrong rows")
	}

	got, err := tbl.QueryByID(dbc, second.ID())
	if err != nil || got == nil {
		t.Fatalf("QueryByID: %v, %v", got, err)
	}
	if err := got.AssignFrom(map[string]any{"label": "2B"}); err != nil {
		t.Fatalf("AssignFrom: %v", err)
	}
	if err := tbl.Save(dbc, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var reloaded types.Unit
	if err := db.First(&reloaded, second.ID()).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Label == nil || *reloaded.Label != "2B" {
		t.Fatalf("label not saved: %+v", reloaded)
	}

	missing, err := tbl.QueryByID(dbc, 999)
	if err != nil || missing != nil {
		t.Fatalf("QueryByID(missing) = %v, %v", missing, err)
	}
}

func TestTableConstructRejectsBadPayload(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	tbl := NewTable(db, testutil.Logger(t), types.OwnerSchema)

	_, err := tbl.Construct(dbc, map[string]any{"email": "a@b.com", "password": "x", "payment_token": "tok"})
	if !entity.IsCode(err, entity.CodeInvalidField) {
		t.Fatalf("expected invalid field, got %v", err)
	}
	if n := testutil.Count(t, db, &types.Owner{}); n != 0 {
		t.Fatalf("expected no owners, got %d", n)
	}
}

func TestTableSaveRejectsForeignRow(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	owners := NewTable(db, testutil.Logger(t), types.OwnerSchema)
	units := NewTable(db, testutil.Logger(t), types.UnitSchema)

	u, err := units.Construct(dbc, map[string]any{"property_id": 1})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := owners.Save(dbc, u); !entity.IsCode(err, entity.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestPayableTableInitiatePayment(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	log := testutil.Logger(t)
	tenants := NewPayableTable(db, log, types.TenantSchema, payments.NewLedger(db, log))

	r, err := tenants.Construct(dbc, map[string]any{"email": "t@example.com", "password": "pw", "property_id": 1})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := tenants.InitiatePayment(dbc, r, "tok_visa"); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	rec := entity.Serialize(r.Columns())
	acct, ok := rec.Value("payment_account_id")
	if !ok || !strings.HasPrefix(acct, "cus_") {
		t.Fatalf("payment_account_id = %q, %v", acct, ok)
	}

	var stored types.Tenant
	if err := db.First(&stored, r.ID()).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PaymentAccountID == nil || *stored.PaymentAccountID != acct {
		t.Fatalf("account id not persisted: %+v", stored)
	}
	if n := testutil.Count(t, db, &types.PaymentAccount{}); n != 1 {
		t.Fatalf("expected 1 payment account, got %d", n)
	}
}

type failingProcessor struct{ err error }

func (p failingProcessor) OpenAccount(dbctx.Context, payments.AccountRequest) (payments.Account, error) {
	return payments.Account{}, p.err
}

func TestPayableTableProcessorFailure(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	boom := errors.New("processor down")
	props := NewPayableTable(db, testutil.Logger(t), types.PropertySchema, failingProcessor{err: boom})

	r, err := props.Construct(dbc, map[string]any{"address": "2 Elm", "owner_id": 1})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := props.InitiatePayment(dbc, r, "tok"); !errors.Is(err, boom) {
		t.Fatalf("expected processor error, got %v", err)
	}
	if _, ok := entity.Serialize(r.Columns()).Value("payment_account_id"); ok {
		t.Fatalf("account id must stay empty on failure")
	}
}

func TestNewTablesCoversEveryKind(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tables := NewTables(db, log, payments.NewLedger(db, log))
	for _, k := range entity.Kinds() {
		tbl, ok := tables[k]
		if !ok {
			t.Fatalf("no table for %v", k)
		}
		if tbl.Kind() != k {
			t.Fatalf("table for %v reports %v", k, tbl.Kind())
		}
		_, payable := tbl.(entity.PaymentTable)
		if payable != k.AcceptsPayments() {
			t.Fatalf("%v: payable=%v, AcceptsPayments=%v", k, payable, k.AcceptsPayments())
		}
	}
}

func TestTablesReadSeededRows(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)
	tables := NewTables(db, log, payments.NewLedger(db, log))

	owner := testutil.SeedOwner(t, ctx, db, "owner@example.com")
	prop := testutil.SeedProperty(t, ctx, db, owner.ID)
	tenant := testutil.SeedTenant(t, ctx, db, prop.ID, "tenant@example.com")
	contractor := testutil.SeedContractor(t, ctx, db, "fixit@example.com")

	cases := []struct {
		kind  entity.Kind
		id    uint
		col   string
		value string
	}{
		{entity.Owner, owner.ID, "email", "owner@example.com"},
		{entity.Property, prop.ID, "owner_id", fmt.Sprint(owner.ID)},
		{entity.Tenant, tenant.ID, "property_id", fmt.Sprint(prop.ID)},
		{entity.Contractor, contractor.ID, "email", "fixit@example.com"},
	}
	dbc := dbctx.Context{Ctx: ctx}
	for _, tc := range cases {
		r, err := tables[tc.kind].QueryByID(dbc, tc.id)
		if err != nil || r == nil {
			t.Fatalf("%v QueryByID(%d) = %v, %v", tc.kind, tc.id, r, err)
		}
		rec := entity.Serialize(r.Columns())
		if got, _ := rec.Value(tc.col); got != tc.value {
			t.Fatalf("%v.%s = %q, want %q", tc.kind, tc.col, got, tc.value)
		}
		if _, ok := rec.Value("created_on"); !ok {
			t.Fatalf("%v created_on not set", tc.kind)
		}
	}

	pt := tables[entity.Property].(entity.PaymentTable)
	r, _ := pt.QueryByID(dbc, prop.ID)
	if err := pt.InitiatePayment(dbc, r, "tok_payee"); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if v, _ := entity.Serialize(r.Columns()).Value("payment_account_id"); !strings.HasPrefix(v, "acct_") {
		t.Fatalf("payee account id = %q", v)
	}
}
