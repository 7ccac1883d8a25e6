package entity

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type widget struct {
	ID        uint
	Name      string
	Note      *string
	Price     float64
	Discount  *float64
	ParentID  uint
	Secret    string
	CreatedOn time.Time
}

var widgetSchema = NewSchema(Unit,
	func(w *widget) uint { return w.ID },
	IDField(func(w *widget) *uint { return &w.ID }),
	StringField("name", TypeVarchar, func(w *widget) *string { return &w.Name }).Require(),
	NullableStringField("note", TypeText, func(w *widget) **string { return &w.Note }),
	DecimalField("price", func(w *widget) *float64 { return &w.Price }).Require(),
	NullableDecimalField("discount", func(w *widget) **float64 { return &w.Discount }),
	UintField("parent_id", func(w *widget) *uint { return &w.ParentID }),
	PasswordField("secret", func(w *widget) *string { return &w.Secret }),
	TimeField("created_on", func(w *widget) *time.Time { return &w.CreatedOn }),
)

func TestRequiredFields(t *testing.T) {
	got := widgetSchema.RequiredFields()
	if len(got) != 2 || got[0] != "name" || got[1] != "price" {
		t.Fatalf("unexpected required fields: %v", got)
	}
}

func TestConstructConvertsPayloadValues(t *testing.T) {
	w, err := widgetSchema.Construct(map[string]any{
		"name":      "lobby",
		"price":     json.Number("12.5"),
		"parent_id": float64(3),
		"secret":    "pw",
	})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if w.Name != "lobby" || w.Price != 12.5 || w.ParentID != 3 {
		t.Fatalf("unexpected widget: %+v", w)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(w.Secret), []byte("pw")); err != nil {
		t.Fatalf("secret not stored as bcrypt hash: %v", err)
	}
}

func TestAssignRejectsUnknownAndReadOnly(t *testing.T) {
	w := &widget{Name: "before"}
	for _, name := range []string{"nope", "id", "created_on"} {
		err := widgetSchema.Assign(w, map[string]any{"name": "after", name: 1})
		if !IsCode(err, CodeInvalidField) {
			t.Fatalf("assign %q: expected %s, got %v", name, CodeInvalidField, err)
		}
		if w.Name != "before" {
			t.Fatalf("assign %q mutated the row", name)
		}
	}
}

func TestAssignConversionErrors(t *testing.T) {
	cases := []map[string]any{
		{"parent_id": -1},
		{"parent_id": 1.5},
		{"parent_id": "abc"},
		{"price": "cheap"},
		{"name": nil},
		{"name": []string{"x"}},
		{"secret": ""},
	}
	for _, fields := range cases {
		if err := widgetSchema.Assign(&widget{}, fields); !IsCode(err, CodeInvalidField) {
			t.Fatalf("Assign(%v): expected %s, got %v", fields, CodeInvalidField, err)
		}
	}
}

func TestDecimalFieldsFitNumericColumn(t *testing.T) {
	rejected := []any{
		"0.125",
		json.Number("0.125"),
		0.001,
		"123456789012345",
		json.Number("100000000"),
		-1e8,
		"NaN",
	}
	for _, v := range rejected {
		w := &widget{Price: 5}
		err := widgetSchema.Assign(w, map[string]any{"price": v})
		if !IsCode(err, CodeInvalidField) {
			t.Fatalf("price %#v: expected %s, got %v", v, CodeInvalidField, err)
		}
		if w.Price != 5 {
			t.Fatalf("price %#v: row mutated to %v", v, w.Price)
		}
		if err := widgetSchema.Assign(&widget{}, map[string]any{"discount": v}); !IsCode(err, CodeInvalidField) {
			t.Fatalf("discount %#v: expected %s, got %v", v, CodeInvalidField, err)
		}
	}

	accepted := []struct {
		in   any
		want string
	}{
		{"0.10", "0.10"},
		{json.Number("99.9"), "99.90"},
		{"99999999.99", "99999999.99"},
		{-12.5, "-12.50"},
		{3, "3.00"},
		{json.Number("1.50e1"), "15.00"},
	}
	for _, tc := range accepted {
		w := &widget{}
		if err := widgetSchema.Assign(w, map[string]any{"price": tc.in}); err != nil {
			t.Fatalf("price %#v: %v", tc.in, err)
		}
		rec := Serialize(widgetSchema.Columns(w))
		if got, _ := rec.Value("price"); got != tc.want {
			t.Fatalf("price %#v serialized as %q, want %q", tc.in, got, tc.want)
		}
		stored, _ := strconv.ParseFloat(tc.want, 64)
		if w.Price != stored {
			t.Fatalf("price %#v stored as %v, serialized as %q", tc.in, w.Price, tc.want)
		}
	}
}

func TestStringFieldsTakeTextOnly(t *testing.T) {
	for _, v := range []any{true, 7, 7.5, int64(3), time.Second} {
		if err := widgetSchema.Assign(&widget{}, map[string]any{"name": v}); !IsCode(err, CodeInvalidField) {
			t.Fatalf("name %#v: expected %s, got %v", v, CodeInvalidField, err)
		}
		if err := widgetSchema.Assign(&widget{}, map[string]any{"note": v}); !IsCode(err, CodeInvalidField) {
			t.Fatalf("note %#v: expected %s, got %v", v, CodeInvalidField, err)
		}
	}
	w := &widget{}
	if err := widgetSchema.Assign(w, map[string]any{"name": json.Number("101"), "note": "plain"}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if w.Name != "101" || w.Note == nil || *w.Note != "plain" {
		t.Fatalf("unexpected widget: %+v", w)
	}
}

func TestAssignNullableFields(t *testing.T) {
	w := &widget{}
	if err := widgetSchema.Assign(w, map[string]any{"note": "hi", "discount": 2}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if w.Note == nil || *w.Note != "hi" || w.Discount == nil || *w.Discount != 2 {
		t.Fatalf("unexpected widget: %+v", w)
	}
	if err := widgetSchema.Assign(w, map[string]any{"note": nil, "discount": nil}); err != nil {
		t.Fatalf("Assign nil: %v", err)
	}
	if w.Note != nil || w.Discount != nil {
		t.Fatalf("expected nullable fields cleared: %+v", w)
	}
}

func TestColumnsAndSerialize(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	w := &widget{ID: 7, Name: "roof", Price: 100, ParentID: 1, CreatedOn: created}
	rec := Serialize(widgetSchema.Columns(w))
	if len(rec) != len(widgetSchema.Fields) {
		t.Fatalf("expected %d columns, got %d", len(widgetSchema.Fields), len(rec))
	}
	for _, f := range widgetSchema.Fields {
		got, ok := rec[f.Name]
		if !ok {
			t.Fatalf("column %q missing", f.Name)
		}
		if got.Type != f.Type {
			t.Fatalf("column %q type %q, want %q", f.Name, got.Type, f.Type)
		}
	}
	if v, ok := rec.Value("id"); !ok || v != "7" {
		t.Fatalf("id = %q, %v", v, ok)
	}
	if v, _ := rec.Value("price"); v != "100.00" {
		t.Fatalf("price = %q", v)
	}
	if v, _ := rec.Value("created_on"); v != "2024-03-01T12:00:00Z" {
		t.Fatalf("created_on = %q", v)
	}
	if _, ok := rec.Value("note"); ok {
		t.Fatalf("note should be absent")
	}

	raw, err := json.Marshal(rec["note"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"type":"TEXT"}` {
		t.Fatalf("null column wire form = %s", raw)
	}
	raw, _ = json.Marshal(rec["name"])
	if string(raw) != `{"type":"VARCHAR(255)","data":"roof"}` {
		t.Fatalf("column wire form = %s", raw)
	}
}

func TestAsID(t *testing.T) {
	for _, v := range []any{1, int64(1), uint(1), float64(1), json.Number("1"), "1"} {
		id, err := AsID(v)
		if err != nil || id != 1 {
			t.Fatalf("AsID(%#v) = %d, %v", v, id, err)
		}
	}
	for _, v := range []any{nil, "x", -2, 1.25, true} {
		if _, err := AsID(v); err == nil {
			t.Fatalf("AsID(%#v): expected error", v)
		}
	}
}

func TestWrapKeepsExistingCode(t *testing.T) {
	orig := NewError(CodeNotFound, "op", "missing", nil)
	if got := Wrap(CodeInternal, "other", orig); !IsCode(got, CodeNotFound) {
		t.Fatalf("Wrap replaced code: %v", got)
	}
	plain := errors.New("boom")
	wrapped := Wrap(CodePaymentFailed, "pay", plain)
	if !IsCode(wrapped, CodePaymentFailed) || !errors.Is(wrapped, plain) {
		t.Fatalf("Wrap lost cause or code: %v", wrapped)
	}
	if CodeOf(plain) != "" {
		t.Fatalf("CodeOf(plain) should be empty")
	}
}
