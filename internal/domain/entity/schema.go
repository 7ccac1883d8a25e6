package entity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ColumnType is the declared SQL type reported next to every serialized value.
type ColumnType string

const (
	TypeInteger  ColumnType = "INTEGER"
	TypeVarchar  ColumnType = "VARCHAR(255)"
	TypeText     ColumnType = "TEXT"
	TypeNumeric  ColumnType = "NUMERIC(10, 2)"
	TypeDateTime ColumnType = "DATETIME"
)

// Column is a single column read off a row. Valid is false when the column
// holds NULL.
type Column struct {
	Name  string
	Type  ColumnType
	Value string
	Valid bool
}

// FieldDef describes one column of T: its wire name, declared type, and how
// to read and write it. Build them with the *Field constructors below.
type FieldDef[T any] struct {
	Name     string
	Type     ColumnType
	Required bool
	ReadOnly bool

	get func(*T) (string, bool)
	set func(*T, any) error
}

// Require marks the field as mandatory for construction.
func (f FieldDef[T]) Require() FieldDef[T] {
	f.Required = true
	return f
}

// Locked marks the field as not assignable from a payload.
func (f FieldDef[T]) Locked() FieldDef[T] {
	f.ReadOnly = true
	return f
}

func IDField[T any](ptr func(*T) *uint) FieldDef[T] {
	return UintField("id", ptr).Locked()
}

func UintField[T any](name string, ptr func(*T) *uint) FieldDef[T] {
	return FieldDef[T]{
		Name: name,
		Type: TypeInteger,
		get: func(m *T) (string, bool) {
			return strconv.FormatUint(uint64(*ptr(m)), 10), true
		},
		set: func(m *T, v any) error {
			if v == nil {
				return errNotNullable
			}
			n, err := asUint(v)
			if err != nil {
				return err
			}
			*ptr(m) = n
			return nil
		},
	}
}

func StringField[T any](name string, typ ColumnType, ptr func(*T) *string) FieldDef[T] {
	return FieldDef[T]{
		Name: name,
		Type: typ,
		get:  func(m *T) (string, bool) { return *ptr(m), true },
		set: func(m *T, v any) error {
			if v == nil {
				return errNotNullable
			}
			s, err := asString(v)
			if err != nil {
				return err
			}
			*ptr(m) = s
			return nil
		},
	}
}

func NullableStringField[T any](name string, typ ColumnType, ptr func(*T) **string) FieldDef[T] {
	return FieldDef[T]{
		Name: name,
		Type: typ,
		get: func(m *T) (string, bool) {
			if p := *ptr(m); p != nil {
				return *p, true
			}
			return "", false
		},
		set: func(m *T, v any) error {
			if v == nil {
				*ptr(m) = nil
				return nil
			}
			s, err := asString(v)
			if err != nil {
				return err
			}
			*ptr(m) = &s
			return nil
		},
	}
}

func DecimalField[T any](name string, ptr func(*T) *float64) FieldDef[T] {
	return FieldDef[T]{
		Name: name,
		Type: TypeNumeric,
		get:  func(m *T) (string, bool) { return formatDecimal(*ptr(m)), true },
		set: func(m *T, v any) error {
			if v == nil {
				return errNotNullable
			}
			f, err := asDecimal(v)
			if err != nil {
				return err
			}
			*ptr(m) = f
			return nil
		},
	}
}

func NullableDecimalField[T any](name string, ptr func(*T) **float64) FieldDef[T] {
	return FieldDef[T]{
		Name: name,
		Type: TypeNumeric,
		get: func(m *T) (string, bool) {
			if p := *ptr(m); p != nil {
				return formatDecimal(*p), true
			}
			return "", false
		},
		set: func(m *T, v any) error {
			if v == nil {
				*ptr(m) = nil
				return nil
			}
			f, err := asDecimal(v)
			if err != nil {
				return err
			}
			*ptr(m) = &f
			return nil
		},
	}
}

// TimeField is always read-only; timestamps are maintained by the store. A
// zero time reads as NULL.
func TimeField[T any](name string, ptr func(*T) *time.Time) FieldDef[T] {
	return FieldDef[T]{
		Name:     name,
		Type:     TypeDateTime,
		ReadOnly: true,
		get: func(m *T) (string, bool) {
			t := *ptr(m)
			if t.IsZero() {
				return "", false
			}
			return t.UTC().Format(time.RFC3339Nano), true
		},
		set: func(*T, any) error { return errReadOnly },
	}
}

// PasswordField stores a bcrypt hash of the assigned plaintext.
func PasswordField[T any](name string, ptr func(*T) *string) FieldDef[T] {
	return FieldDef[T]{
		Name: name,
		Type: TypeVarchar,
		get:  func(m *T) (string, bool) { return *ptr(m), true },
		set: func(m *T, v any) error {
			if v == nil {
				return errNotNullable
			}
			s, err := asString(v)
			if err != nil {
				return err
			}
			if s == "" {
				return errors.New("password must not be empty")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			*ptr(m) = string(hash)
			return nil
		},
	}
}

// PaymentRole says which side of a payment flow a payable row sits on.
type PaymentRole string

const (
	RolePayee PaymentRole = "payee"
	RolePayer PaymentRole = "payer"
)

// PaymentHooks lets a table open a processor account for a row and record
// the resulting account id on it.
type PaymentHooks[T any] struct {
	Role    PaymentRole
	Contact func(*T) string
	Attach  func(*T, string)
}

// Schema is the descriptor list for one kind.
type Schema[T any] struct {
	Kind     Kind
	Fields   []FieldDef[T]
	ID       func(*T) uint
	Payments *PaymentHooks[T]

	index map[string]int
}

func NewSchema[T any](kind Kind, id func(*T) uint, fields ...FieldDef[T]) *Schema[T] {
	s := &Schema[T]{Kind: kind, Fields: fields, ID: id, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("entity: duplicate field %s.%s", kind, f.Name))
		}
		s.index[f.Name] = i
	}
	return s
}

// WithPayments attaches payment hooks and returns s.
func (s *Schema[T]) WithPayments(hooks PaymentHooks[T]) *Schema[T] {
	s.Payments = &hooks
	return s
}

// RequiredFields lists the fields that must be present to construct a row.
func (s *Schema[T]) RequiredFields() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// Columns reads every declared column of m, in declaration order.
func (s *Schema[T]) Columns(m *T) []Column {
	out := make([]Column, 0, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := f.get(m)
		out = append(out, Column{Name: f.Name, Type: f.Type, Value: v, Valid: ok})
	}
	return out
}

// Assign writes fields onto m. Every name is checked before anything is
// written, so an unknown or read-only name leaves m untouched.
func (s *Schema[T]) Assign(m *T, fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		i, ok := s.index[name]
		if !ok {
			return InvalidField(s.Kind, name, errUnknownField)
		}
		if s.Fields[i].ReadOnly {
			return InvalidField(s.Kind, name, errReadOnly)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.Fields[s.index[name]].set(m, fields[name]); err != nil {
			return InvalidField(s.Kind, name, err)
		}
	}
	return nil
}

// Construct builds a new, unsaved T from fields.
func (s *Schema[T]) Construct(fields map[string]any) (*T, error) {
	m := new(T)
	if err := s.Assign(m, fields); err != nil {
		return nil, err
	}
	return m, nil
}

var (
	errUnknownField = errors.New("unknown field")
	errReadOnly     = errors.New("field is read-only")
	errNotNullable  = errors.New("field is not nullable")
)

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
