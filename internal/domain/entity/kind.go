package entity

import "fmt"

// Kind identifies one of the managed tables. The set is closed.
type Kind int

const (
	Owner Kind = iota
	Property
	Manager
	Tenant
	Ticket
	Unit
	Contract
	Contractor
	ContractPayment
	TicketPayment
)

var kindNames = map[Kind]string{
	Owner:           "Owner",
	Property:        "Property",
	Manager:         "Manager",
	Tenant:          "Tenant",
	Ticket:          "Ticket",
	Unit:            "Unit",
	Contract:        "Contract",
	Contractor:      "Contractor",
	ContractPayment: "Contractpayment",
	TicketPayment:   "Ticketpayment",
}

var kindsByName = func() map[string]Kind {
	out := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		out[name] = k
	}
	return out
}()

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		Owner, Property, Manager, Tenant, Ticket,
		Unit, Contract, Contractor, ContractPayment, TicketPayment,
	}
}

// NameOf returns the canonical external name of k.
func NameOf(k Kind) (string, error) {
	name, ok := kindNames[k]
	if !ok {
		return "", NewError(CodeUnrecognizedKind, "entity.name", fmt.Sprintf("entity kind %d not recognized", int(k)), nil)
	}
	return name, nil
}

// ParseKind resolves an external entity name. Matching is case-insensitive
// for the canonical spellings only: the input is normalized to
// capitalize-first, lower-rest and must then match exactly.
func ParseKind(name string) (Kind, error) {
	normalized := Canonicalize(name)
	k, ok := kindsByName[normalized]
	if !ok {
		return 0, NewError(CodeUnrecognizedName, "entity.parse", fmt.Sprintf("entity %q not recognized", normalized), nil)
	}
	return k, nil
}

// Canonicalize upper-cases the first byte of s and lower-cases the rest.
// Only ASCII letters are folded; every other byte is kept as is, so no
// non-ASCII spelling can fold onto a canonical name.
func Canonicalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		switch {
		case i == 0 && 'a' <= c && c <= 'z':
			b[i] = c - ('a' - 'A')
		case i > 0 && 'A' <= c && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// AcceptsPayments reports whether updates for k may carry a payment token.
func (k Kind) AcceptsPayments() bool {
	switch k {
	case Property, Tenant, Contractor:
		return true
	default:
		return false
	}
}
