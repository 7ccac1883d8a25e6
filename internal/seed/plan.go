package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan sizes a fixture data set. Counts other than Owners are per parent: two
// owners with two properties each yields four properties.
type Plan struct {
	Owners                 int  `yaml:"owners"`
	PropertiesPerOwner     int  `yaml:"properties_per_owner"`
	ManagersPerProperty    int  `yaml:"managers_per_property"`
	UnitsPerProperty       int  `yaml:"units_per_property"`
	TenantsPerProperty     int  `yaml:"tenants_per_property"`
	ContractorsPerProperty int  `yaml:"contractors_per_property"`
	ContractsPerProperty   int  `yaml:"contracts_per_property"`
	TicketsPerProperty     int  `yaml:"tickets_per_property"`
	PaymentsPerContract    int  `yaml:"payments_per_contract"`
	PaymentsPerTicket      int  `yaml:"payments_per_ticket"`
	Payments               bool `yaml:"payments"`

	Defaults Defaults `yaml:"defaults"`
}

// Defaults are the literal values written into every generated row.
type Defaults struct {
	Email    string  `yaml:"email"`
	Password string  `yaml:"password"`
	Address  string  `yaml:"address"`
	Amount   float64 `yaml:"amount"`
}

// DefaultPlan creates one of everything, with payments.
func DefaultPlan() Plan {
	return Plan{
		Owners:                 1,
		PropertiesPerOwner:     1,
		ManagersPerProperty:    1,
		UnitsPerProperty:       1,
		TenantsPerProperty:     1,
		ContractorsPerProperty: 1,
		ContractsPerProperty:   1,
		TicketsPerProperty:     1,
		PaymentsPerContract:    1,
		PaymentsPerTicket:      1,
		Payments:               true,
		Defaults: Defaults{
			Email:    "seed@propdesk.test",
			Password: "seed-password",
			Address:  "1 Seed Street",
			Amount:   100,
		},
	}
}

// LoadPlan decodes a YAML plan on top of DefaultPlan. Unknown keys are
// rejected.
func LoadPlan(r io.Reader) (Plan, error) {
	plan := DefaultPlan()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("decode seed plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func LoadPlanFile(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, err
	}
	defer f.Close()
	return LoadPlan(f)
}

func (p Plan) Validate() error {
	counts := map[string]int{
		"owners":                   p.Owners,
		"properties_per_owner":     p.PropertiesPerOwner,
		"managers_per_property":    p.ManagersPerProperty,
		"units_per_property":       p.UnitsPerProperty,
		"tenants_per_property":     p.TenantsPerProperty,
		"contractors_per_property": p.ContractorsPerProperty,
		"contracts_per_property":   p.ContractsPerProperty,
		"tickets_per_property":     p.TicketsPerProperty,
		"payments_per_contract":    p.PaymentsPerContract,
		"payments_per_ticket":      p.PaymentsPerTicket,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s must not be negative (got %d)", name, n)
		}
	}
	if p.ContractsPerProperty > p.UnitsPerProperty {
		return fmt.Errorf("cannot make %d contracts for %d units", p.ContractsPerProperty, p.UnitsPerProperty)
	}
	if p.ContractsPerProperty > p.TenantsPerProperty {
		return fmt.Errorf("cannot make %d contracts for %d tenants", p.ContractsPerProperty, p.TenantsPerProperty)
	}
	if p.TicketsPerProperty > 0 && (p.TenantsPerProperty == 0 || p.ContractorsPerProperty == 0) {
		return fmt.Errorf("tickets need at least one tenant and one contractor per property")
	}
	if p.Defaults.Email == "" || p.Defaults.Password == "" || p.Defaults.Address == "" {
		return fmt.Errorf("defaults.email, defaults.password and defaults.address are required")
	}
	return nil
}
