package rental

// Models lists every table for migration, parents before children.
func Models() []any {
	return []any{
		&Owner{},
		&Property{},
		&Manager{},
		&Unit{},
		&Tenant{},
		&Contractor{},
		&Contract{},
		&Ticket{},
		&ContractPayment{},
		&TicketPayment{},
		&PaymentAccount{},
	}
}
