package entity

import "time"

type ChangeOp string

const (
	OpCreate  ChangeOp = "create"
	OpUpdate  ChangeOp = "update"
	OpPayment ChangeOp = "payment"
)

// ChangeEvent announces a committed write.
type ChangeEvent struct {
	Kind string    `json:"kind"`
	Op   ChangeOp  `json:"op"`
	ID   uint      `json:"id"`
	At   time.Time `json:"at"`
}
