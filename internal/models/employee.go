package models

import "github.com/shopspring/decimal"

// Employee represents a person who performs work and may be owed a share
// of income events.
type Employee struct {
	ID       string          `json:"id"`
	FullName string          `json:"fullName"`
	Position string          `json:"position"`
	Percent  decimal.Decimal `json:"percent"`
}

func (e Employee) EntityID() string { return e.ID }

func (e Employee) WithID(id string) Employee {
	e.ID = id
	return e
}
