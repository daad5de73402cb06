package models

import "github.com/shopspring/decimal"

// Payout types for income executors.
const (
	PayoutFixed   = "fixed"
	PayoutPercent = "percent"
)

// Income represents one revenue event with its derived financial fields.
// TaxAmount and Profit are computed from the raw fields; see Recalculated.
type Income struct {
	ID                 string          `json:"id"`
	Date               string          `json:"date"`
	Title              string          `json:"title"`
	ClientID           string          `json:"clientId"`
	EmployeeID         string          `json:"employeeId"`
	Amount             decimal.Decimal `json:"amount"`
	TaxPercent         decimal.Decimal `json:"taxPercent"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	NPAmount           decimal.Decimal `json:"npAmount"`
	InternalCosts      decimal.Decimal `json:"internalCosts"`
	EmployeePayouts    decimal.Decimal `json:"employeePayouts"`
	EmployeePayoutType string          `json:"employeePayoutType"`
	Comment            string          `json:"comment"`
	Profit             decimal.Decimal `json:"profit"`
}

func (i Income) EntityID() string { return i.ID }

func (i Income) WithID(id string) Income {
	i.ID = id
	return i
}

// Recalculated returns the income with its derived fields recomputed:
//
//	taxAmount = amount * taxPercent / 100
//	profit    = amount - taxAmount - npAmount - internalCosts - employeePayouts
//
// Zero-valued inputs deduct nothing, so a partially filled income is valid.
func (i Income) Recalculated() Income {
	i.TaxAmount = i.Amount.Mul(i.TaxPercent).Div(decimal.NewFromInt(100))
	i.Profit = i.Amount.
		Sub(i.TaxAmount).
		Sub(i.NPAmount).
		Sub(i.InternalCosts).
		Sub(i.EmployeePayouts)
	return i
}
