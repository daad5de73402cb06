// Package importer transforms a legacy storage.json export into the
// document the server persists. It is used once, at migration time; the
// derivation formulas here are the reference for income data fidelity.
package importer

import (
	"sort"
	"strings"

	"github.com/alazar/finance-backend/internal/models"
	"github.com/shopspring/decimal"
)

// LegacyStorage mirrors the legacy export layout. Incomes are grouped
// under "YYYY-MM" month keys.
type LegacyStorage struct {
	Employees []LegacyEmployee          `json:"employees"`
	Clients   []LegacyClient            `json:"clients"`
	Expenses  *LegacyExpenses           `json:"expenses"`
	Incomes   map[string][]LegacyIncome `json:"incomes"`
}

type LegacyEmployee struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Position string          `json:"position"`
	Percent  decimal.Decimal `json:"percent"`
}

type LegacyClient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Contact string `json:"contact"`
}

type LegacyExpenses struct {
	Constant []LegacyExpense `json:"constant"`
}

type LegacyExpense struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

type LegacyIncome struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	ClientID      string           `json:"client_id"`
	Amount        decimal.Decimal  `json:"amount"`
	Tax           decimal.Decimal  `json:"tax"`
	NP            decimal.Decimal  `json:"np"`
	InnerExpense  decimal.Decimal  `json:"inner_expense"`
	ExecutorTotal decimal.Decimal  `json:"executor_total"`
	Executors     []LegacyExecutor `json:"executors"`
}

type LegacyExecutor struct {
	Mode       string `json:"mode"`
	EmployeeID string `json:"employee_id"`
}

// Transform maps a legacy export onto a complete document. Month keys are
// processed in chronological order so the resulting income sequence is
// deterministic.
func Transform(legacy LegacyStorage) models.Document {
	doc := models.DefaultDocument()

	for _, emp := range legacy.Employees {
		doc.Employees = append(doc.Employees, models.Employee{
			ID:       emp.ID,
			FullName: emp.Name,
			Position: emp.Position,
			Percent:  emp.Percent,
		})
	}

	for _, cl := range legacy.Clients {
		doc.Clients = append(doc.Clients, models.Client{
			ID:      cl.ID,
			Name:    cl.Name,
			Company: cl.Company,
			Contact: cl.Contact,
		})
	}

	if legacy.Expenses != nil {
		for _, exp := range legacy.Expenses.Constant {
			doc.FixedExpenses = append(doc.FixedExpenses, models.FixedExpense{
				ID:     exp.ID,
				Name:   exp.Title,
				Amount: exp.Amount,
			})
		}
	}

	monthKeys := make([]string, 0, len(legacy.Incomes))
	for key := range legacy.Incomes {
		monthKeys = append(monthKeys, key)
	}
	sort.Strings(monthKeys)
	for _, key := range monthKeys {
		for _, in := range legacy.Incomes[key] {
			doc.Incomes = append(doc.Incomes, DeriveIncome(key, in))
		}
	}

	return doc
}

// DeriveIncome converts one raw income event into a stored record:
// the date is the first day of the origin month, the payout type follows
// the first executor's mode (percent when there are none), the payout
// total is passed through, and tax and profit are computed.
func DeriveIncome(monthKey string, in LegacyIncome) models.Income {
	employeeID := ""
	payoutType := models.PayoutPercent
	if len(in.Executors) > 0 {
		first := in.Executors[0]
		employeeID = first.EmployeeID
		if first.Mode == models.PayoutFixed {
			payoutType = models.PayoutFixed
		}
	}

	income := models.Income{
		ID:                 in.ID,
		Date:               firstOfMonth(monthKey),
		Title:              in.Title,
		ClientID:           in.ClientID,
		EmployeeID:         employeeID,
		Amount:             in.Amount,
		TaxPercent:         in.Tax,
		NPAmount:           in.NP,
		InternalCosts:      in.InnerExpense,
		EmployeePayouts:    in.ExecutorTotal,
		EmployeePayoutType: payoutType,
	}
	return income.Recalculated()
}

// firstOfMonth synthesizes a date from a "YYYY-MM" month key.
func firstOfMonth(monthKey string) string {
	parts := strings.SplitN(monthKey, "-", 2)
	if len(parts) != 2 {
		return monthKey + "-01"
	}
	return parts[0] + "-" + parts[1] + "-01"
}
