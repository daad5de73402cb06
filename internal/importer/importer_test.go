package importer_test

import (
	"testing"

	"github.com/alazar/finance-backend/internal/importer"
	"github.com/alazar/finance-backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveIncome(t *testing.T) {
	in := importer.LegacyIncome{
		ID:            "i1",
		Title:         "Site redesign",
		ClientID:      "c1",
		Amount:        dec("10000"),
		Tax:           dec("6"),
		NP:            dec("500"),
		InnerExpense:  dec("0"),
		ExecutorTotal: dec("2000"),
		Executors:     []importer.LegacyExecutor{{Mode: "percent", EmployeeID: "e1"}},
	}

	out := importer.DeriveIncome("2024-03", in)

	assert.Equal(t, "2024-03-01", out.Date)
	assert.Equal(t, models.PayoutPercent, out.EmployeePayoutType)
	assert.Equal(t, "e1", out.EmployeeID)
	assert.True(t, dec("600").Equal(out.TaxAmount), "taxAmount = %s", out.TaxAmount)
	assert.True(t, dec("2000").Equal(out.EmployeePayouts))
	assert.True(t, dec("6900").Equal(out.Profit), "profit = %s", out.Profit)
}

func TestDeriveIncomeFixedExecutor(t *testing.T) {
	in := importer.LegacyIncome{
		ID:     "i2",
		Amount: dec("5000"),
		Executors: []importer.LegacyExecutor{
			{Mode: "fixed", EmployeeID: "e2"},
			{Mode: "percent", EmployeeID: "e3"},
		},
	}

	out := importer.DeriveIncome("2023-11", in)

	// The first executor's mode decides the payout type, mixed modes or
	// not.
	assert.Equal(t, models.PayoutFixed, out.EmployeePayoutType)
	assert.Equal(t, "e2", out.EmployeeID)
	assert.True(t, dec("5000").Equal(out.Profit))
}

func TestDeriveIncomeNoExecutors(t *testing.T) {
	out := importer.DeriveIncome("2024-01", importer.LegacyIncome{ID: "i3", Amount: dec("100")})

	assert.Equal(t, models.PayoutPercent, out.EmployeePayoutType)
	assert.Empty(t, out.EmployeeID)
	assert.Equal(t, "2024-01-01", out.Date)
}

func TestTransform(t *testing.T) {
	legacy := importer.LegacyStorage{
		Employees: []importer.LegacyEmployee{
			{ID: "e1", Name: "Ivan Petrov", Position: "designer", Percent: dec("20")},
		},
		Clients: []importer.LegacyClient{
			{ID: "c1", Name: "Acme", Company: "Acme LLC"},
		},
		Expenses: &importer.LegacyExpenses{
			Constant: []importer.LegacyExpense{
				{ID: "x1", Title: "Office rent", Amount: dec("45000")},
			},
		},
		Incomes: map[string][]importer.LegacyIncome{
			"2024-02": {{ID: "i2", Amount: dec("2000")}},
			"2024-01": {{ID: "i1", Amount: dec("1000")}},
		},
	}

	doc := importer.Transform(legacy)

	require.Len(t, doc.Employees, 1)
	assert.Equal(t, "Ivan Petrov", doc.Employees[0].FullName)
	assert.Equal(t, "designer", doc.Employees[0].Position)

	require.Len(t, doc.Clients, 1)
	assert.Equal(t, "Acme LLC", doc.Clients[0].Company)

	require.Len(t, doc.FixedExpenses, 1)
	assert.Equal(t, "Office rent", doc.FixedExpenses[0].Name)

	// Month keys are processed chronologically.
	require.Len(t, doc.Incomes, 2)
	assert.Equal(t, "i1", doc.Incomes[0].ID)
	assert.Equal(t, "i2", doc.Incomes[1].ID)

	// Untouched defaults survive the transform.
	assert.Equal(t, "₽", doc.AppSettings.Currency)
	assert.Empty(t, doc.VariableExpenses)
	assert.Empty(t, doc.ExpenseCategories)
}

func TestTransformEmptyExport(t *testing.T) {
	doc := importer.Transform(importer.LegacyStorage{})

	assert.Empty(t, doc.Incomes)
	assert.Empty(t, doc.Employees)
	assert.NotNil(t, doc.Clients)
}
