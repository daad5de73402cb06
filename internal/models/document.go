package models

import "github.com/shopspring/decimal"

func init() {
	// The persisted document stores amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is the root aggregate persisted as a single JSON file. All
// entity collections are embedded values; nothing holds a reference into
// the document across requests.
type Document struct {
	Clients           []Client          `json:"clients"`
	Employees         []Employee        `json:"employees"`
	ExpenseCategories []ExpenseCategory `json:"expenseCategories"`
	FixedExpenses     []FixedExpense    `json:"fixedExpenses"`
	VariableExpenses  []VariableExpense `json:"variableExpenses"`
	Incomes           []Income          `json:"incomes"`
	Organization      Organization      `json:"organization"`
	AppSettings       AppSettings       `json:"appSettings"`
}

// Organization holds the singleton company record.
type Organization struct {
	Name    string `json:"name"`
	INN     string `json:"inn"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// AppSettings holds the singleton UI settings record. TaxPercent is kept
// as a string; the front-end stores it verbatim, blank meaning unset.
type AppSettings struct {
	Currency   string `json:"currency"`
	DateFormat string `json:"dateFormat"`
	Language   string `json:"language"`
	TaxPercent string `json:"taxPercent"`
	Theme      string `json:"theme"`
}

// DefaultDocument returns the structurally complete document written on
// first run: every collection empty, settings at their defaults.
func DefaultDocument() Document {
	return Document{
		Clients:           []Client{},
		Employees:         []Employee{},
		ExpenseCategories: []ExpenseCategory{},
		FixedExpenses:     []FixedExpense{},
		VariableExpenses:  []VariableExpense{},
		Incomes:           []Income{},
		Organization:      Organization{},
		AppSettings: AppSettings{
			Currency:   "₽",
			DateFormat: "DD.MM.YYYY",
			Language:   "ru",
			TaxPercent: "",
			Theme:      "light",
		},
	}
}

// Normalize replaces nil collections with empty ones so a document loaded
// from a hand-edited or partial file still serializes complete.
func (d *Document) Normalize() {
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Employees == nil {
		d.Employees = []Employee{}
	}
	if d.ExpenseCategories == nil {
		d.ExpenseCategories = []ExpenseCategory{}
	}
	if d.FixedExpenses == nil {
		d.FixedExpenses = []FixedExpense{}
	}
	if d.VariableExpenses == nil {
		d.VariableExpenses = []VariableExpense{}
	}
	if d.Incomes == nil {
		d.Incomes = []Income{}
	}
}
