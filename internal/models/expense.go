package models

import "github.com/shopspring/decimal"

// FixedExpense is a recurring cost (rent, salaries) with a billing period.
type FixedExpense struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Period string          `json:"period"`
}

func (e FixedExpense) EntityID() string { return e.ID }

func (e FixedExpense) WithID(id string) FixedExpense {
	e.ID = id
	return e
}

// VariableExpense is a one-off cost, optionally tied to a category.
type VariableExpense struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	CategoryID string          `json:"categoryId"`
	Comment    string          `json:"comment"`
}

func (e VariableExpense) EntityID() string { return e.ID }

func (e VariableExpense) WithID(id string) VariableExpense {
	e.ID = id
	return e
}

// ExpenseCategory groups variable expenses.
type ExpenseCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c ExpenseCategory) EntityID() string { return c.ID }

func (c ExpenseCategory) WithID(id string) ExpenseCategory {
	c.ID = id
	return c
}
