// Package dto defines the request/response shapes of the HTTP surface.
//
// Updates are expressed as field-level patches: pointer fields distinguish
// "omitted, keep the stored value" from "supplied, overwrite". Apply merges
// top-level keys only — nested merge depth is deliberately not a thing the
// API offers.
package dto

import (
	"github.com/alazar/finance-backend/internal/models"
	"github.com/shopspring/decimal"
)

// ClientPatch is a partial update for a client.
type ClientPatch struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (p ClientPatch) Apply(c models.Client) models.Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Contact != nil {
		c.Contact = *p.Contact
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	return c
}

// EmployeePatch is a partial update for an employee.
type EmployeePatch struct {
	FullName *string          `json:"fullName"`
	Position *string          `json:"position"`
	Percent  *decimal.Decimal `json:"percent"`
}

func (p EmployeePatch) Apply(e models.Employee) models.Employee {
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.Percent != nil {
		e.Percent = *p.Percent
	}
	return e
}

// IncomePatch is a partial update for an income. Derived fields are merged
// like any other: a partial update does not recompute tax or profit.
type IncomePatch struct {
	Date               *string          `json:"date"`
	Title              *string          `json:"title"`
	ClientID           *string          `json:"clientId"`
	EmployeeID         *string          `json:"employeeId"`
	Amount             *decimal.Decimal `json:"amount"`
	TaxPercent         *decimal.Decimal `json:"taxPercent"`
	TaxAmount          *decimal.Decimal `json:"taxAmount"`
	NPAmount           *decimal.Decimal `json:"npAmount"`
	InternalCosts      *decimal.Decimal `json:"internalCosts"`
	EmployeePayouts    *decimal.Decimal `json:"employeePayouts"`
	EmployeePayoutType *string          `json:"employeePayoutType"`
	Comment            *string          `json:"comment"`
	Profit             *decimal.Decimal `json:"profit"`
}

func (p IncomePatch) Apply(i models.Income) models.Income {
	if p.Date != nil {
		i.Date = *p.Date
	}
	if p.Title != nil {
		i.Title = *p.Title
	}
	if p.ClientID != nil {
		i.ClientID = *p.ClientID
	}
	if p.EmployeeID != nil {
		i.EmployeeID = *p.EmployeeID
	}
	if p.Amount != nil {
		i.Amount = *p.Amount
	}
	if p.TaxPercent != nil {
		i.TaxPercent = *p.TaxPercent
	}
	if p.TaxAmount != nil {
		i.TaxAmount = *p.TaxAmount
	}
	if p.NPAmount != nil {
		i.NPAmount = *p.NPAmount
	}
	if p.InternalCosts != nil {
		i.InternalCosts = *p.InternalCosts
	}
	if p.EmployeePayouts != nil {
		i.EmployeePayouts = *p.EmployeePayouts
	}
	if p.EmployeePayoutType != nil {
		i.EmployeePayoutType = *p.EmployeePayoutType
	}
	if p.Comment != nil {
		i.Comment = *p.Comment
	}
	if p.Profit != nil {
		i.Profit = *p.Profit
	}
	return i
}

// FixedExpensePatch is a partial update for a fixed expense.
type FixedExpensePatch struct {
	Name   *string          `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
	Period *string          `json:"period"`
}

func (p FixedExpensePatch) Apply(e models.FixedExpense) models.FixedExpense {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Period != nil {
		e.Period = *p.Period
	}
	return e
}

// VariableExpensePatch is a partial update for a variable expense.
type VariableExpensePatch struct {
	Name       *string          `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	Date       *string          `json:"date"`
	CategoryID *string          `json:"categoryId"`
	Comment    *string          `json:"comment"`
}

func (p VariableExpensePatch) Apply(e models.VariableExpense) models.VariableExpense {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.CategoryID != nil {
		e.CategoryID = *p.CategoryID
	}
	if p.Comment != nil {
		e.Comment = *p.Comment
	}
	return e
}

// ExpenseCategoryPatch is a partial update for an expense category.
type ExpenseCategoryPatch struct {
	Name *string `json:"name"`
}

func (p ExpenseCategoryPatch) Apply(c models.ExpenseCategory) models.ExpenseCategory {
	if p.Name != nil {
		c.Name = *p.Name
	}
	return c
}

// OrganizationPatch merges over the singleton organization record.
type OrganizationPatch struct {
	Name    *string `json:"name"`
	INN     *string `json:"inn"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Website *string `json:"website"`
}

func (p OrganizationPatch) Apply(o models.Organization) models.Organization {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.INN != nil {
		o.INN = *p.INN
	}
	if p.Address != nil {
		o.Address = *p.Address
	}
	if p.Phone != nil {
		o.Phone = *p.Phone
	}
	if p.Email != nil {
		o.Email = *p.Email
	}
	if p.Website != nil {
		o.Website = *p.Website
	}
	return o
}

// AppSettingsPatch merges over the singleton app settings record.
type AppSettingsPatch struct {
	Currency   *string `json:"currency"`
	DateFormat *string `json:"dateFormat"`
	Language   *string `json:"language"`
	TaxPercent *string `json:"taxPercent"`
	Theme      *string `json:"theme"`
}

func (p AppSettingsPatch) Apply(s models.AppSettings) models.AppSettings {
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.DateFormat != nil {
		s.DateFormat = *p.DateFormat
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.TaxPercent != nil {
		s.TaxPercent = *p.TaxPercent
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	return s
}
