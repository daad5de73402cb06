package services

import (
	"github.com/alazar/finance-backend/internal/core/ports"
	"github.com/alazar/finance-backend/internal/dto"
	"github.com/alazar/finance-backend/internal/models"
)

// Container bundles the constructed services for route registration.
type Container struct {
	Document *DocumentService
	Auth     *AuthService
	Tokens   ports.TokenStore

	Clients           *CollectionService[models.Client, dto.ClientPatch]
	Employees         *CollectionService[models.Employee, dto.EmployeePatch]
	Incomes           *CollectionService[models.Income, dto.IncomePatch]
	FixedExpenses     *CollectionService[models.FixedExpense, dto.FixedExpensePatch]
	VariableExpenses  *CollectionService[models.VariableExpense, dto.VariableExpensePatch]
	ExpenseCategories *CollectionService[models.ExpenseCategory, dto.ExpenseCategoryPatch]
}

// NewContainer wires every service onto the shared repositories. Income
// creation runs the derivation so tax and profit are always consistent
// with the raw fields on freshly created records.
func NewContainer(docRepo ports.DocumentRepository, authRepo ports.AuthRepository, tokens ports.TokenStore) *Container {
	return &Container{
		Document: NewDocumentService(docRepo),
		Auth:     NewAuthService(authRepo, tokens),
		Tokens:   tokens,

		Clients: NewCollectionService[models.Client, dto.ClientPatch](
			docRepo, func(d *models.Document) *[]models.Client { return &d.Clients }, nil),
		Employees: NewCollectionService[models.Employee, dto.EmployeePatch](
			docRepo, func(d *models.Document) *[]models.Employee { return &d.Employees }, nil),
		Incomes: NewCollectionService[models.Income, dto.IncomePatch](
			docRepo, func(d *models.Document) *[]models.Income { return &d.Incomes },
			models.Income.Recalculated),
		FixedExpenses: NewCollectionService[models.FixedExpense, dto.FixedExpensePatch](
			docRepo, func(d *models.Document) *[]models.FixedExpense { return &d.FixedExpenses }, nil),
		VariableExpenses: NewCollectionService[models.VariableExpense, dto.VariableExpensePatch](
			docRepo, func(d *models.Document) *[]models.VariableExpense { return &d.VariableExpenses }, nil),
		ExpenseCategories: NewCollectionService[models.ExpenseCategory, dto.ExpenseCategoryPatch](
			docRepo, func(d *models.Document) *[]models.ExpenseCategory { return &d.ExpenseCategories }, nil),
	}
}
