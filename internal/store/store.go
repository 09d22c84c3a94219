// Package store holds the catalog, the order log and the financial ledger.
// GormStore backs them with a SQL database; MemoryStore keeps them in
// process for tests and demos.
package store

import (
	"context"
	"errors"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

var ErrNotFound = errors.New("record not found")

type CatalogStore interface {
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id string) (models.Ingredient, error)
	CreateIngredient(ctx context.Context, ing *models.Ingredient) error
	UpdateIngredient(ctx context.Context, ing *models.Ingredient) error

	ListHouseSpecials(ctx context.Context) ([]models.HouseSpecial, error)
	GetHouseSpecial(ctx context.Context, id string) (models.HouseSpecial, error)
	CreateHouseSpecial(ctx context.Context, hs *models.HouseSpecial) error
	UpdateHouseSpecial(ctx context.Context, hs *models.HouseSpecial) error

	ListDrinks(ctx context.Context) ([]models.AvailableDrink, error)
	GetDrink(ctx context.Context, id string) (models.AvailableDrink, error)
	CreateDrink(ctx context.Context, drink *models.AvailableDrink) error
	UpdateDrink(ctx context.Context, drink *models.AvailableDrink) error
}

type OrderStore interface {
	// CreateOrder appends the order and its entrada record together.
	CreateOrder(ctx context.Context, order *models.Order, record *models.FinancialRecord) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
}

type LedgerStore interface {
	// CreateExpense appends the expense and its saida installments together.
	CreateExpense(ctx context.Context, expense *models.Expense, records []models.FinancialRecord) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	ListFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error)
}

type Store interface {
	CatalogStore
	OrderStore
	LedgerStore
}
