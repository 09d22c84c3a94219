package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JoseMiguelMilani/teste-site/internal/db"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/store"
)

func newGormStore(t *testing.T) store.Store {
	testDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect test database")
	require.NoError(t, db.Migrate(testDB), "failed to auto-migrate models")
	return store.NewGormStore(testDB)
}

// forEachStore runs the same checks against both implementations.
func forEachStore(t *testing.T, fn func(t *testing.T, s store.Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, store.NewMemoryStore()) })
	t.Run("gorm", func(t *testing.T) { fn(t, newGormStore(t)) })
}

var base = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func TestCatalog(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()
		require.NoError(t, store.SeedCatalog(ctx, s, base))

		ingredients, err := s.ListIngredients(ctx)
		require.NoError(t, err)
		assert.Len(t, ingredients, 5)

		specials, err := s.ListHouseSpecials(ctx)
		require.NoError(t, err)
		require.Len(t, specials, 2)

		hs, err := s.GetHouseSpecial(ctx, "house_2")
		require.NoError(t, err)
		assert.Equal(t, []string{"ing_1", "ing_2", "ing_4", "ing_5"}, hs.Ingredients)

		drinks, err := s.ListDrinks(ctx)
		require.NoError(t, err)
		assert.Len(t, drinks, 3)

		// Seeding again leaves existing data untouched.
		require.NoError(t, store.SeedCatalog(ctx, s, base.Add(time.Hour)))
		ingredients, err = s.ListIngredients(ctx)
		require.NoError(t, err)
		assert.Len(t, ingredients, 5)

		ing := models.Ingredient{ID: "ing_new", Name: "Ovo Frito", Available: true, CreatedAt: base.Add(time.Minute)}
		require.NoError(t, s.CreateIngredient(ctx, &ing))
		ingredients, err = s.ListIngredients(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ing_new", ingredients[0].ID, "newest first")

		ing.Available = false
		require.NoError(t, s.UpdateIngredient(ctx, &ing))
		got, err := s.GetIngredient(ctx, "ing_new")
		require.NoError(t, err)
		assert.False(t, got.Available)

		drink, err := s.GetDrink(ctx, "drink_1")
		require.NoError(t, err)
		assert.Equal(t, models.DrinkCocaLata, drink.Type)
		assert.Equal(t, 4.0, drink.Price)

		_, err = s.GetIngredient(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.GetHouseSpecial(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.GetDrink(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestOrders(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()

		order := models.Order{
			ID: "order_1",
			Item: models.OrderItem{
				Size: models.SizeMedia,
				Options: models.MarmitaOptions{
					OrderingType:   models.OrderingModaDaCasa,
					HouseSpecialID: "house_1",
					Quantidade:     2,
					WantsDrinks:    true,
					Drinks:         []models.DrinkOption{{Type: "drink_1", Quantity: 1}},
				},
				UnitPrice:   15,
				DrinksTotal: 4,
				TotalPrice:  34,
			},
			Address:       models.Address{Street: "Rua A", Number: "10", Neighborhood: "Centro", City: "Campinas", ZipCode: "13000-000"},
			CustomerName:  "Ana",
			CustomerPhone: "+5519999999999",
			Total:         34,
			Status:        models.StatusPendente,
			PaymentMethod: "PIX",
			CreatedAt:     base,
			UpdatedAt:     base,
		}
		record := models.FinancialRecord{ID: "finance_1", OrderID: "order_1", Amount: 34, Type: models.RecordEntrada, Description: "Marmita media - Ana", Date: base}
		require.NoError(t, s.CreateOrder(ctx, &order, &record))

		got, err := s.GetOrder(ctx, "order_1")
		require.NoError(t, err)
		assert.Equal(t, order.Item, got.Item)
		assert.Equal(t, order.Address, got.Address)
		assert.Equal(t, order.Total, got.Total)

		got.Status = models.StatusEntregue
		got.Delivered = true
		got.UpdatedAt = base.Add(time.Hour)
		require.NoError(t, s.UpdateOrder(ctx, &got))

		orders, err := s.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, models.StatusEntregue, orders[0].Status)
		assert.True(t, orders[0].Delivered)
		assert.True(t, base.Add(time.Hour).Equal(orders[0].UpdatedAt))

		records, err := s.ListFinancialRecords(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 34.0, records[0].Amount)

		_, err = s.GetOrder(ctx, "order_missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestLedger(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()

		older := models.Expense{ID: "expense_1", Description: "Luz", Amount: 50, Installments: 1, MonthlyAmount: 50, StartDate: base, CreatedAt: base}
		require.NoError(t, s.CreateExpense(ctx, &older, []models.FinancialRecord{
			{ID: "finance_a", OrderID: "expense_1", Amount: 50, Type: models.RecordSaida, Description: "Luz", Date: base},
		}))

		newer := models.Expense{ID: "expense_2", Description: "Aluguel", Amount: 300, Installments: 2, MonthlyAmount: 150, StartDate: base.Add(time.Hour), CreatedAt: base.Add(time.Hour)}
		require.NoError(t, s.CreateExpense(ctx, &newer, []models.FinancialRecord{
			{ID: "finance_b", OrderID: "expense_2", Amount: 150, Type: models.RecordSaida, Description: "Aluguel (1/2)", Date: base.Add(time.Hour)},
			{ID: "finance_c", OrderID: "expense_2", Amount: 150, Type: models.RecordSaida, Description: "Aluguel (2/2)", Date: base.Add(time.Hour).AddDate(0, 1, 0)},
		}))

		expenses, err := s.ListExpenses(ctx)
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "expense_2", expenses[0].ID)

		records, err := s.ListFinancialRecords(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	hs := models.HouseSpecial{ID: "house_x", Name: "X", Description: "x", Ingredients: []string{"ing_1"}, Available: true, CreatedAt: base}
	require.NoError(t, s.CreateHouseSpecial(ctx, &hs))
	hs.Ingredients[0] = "changed"

	got, err := s.GetHouseSpecial(ctx, "house_x")
	require.NoError(t, err)
	assert.Equal(t, []string{"ing_1"}, got.Ingredients)
}
