package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/pricing"
)

func catalog() []models.AvailableDrink {
	return []models.AvailableDrink{
		{ID: "drink_1", Type: models.DrinkCocaLata, Name: "Coca-Cola Lata 350ml", Price: 4.00, Available: true},
		{ID: "drink_2", Type: models.DrinkGuaranaLata, Name: "Guaraná Antarctica Lata 350ml", Price: 4.50, Available: true},
	}
}

func TestComputeOrderTotal(t *testing.T) {
	t.Run("Unit price follows the size table for every quantity", func(t *testing.T) {
		table := map[models.MarmitaSize]float64{
			models.SizePequena: 12.00,
			models.SizeMedia:   15.00,
			models.SizeGrande:  18.00,
		}
		for size, unit := range table {
			for q := 1; q <= 4; q++ {
				totals, err := pricing.ComputeOrderTotal(size, q, nil, catalog())
				require.NoError(t, err)
				assert.Equal(t, unit, totals.UnitPrice)
				assert.Equal(t, 0.0, totals.DrinksTotal)
				assert.Equal(t, unit*float64(q), totals.TotalPrice)
			}
		}
	})

	t.Run("Drinks resolved by type", func(t *testing.T) {
		drinks := []models.DrinkOption{{Type: "coca-lata", Quantity: 2}}
		totals, err := pricing.ComputeOrderTotal(models.SizeMedia, 1, drinks, catalog())
		require.NoError(t, err)
		assert.Equal(t, 8.00, totals.DrinksTotal)
		assert.Equal(t, 23.00, totals.TotalPrice)
	})

	t.Run("Drinks resolved by catalog id", func(t *testing.T) {
		drinks := []models.DrinkOption{{Type: "drink_2", Quantity: 2}, {Type: "drink_1", Quantity: 1}}
		totals, err := pricing.ComputeOrderTotal(models.SizeGrande, 2, drinks, catalog())
		require.NoError(t, err)
		assert.Equal(t, 13.00, totals.DrinksTotal)
		assert.Equal(t, 18.00*2+13.00, totals.TotalPrice)
	})

	t.Run("Unknown drink reference is free", func(t *testing.T) {
		drinks := []models.DrinkOption{{Type: "drink_stale", Quantity: 3}}
		totals, err := pricing.ComputeOrderTotal(models.SizePequena, 1, drinks, catalog())
		require.NoError(t, err)
		assert.Equal(t, 0.0, totals.DrinksTotal)
		assert.Equal(t, 12.00, totals.TotalPrice)
	})

	t.Run("Invalid size", func(t *testing.T) {
		_, err := pricing.ComputeOrderTotal("familia", 1, nil, catalog())
		assert.ErrorIs(t, err, pricing.ErrInvalidSize)
	})
}

func TestPricesReturnsCopy(t *testing.T) {
	prices := pricing.Prices()
	prices[models.SizeGrande] = 1

	unit, err := pricing.UnitPrice(models.SizeGrande)
	require.NoError(t, err)
	assert.Equal(t, 18.00, unit)
}
