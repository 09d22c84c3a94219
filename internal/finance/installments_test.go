package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseMiguelMilani/teste-site/internal/finance"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

func TestSplitExpense(t *testing.T) {
	start := time.Date(2026, time.October, 16, 10, 30, 0, 0, time.UTC)

	t.Run("Splits into monthly installments", func(t *testing.T) {
		expense, records, err := finance.SplitExpense("Aluguel", 300, 3, start)
		require.NoError(t, err)

		assert.Equal(t, "Aluguel", expense.Description)
		assert.Equal(t, 300.0, expense.Amount)
		assert.Equal(t, 3, expense.Installments)
		assert.Equal(t, 100.0, expense.MonthlyAmount)
		assert.Equal(t, start, expense.StartDate)

		require.Len(t, records, 3)
		wantDesc := []string{"Aluguel (1/3)", "Aluguel (2/3)", "Aluguel (3/3)"}
		for i, rec := range records {
			assert.Equal(t, models.RecordSaida, rec.Type)
			assert.Equal(t, 100.0, rec.Amount)
			assert.Equal(t, expense.ID, rec.OrderID)
			assert.Equal(t, wantDesc[i], rec.Description)
			assert.Equal(t, start.AddDate(0, i, 0), rec.Date)
		}
		assert.Equal(t, time.December, records[2].Date.Month())
	})

	t.Run("Single installment keeps the bare description", func(t *testing.T) {
		_, records, err := finance.SplitExpense("Luz", 50, 1, start)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Luz", records[0].Description)
		assert.Equal(t, 50.0, records[0].Amount)
	})

	t.Run("No rounding correction on the last installment", func(t *testing.T) {
		expense, records, err := finance.SplitExpense("Gás", 100, 3, start)
		require.NoError(t, err)
		for _, rec := range records {
			assert.Equal(t, expense.MonthlyAmount, rec.Amount)
		}
		assert.InDelta(t, 33.3333, expense.MonthlyAmount, 0.0001)
	})

	t.Run("Month overflow follows time normalization", func(t *testing.T) {
		endOfJan := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
		_, records, err := finance.SplitExpense("Internet", 200, 2, endOfJan)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC), records[1].Date)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		cases := []struct {
			desc         string
			amount       float64
			installments int
		}{
			{"Aluguel", 0, 1},
			{"Aluguel", -10, 1},
			{"Aluguel", 100, 0},
			{"  ", 100, 1},
		}
		for _, tc := range cases {
			_, records, err := finance.SplitExpense(tc.desc, tc.amount, tc.installments, start)
			assert.ErrorIs(t, err, finance.ErrInvalidExpense)
			assert.Nil(t, records)
		}
	})
}
