package finance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

var ErrInvalidExpense = errors.New("invalid expense")

// SplitExpense builds an Expense and its saida installments, one per month
// starting at start. The monthly amount is a plain division; the last
// installment does not absorb rounding differences.
func SplitExpense(description string, amount float64, installments int, start time.Time) (models.Expense, []models.FinancialRecord, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Expense{}, nil, fmt.Errorf("%w: description is required", ErrInvalidExpense)
	}
	if amount <= 0 {
		return models.Expense{}, nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidExpense)
	}
	if installments < 1 {
		return models.Expense{}, nil, fmt.Errorf("%w: installments must be at least 1", ErrInvalidExpense)
	}

	monthly := amount / float64(installments)
	expense := models.Expense{
		ID:            utils.NewID("expense"),
		Description:   description,
		Amount:        amount,
		Installments:  installments,
		MonthlyAmount: monthly,
		StartDate:     start,
		CreatedAt:     start,
	}

	records := make([]models.FinancialRecord, 0, installments)
	for i := 0; i < installments; i++ {
		desc := description
		if installments > 1 {
			desc = fmt.Sprintf("%s (%d/%d)", description, i+1, installments)
		}
		records = append(records, models.FinancialRecord{
			ID:          utils.NewID("finance"),
			OrderID:     expense.ID,
			Amount:      monthly,
			Type:        models.RecordSaida,
			Description: desc,
			Date:        start.AddDate(0, i, 0),
		})
	}

	return expense, records, nil
}
