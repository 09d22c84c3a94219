package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JoseMiguelMilani/teste-site/internal/finance"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

// AddExpense records a lump expense as one saida record per installment.
func (s *Service) AddExpense(ctx context.Context, description string, amount float64, installments int) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, records, err := finance.SplitExpense(description, amount, installments, s.now())
	if err != nil {
		if errors.Is(err, finance.ErrInvalidExpense) {
			return models.Expense{}, invalid("Descrição, valor e parcelas são obrigatórios e devem ser maiores que zero.", err)
		}
		return models.Expense{}, err
	}

	if err := s.store.CreateExpense(ctx, &expense, records); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

// ExpenseMessage is the confirmation shown after AddExpense.
func ExpenseMessage(e models.Expense) string {
	msg := fmt.Sprintf("Despesa de %s adicionada com sucesso!", utils.FormatBRL(e.Amount))
	if e.Installments > 1 {
		msg += fmt.Sprintf(" Dividida em %d parcelas de %s.", e.Installments, utils.FormatBRL(e.MonthlyAmount))
	}
	return msg
}

func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

func (s *Service) Finances(ctx context.Context, period finance.Period) (finance.Report, error) {
	records, err := s.store.ListFinancialRecords(ctx)
	if err != nil {
		return finance.Report{}, fmt.Errorf("load financial records: %w", err)
	}
	return finance.Summarize(period, records, s.now()), nil
}
