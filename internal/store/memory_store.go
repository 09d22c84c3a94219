package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

// MemoryStore keeps everything in slices. Each collection has its own lock;
// order and ledger writes that must land together take both.
type MemoryStore struct {
	catalogMu     sync.Mutex
	ingredients   []models.Ingredient
	houseSpecials []models.HouseSpecial
	drinks        []models.AvailableDrink

	ordersMu sync.Mutex
	orders   []models.Order

	ledgerMu sync.Mutex
	records  []models.FinancialRecord
	expenses []models.Expense
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	out := append([]models.Ingredient(nil), s.ingredients...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetIngredient(ctx context.Context, id string) (models.Ingredient, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	for _, ing := range s.ingredients {
		if ing.ID == id {
			return ing, nil
		}
	}
	return models.Ingredient{}, fmt.Errorf("ingredient %s: %w", id, ErrNotFound)
}

func (s *MemoryStore) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	s.ingredients = append(s.ingredients, *ing)
	return nil
}

func (s *MemoryStore) UpdateIngredient(ctx context.Context, ing *models.Ingredient) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	for i := range s.ingredients {
		if s.ingredients[i].ID == ing.ID {
			s.ingredients[i] = *ing
			return nil
		}
	}
	return fmt.Errorf("ingredient %s: %w", ing.ID, ErrNotFound)
}

func (s *MemoryStore) ListHouseSpecials(ctx context.Context) ([]models.HouseSpecial, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	out := make([]models.HouseSpecial, 0, len(s.houseSpecials))
	for _, hs := range s.houseSpecials {
		out = append(out, cloneHouseSpecial(hs))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetHouseSpecial(ctx context.Context, id string) (models.HouseSpecial, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	for _, hs := range s.houseSpecials {
		if hs.ID == id {
			return cloneHouseSpecial(hs), nil
		}
	}
	return models.HouseSpecial{}, fmt.Errorf("house special %s: %w", id, ErrNotFound)
}

func (s *MemoryStore) CreateHouseSpecial(ctx context.Context, hs *models.HouseSpecial) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	s.houseSpecials = append(s.houseSpecials, cloneHouseSpecial(*hs))
	return nil
}

func (s *MemoryStore) UpdateHouseSpecial(ctx context.Context, hs *models.HouseSpecial) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	for i := range s.houseSpecials {
		if s.houseSpecials[i].ID == hs.ID {
			s.houseSpecials[i] = cloneHouseSpecial(*hs)
			return nil
		}
	}
	return fmt.Errorf("house special %s: %w", hs.ID, ErrNotFound)
}

func (s *MemoryStore) ListDrinks(ctx context.Context) ([]models.AvailableDrink, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	out := append([]models.AvailableDrink(nil), s.drinks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetDrink(ctx context.Context, id string) (models.AvailableDrink, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	for _, drink := range s.drinks {
		if drink.ID == id {
			return drink, nil
		}
	}
	return models.AvailableDrink{}, fmt.Errorf("drink %s: %w", id, ErrNotFound)
}

func (s *MemoryStore) CreateDrink(ctx context.Context, drink *models.AvailableDrink) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	s.drinks = append(s.drinks, *drink)
	return nil
}

func (s *MemoryStore) UpdateDrink(ctx context.Context, drink *models.AvailableDrink) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	for i := range s.drinks {
		if s.drinks[i].ID == drink.ID {
			s.drinks[i] = *drink
			return nil
		}
	}
	return fmt.Errorf("drink %s: %w", drink.ID, ErrNotFound)
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order *models.Order, record *models.FinancialRecord) error {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	s.orders = append(s.orders, cloneOrder(*order))
	s.records = append(s.records, *record)
	return nil
}

func (s *MemoryStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

func (s *MemoryStore) UpdateOrder(ctx context.Context, order *models.Order) error {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = cloneOrder(*order)
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", order.ID, ErrNotFound)
}

func (s *MemoryStore) CreateExpense(ctx context.Context, expense *models.Expense, records []models.FinancialRecord) error {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	s.expenses = append(s.expenses, *expense)
	s.records = append(s.records, records...)
	return nil
}

func (s *MemoryStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	out := append([]models.Expense(nil), s.expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ListFinancialRecords returns the ledger in append order.
func (s *MemoryStore) ListFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	return append([]models.FinancialRecord(nil), s.records...), nil
}

func cloneHouseSpecial(hs models.HouseSpecial) models.HouseSpecial {
	hs.Ingredients = append([]string(nil), hs.Ingredients...)
	return hs
}

func cloneOrder(o models.Order) models.Order {
	o.Item.Options.SelectedIngredients = append([]string(nil), o.Item.Options.SelectedIngredients...)
	o.Item.Options.Drinks = append([]models.DrinkOption(nil), o.Item.Options.Drinks...)
	return o
}
