package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetIngredient(ctx context.Context, id string) (models.Ingredient, error) {
	var ing models.Ingredient
	err := s.db.WithContext(ctx).First(&ing, "id = ?", id).Error
	return ing, notFound(err, "ingredient", id)
}

func (s *GormStore) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	return s.db.WithContext(ctx).Create(ing).Error
}

func (s *GormStore) UpdateIngredient(ctx context.Context, ing *models.Ingredient) error {
	return s.db.WithContext(ctx).Save(ing).Error
}

func (s *GormStore) ListHouseSpecials(ctx context.Context) ([]models.HouseSpecial, error) {
	var out []models.HouseSpecial
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetHouseSpecial(ctx context.Context, id string) (models.HouseSpecial, error) {
	var hs models.HouseSpecial
	err := s.db.WithContext(ctx).First(&hs, "id = ?", id).Error
	return hs, notFound(err, "house special", id)
}

func (s *GormStore) CreateHouseSpecial(ctx context.Context, hs *models.HouseSpecial) error {
	return s.db.WithContext(ctx).Create(hs).Error
}

func (s *GormStore) UpdateHouseSpecial(ctx context.Context, hs *models.HouseSpecial) error {
	return s.db.WithContext(ctx).Save(hs).Error
}

func (s *GormStore) ListDrinks(ctx context.Context) ([]models.AvailableDrink, error) {
	var out []models.AvailableDrink
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetDrink(ctx context.Context, id string) (models.AvailableDrink, error) {
	var drink models.AvailableDrink
	err := s.db.WithContext(ctx).First(&drink, "id = ?", id).Error
	return drink, notFound(err, "drink", id)
}

func (s *GormStore) CreateDrink(ctx context.Context, drink *models.AvailableDrink) error {
	return s.db.WithContext(ctx).Create(drink).Error
}

func (s *GormStore) UpdateDrink(ctx context.Context, drink *models.AvailableDrink) error {
	return s.db.WithContext(ctx).Save(drink).Error
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order, record *models.FinancialRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("create financial record: %w", err)
		}
		return nil
	})
}

func (s *GormStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error
	return order, notFound(err, "order", id)
}

func (s *GormStore) UpdateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Save(order).Error
}

func (s *GormStore) CreateExpense(ctx context.Context, expense *models.Expense, records []models.FinancialRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		if len(records) > 0 {
			if err := tx.CreateInBatches(&records, len(records)).Error; err != nil {
				return fmt.Errorf("create installments: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) ListFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error) {
	var out []models.FinancialRecord
	err := s.db.WithContext(ctx).Order("date asc").Find(&out).Error
	return out, err
}

func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return err
}
