package service

import (
	"context"
	"strings"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

func (s *Service) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.store.ListIngredients(ctx)
}

func (s *Service) CreateIngredient(ctx context.Context, name string) (models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Ingredient{}, invalid("Nome do ingrediente é obrigatório.", ErrMissingFields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.ListIngredients(ctx)
	if err != nil {
		return models.Ingredient{}, err
	}
	for _, ing := range existing {
		if strings.EqualFold(ing.Name, name) {
			return models.Ingredient{}, invalid("Ingrediente já existe.", ErrDuplicateIngredient)
		}
	}

	ing := models.Ingredient{
		ID:        utils.NewID("ing"),
		Name:      name,
		Available: true,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateIngredient(ctx, &ing); err != nil {
		return models.Ingredient{}, err
	}
	return ing, nil
}

// SetIngredientAvailability stores available, or flips the current flag
// when available is nil.
func (s *Service) SetIngredientAvailability(ctx context.Context, id string, available *bool) (models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ing, err := s.store.GetIngredient(ctx, id)
	if err != nil {
		return models.Ingredient{}, lookupErr(err, "ingredient", id)
	}
	ing.Available = nextAvailability(ing.Available, available)
	if err := s.store.UpdateIngredient(ctx, &ing); err != nil {
		return models.Ingredient{}, err
	}
	return ing, nil
}

func (s *Service) ListHouseSpecials(ctx context.Context) ([]models.HouseSpecial, error) {
	return s.store.ListHouseSpecials(ctx)
}

type HouseSpecialInput struct {
	Name        string
	Description string
	Ingredients []string
}

func (s *Service) CreateHouseSpecial(ctx context.Context, in HouseSpecialInput) (models.HouseSpecial, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || len(in.Ingredients) == 0 {
		return models.HouseSpecial{}, invalid("Todos os campos são obrigatórios.", ErrMissingFields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	known, err := s.store.ListIngredients(ctx)
	if err != nil {
		return models.HouseSpecial{}, err
	}
	ids := make(map[string]bool, len(known))
	for _, ing := range known {
		ids[ing.ID] = true
	}
	var missing []string
	for _, id := range in.Ingredients {
		if !ids[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return models.HouseSpecial{}, &ReferenceError{MissingIDs: missing}
	}

	hs := models.HouseSpecial{
		ID:          utils.NewID("house"),
		Name:        name,
		Description: description,
		Ingredients: append([]string(nil), in.Ingredients...),
		Available:   true,
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateHouseSpecial(ctx, &hs); err != nil {
		return models.HouseSpecial{}, err
	}
	return hs, nil
}

func (s *Service) SetHouseSpecialAvailability(ctx context.Context, id string, available *bool) (models.HouseSpecial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, err := s.store.GetHouseSpecial(ctx, id)
	if err != nil {
		return models.HouseSpecial{}, lookupErr(err, "house special", id)
	}
	hs.Available = nextAvailability(hs.Available, available)
	if err := s.store.UpdateHouseSpecial(ctx, &hs); err != nil {
		return models.HouseSpecial{}, err
	}
	return hs, nil
}

func (s *Service) ListDrinks(ctx context.Context) ([]models.AvailableDrink, error) {
	return s.store.ListDrinks(ctx)
}

type DrinkInput struct {
	Type  models.DrinkType
	Name  string
	Price float64
}

func (s *Service) CreateDrink(ctx context.Context, in DrinkInput) (models.AvailableDrink, error) {
	name := strings.TrimSpace(in.Name)
	if !in.Type.Valid() || name == "" || in.Price <= 0 {
		return models.AvailableDrink{}, invalid("Todos os campos são obrigatórios e preço deve ser positivo.", ErrInvalidDrink)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drink := models.AvailableDrink{
		ID:        utils.NewID("drink"),
		Type:      in.Type,
		Name:      name,
		Price:     in.Price,
		Available: true,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateDrink(ctx, &drink); err != nil {
		return models.AvailableDrink{}, err
	}
	return drink, nil
}

func (s *Service) SetDrinkAvailability(ctx context.Context, id string, available *bool) (models.AvailableDrink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, err := s.store.GetDrink(ctx, id)
	if err != nil {
		return models.AvailableDrink{}, lookupErr(err, "drink", id)
	}
	drink.Available = nextAvailability(drink.Available, available)
	if err := s.store.UpdateDrink(ctx, &drink); err != nil {
		return models.AvailableDrink{}, err
	}
	return drink, nil
}

func nextAvailability(current bool, requested *bool) bool {
	if requested == nil {
		return !current
	}
	return *requested
}
