package store

import (
	"context"
	"fmt"
	"time"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

func DefaultIngredients(now time.Time) []models.Ingredient {
	names := []string{"Arroz Branco", "Feijão Carioca", "Carne Bovina", "Frango Grelhado", "Salada Verde"}
	out := make([]models.Ingredient, 0, len(names))
	for i, name := range names {
		out = append(out, models.Ingredient{
			ID:        fmt.Sprintf("ing_%d", i+1),
			Name:      name,
			Available: true,
			CreatedAt: now,
		})
	}
	return out
}

func DefaultHouseSpecials(now time.Time) []models.HouseSpecial {
	return []models.HouseSpecial{
		{
			ID:          "house_1",
			Name:        "Marmita Tradicional",
			Description: "A clássica combinação que todo mundo ama",
			Ingredients: []string{"ing_1", "ing_2", "ing_3", "ing_5"},
			Available:   true,
			CreatedAt:   now,
		},
		{
			ID:          "house_2",
			Name:        "Marmita Light",
			Description: "Opção mais leve com frango e salada",
			Ingredients: []string{"ing_1", "ing_2", "ing_4", "ing_5"},
			Available:   true,
			CreatedAt:   now,
		},
	}
}

func DefaultDrinks(now time.Time) []models.AvailableDrink {
	return []models.AvailableDrink{
		{ID: "drink_1", Type: models.DrinkCocaLata, Name: "Coca-Cola Lata 350ml", Price: 4.0, Available: true, CreatedAt: now},
		{ID: "drink_2", Type: models.DrinkGuaranaLata, Name: "Guaraná Antarctica Lata 350ml", Price: 4.0, Available: true, CreatedAt: now},
		{ID: "drink_3", Type: models.DrinkSpriteLata, Name: "Sprite Lata 350ml", Price: 4.0, Available: true, CreatedAt: now},
	}
}

// SeedCatalog fills each empty catalog collection with the default menu.
// Collections that already hold data are left alone.
func SeedCatalog(ctx context.Context, s CatalogStore, now time.Time) error {
	ingredients, err := s.ListIngredients(ctx)
	if err != nil {
		return fmt.Errorf("list ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		for _, ing := range DefaultIngredients(now) {
			if err := s.CreateIngredient(ctx, &ing); err != nil {
				return fmt.Errorf("seed ingredient %s: %w", ing.ID, err)
			}
		}
	}

	specials, err := s.ListHouseSpecials(ctx)
	if err != nil {
		return fmt.Errorf("list house specials: %w", err)
	}
	if len(specials) == 0 {
		for _, hs := range DefaultHouseSpecials(now) {
			if err := s.CreateHouseSpecial(ctx, &hs); err != nil {
				return fmt.Errorf("seed house special %s: %w", hs.ID, err)
			}
		}
	}

	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return fmt.Errorf("list drinks: %w", err)
	}
	if len(drinks) == 0 {
		for _, drink := range DefaultDrinks(now) {
			if err := s.CreateDrink(ctx, &drink); err != nil {
				return fmt.Errorf("seed drink %s: %w", drink.ID, err)
			}
		}
	}

	return nil
}
