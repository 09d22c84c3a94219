package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseMiguelMilani/teste-site/internal/handlers"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

func TestPublicRoutes(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Health", func(t *testing.T) {
		recorder := performRequest(env.router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())

		recorder = performRequest(env.router, http.MethodGet, "/api/ping", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Menu prices list available drinks", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPatch, "/api/admin/drinks/drink_3/toggle", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = performRequest(env.router, http.MethodGet, "/api/menu/prices", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decode[struct {
			Sizes  map[models.MarmitaSize]float64 `json:"sizes"`
			Drinks []models.AvailableDrink        `json:"drinks"`
		}](t, recorder)
		assert.Equal(t, map[models.MarmitaSize]float64{"pequena": 12, "media": 15, "grande": 18}, resp.Sizes)
		assert.Len(t, resp.Drinks, 2)
		for _, d := range resp.Drinks {
			assert.NotEqual(t, "drink_3", d.ID)
		}
	})
}

func TestIngredientHandlers(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Public list", func(t *testing.T) {
		recorder := performRequest(env.router, http.MethodGet, "/api/admin/ingredients", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decode[struct {
			Ingredients []models.Ingredient `json:"ingredients"`
		}](t, recorder)
		assert.Len(t, resp.Ingredients, 5)
	})

	t.Run("Creates an ingredient", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPost, "/api/admin/ingredients",
			handlers.CreateIngredientRequest{Name: "Ovo Frito"})
		require.Equal(t, http.StatusCreated, recorder.Code)
		resp := decode[struct {
			envelope
			Ingredient models.Ingredient `json:"ingredient"`
		}](t, recorder)
		assert.Equal(t, "Ingrediente criado com sucesso!", resp.Message)
		assert.Equal(t, "Ovo Frito", resp.Ingredient.Name)
		assert.True(t, resp.Ingredient.Available)
	})

	t.Run("Rejects duplicates", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPost, "/api/admin/ingredients",
			handlers.CreateIngredientRequest{Name: "arroz branco"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Ingrediente já existe.", decode[envelope](t, recorder).Message)
	})

	t.Run("Toggle with empty body flips availability", func(t *testing.T) {
		type toggled struct {
			Ingredient models.Ingredient `json:"ingredient"`
		}
		first := performAuthenticatedRequest(env.router, http.MethodPatch, "/api/admin/ingredients/ing_2/toggle", nil)
		require.Equal(t, http.StatusOK, first.Code)
		assert.False(t, decode[toggled](t, first).Ingredient.Available)

		second := performAuthenticatedRequest(env.router, http.MethodPatch, "/api/admin/ingredients/ing_2/toggle", nil)
		require.Equal(t, http.StatusOK, second.Code)
		assert.True(t, decode[toggled](t, second).Ingredient.Available)
	})

	t.Run("Toggle with explicit value", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPatch, "/api/admin/ingredients/ing_1/toggle",
			handlers.ToggleRequest{Available: boolPtr(true)})
		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decode[struct {
			Ingredient models.Ingredient `json:"ingredient"`
		}](t, recorder)
		assert.True(t, resp.Ingredient.Available)
	})

	t.Run("Toggle unknown id", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPatch, "/api/admin/ingredients/ing_404/toggle", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Ingrediente não encontrado.", decode[envelope](t, recorder).Message)
	})
}

func TestHouseSpecialHandlers(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Creates a house special", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPost, "/api/admin/house-specials",
			handlers.CreateHouseSpecialRequest{Name: "Fit", Description: "Frango e salada", Ingredients: []string{"ing_4", "ing_5"}})
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		resp := decode[struct {
			envelope
			HouseSpecial models.HouseSpecial `json:"houseSpecial"`
		}](t, recorder)
		assert.Equal(t, "Moda da casa criada com sucesso!", resp.Message)
		assert.Equal(t, []string{"ing_4", "ing_5"}, resp.HouseSpecial.Ingredients)
	})

	t.Run("Rejects unknown ingredients and stores nothing", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPost, "/api/admin/house-specials",
			handlers.CreateHouseSpecialRequest{Name: "X", Description: "Y", Ingredients: []string{"ing_1", "ing_999"}})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, decode[envelope](t, recorder).Message, "ing_999")

		list := performRequest(env.router, http.MethodGet, "/api/admin/house-specials", nil)
		resp := decode[struct {
			HouseSpecials []models.HouseSpecial `json:"houseSpecials"`
		}](t, list)
		assert.Len(t, resp.HouseSpecials, 3)
	})

	t.Run("Toggle unknown id", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPatch, "/api/admin/house-specials/house_404/toggle", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Moda da casa não encontrada.", decode[envelope](t, recorder).Message)
	})
}

func TestDrinkHandlers(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Creates a drink", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPost, "/api/admin/drinks",
			handlers.CreateDrinkRequest{Type: models.DrinkGuaranaLata, Name: "Guaraná Zero", Price: 4.5})
		require.Equal(t, http.StatusCreated, recorder.Code)
		resp := decode[struct {
			Drink models.AvailableDrink `json:"drink"`
		}](t, recorder)
		assert.Equal(t, 4.5, resp.Drink.Price)
	})

	t.Run("Rejects invalid drinks", func(t *testing.T) {
		recorder := performAuthenticatedRequest(env.router, http.MethodPost, "/api/admin/drinks",
			handlers.CreateDrinkRequest{Type: models.DrinkCocaLata, Name: "Coca", Price: 0})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Todos os campos são obrigatórios e preço deve ser positivo.", decode[envelope](t, recorder).Message)
	})

	t.Run("Lists drinks", func(t *testing.T) {
		recorder := performRequest(env.router, http.MethodGet, "/api/admin/drinks", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decode[struct {
			Drinks []models.AvailableDrink `json:"drinks"`
		}](t, recorder)
		assert.Len(t, resp.Drinks, 4)
	})
}
