package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/pricing"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
)

type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateHouseSpecialRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

type CreateDrinkRequest struct {
	Type  models.DrinkType `json:"type" binding:"required"`
	Name  string           `json:"name" binding:"required"`
	Price float64          `json:"price" binding:"required,gt=0"`
}

// ToggleRequest sets availability explicitly; an empty body flips it.
type ToggleRequest struct {
	Available *bool `json:"available"`
}

// GET /api/menu/prices
func (h *Handler) GetMenuPrices(c *gin.Context) {
	drinks, err := h.svc.ListDrinks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar bebidas.")
		return
	}
	available := make([]models.AvailableDrink, 0, len(drinks))
	for _, d := range drinks {
		if d.Available {
			available = append(available, d)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sizes": pricing.Prices(), "drinks": available})
}

// GET /api/admin/ingredients
func (h *Handler) GetIngredients(c *gin.Context) {
	ingredients, err := h.svc.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar ingredientes.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ingredients": ingredients})
}

// POST /api/admin/ingredients
func (h *Handler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Nome do ingrediente é obrigatório.")
		return
	}

	ing, err := h.svc.CreateIngredient(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Ingrediente criado com sucesso!", "ingredient": ing})
}

// PATCH /api/admin/ingredients/:id/toggle
func (h *Handler) ToggleIngredient(c *gin.Context) {
	var req ToggleRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		badRequest(c, "Requisição inválida.")
		return
	}

	ing, err := h.svc.SetIngredientAvailability(c.Request.Context(), c.Param("id"), req.Available)
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Disponibilidade atualizada com sucesso.", "ingredient": ing})
}

// GET /api/admin/house-specials
func (h *Handler) GetHouseSpecials(c *gin.Context) {
	specials, err := h.svc.ListHouseSpecials(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar modas da casa.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "houseSpecials": specials})
}

// POST /api/admin/house-specials
func (h *Handler) CreateHouseSpecial(c *gin.Context) {
	var req CreateHouseSpecialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Todos os campos são obrigatórios.")
		return
	}

	hs, err := h.svc.CreateHouseSpecial(c.Request.Context(), service.HouseSpecialInput{
		Name:        req.Name,
		Description: req.Description,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Moda da casa criada com sucesso!", "houseSpecial": hs})
}

// PATCH /api/admin/house-specials/:id/toggle
func (h *Handler) ToggleHouseSpecial(c *gin.Context) {
	var req ToggleRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		badRequest(c, "Requisição inválida.")
		return
	}

	hs, err := h.svc.SetHouseSpecialAvailability(c.Request.Context(), c.Param("id"), req.Available)
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Disponibilidade atualizada com sucesso.", "houseSpecial": hs})
}

// GET /api/admin/drinks
func (h *Handler) GetDrinks(c *gin.Context) {
	drinks, err := h.svc.ListDrinks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar bebidas.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "drinks": drinks})
}

// POST /api/admin/drinks
func (h *Handler) CreateDrink(c *gin.Context) {
	var req CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Todos os campos são obrigatórios e preço deve ser positivo.")
		return
	}

	drink, err := h.svc.CreateDrink(c.Request.Context(), service.DrinkInput{Type: req.Type, Name: req.Name, Price: req.Price})
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Bebida criada com sucesso!", "drink": drink})
}

// PATCH /api/admin/drinks/:id/toggle
func (h *Handler) ToggleDrink(c *gin.Context) {
	var req ToggleRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		badRequest(c, "Requisição inválida.")
		return
	}

	drink, err := h.svc.SetDrinkAvailability(c.Request.Context(), c.Param("id"), req.Available)
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Disponibilidade atualizada com sucesso.", "drink": drink})
}
