package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoseMiguelMilani/teste-site/internal/auth"
	"github.com/JoseMiguelMilani/teste-site/internal/events"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/notifier"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
)

const notifyTimeout = 30 * time.Second

type Handler struct {
	svc      *service.Service
	notifier notifier.OrderNotifier
	events   *events.OrderEvents

	wg sync.WaitGroup
}

func New(svc *service.Service, n notifier.OrderNotifier, ev *events.OrderEvents) *Handler {
	if n == nil {
		n = notifier.Multi{}
	}
	if ev == nil {
		ev = events.NewOrderEvents(nil, "")
	}
	return &Handler{svc: svc, notifier: n, events: ev}
}

// RegisterRoutes mounts the public and admin API on r. Admin routes require
// a session created by login.
func (h *Handler) RegisterRoutes(r gin.IRouter, login gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello from Sabor & Cia API!"})
		})
		api.GET("/menu/prices", h.GetMenuPrices)
		api.POST("/orders", h.CreateOrder)
		api.POST("/admin/login", login)
		api.POST("/admin/logout", auth.Logout)

		api.GET("/admin/ingredients", h.GetIngredients)
		api.GET("/admin/house-specials", h.GetHouseSpecials)
		api.GET("/admin/drinks", h.GetDrinks)
	}

	admin := api.Group("", auth.RequireAdmin())
	{
		admin.GET("/orders", h.GetOrders)
		admin.PUT("/orders/status", h.UpdateOrderStatus)

		admin.GET("/finances", h.GetFinances)
		admin.POST("/finances/expense", h.AddExpense)
		admin.GET("/finances/expenses", h.GetExpenses)

		admin.POST("/admin/ingredients", h.CreateIngredient)
		admin.PATCH("/admin/ingredients/:id/toggle", h.ToggleIngredient)
		admin.POST("/admin/house-specials", h.CreateHouseSpecial)
		admin.PATCH("/admin/house-specials/:id/toggle", h.ToggleHouseSpecial)
		admin.POST("/admin/drinks", h.CreateDrink)
		admin.PATCH("/admin/drinks/:id/toggle", h.ToggleDrink)
	}
}

// Wait blocks until background notifications have finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) notifyOrder(order models.Order) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.NotifyOrder(ctx, order); err != nil {
			log.Printf("order %s notification failed: %v", order.ID, err)
		}
	}()
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case service.IsValidation(err), service.IsReference(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
