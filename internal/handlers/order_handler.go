package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
)

type CreateOrderRequest struct {
	Item          *models.OrderItem `json:"item" binding:"required"`
	Address       *models.Address   `json:"address" binding:"required"`
	CustomerName  string            `json:"customerName" binding:"required"`
	CustomerPhone string            `json:"customerPhone" binding:"required"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	OrderID   string              `json:"orderId" binding:"required"`
	Status    *models.OrderStatus `json:"status"`
	Delivered *bool               `json:"delivered"`
}

// POST /api/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Todos os campos são obrigatórios.")
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		Item:          req.Item,
		Address:       req.Address,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err, "Erro interno do servidor.")
		return
	}

	h.events.OrderCreated(c.Request.Context(), order)
	h.notifyOrder(order)

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Pedido criado com sucesso!", "order": order})
}

// GET /api/orders
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar pedidos.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// PUT /api/orders/status
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "ID do pedido é obrigatório.")
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), req.OrderID, service.StatusUpdate{
		Status:    req.Status,
		Delivered: req.Delivered,
	})
	if err != nil {
		respondError(c, err, "Erro ao atualizar pedido.")
		return
	}

	h.events.StatusChanged(c.Request.Context(), order)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pedido atualizado com sucesso.", "order": order})
}
