package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoseMiguelMilani/teste-site/internal/finance"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
)

type AddExpenseRequest struct {
	Description  string  `json:"description" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Installments int     `json:"installments" binding:"required,gte=1"`
}

// GET /api/finances?period=semana|mes|ano
func (h *Handler) GetFinances(c *gin.Context) {
	period := finance.ParsePeriod(c.DefaultQuery("period", string(finance.PeriodMes)))

	report, err := h.svc.Finances(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Erro ao buscar dados financeiros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"period":        report.Period,
		"records":       report.Records,
		"totalRevenue":  report.TotalRevenue,
		"totalExpenses": report.TotalExpenses,
		"netProfit":     report.NetProfit(),
		"chartData":     report.ChartData,
	})
}

// POST /api/finances/expense
func (h *Handler) AddExpense(c *gin.Context) {
	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Descrição, valor e parcelas são obrigatórios.")
		return
	}

	expense, err := h.svc.AddExpense(c.Request.Context(), req.Description, req.Amount, req.Installments)
	if err != nil {
		respondError(c, err, "Erro ao adicionar despesa.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": service.ExpenseMessage(expense), "expense": expense})
}

// GET /api/finances/expenses
func (h *Handler) GetExpenses(c *gin.Context) {
	expenses, err := h.svc.ListExpenses(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar despesas.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "expenses": expenses})
}
