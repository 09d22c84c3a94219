package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/pricing"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

type CreateOrderInput struct {
	Item          *models.OrderItem
	Address       *models.Address
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
}

// CreateOrder prices the item against the current drink catalog and appends
// the order together with its entrada record. Prices sent by the client are
// ignored.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (models.Order, error) {
	if in.Item == nil || in.Address == nil ||
		strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.PaymentMethod) == "" {
		return models.Order{}, invalid("Todos os campos são obrigatórios.", ErrMissingFields)
	}
	if in.Item.Options.Quantidade < 1 {
		return models.Order{}, invalid("A quantidade deve ser de pelo menos 1 marmita.", ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.ListDrinks(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("load drink catalog: %w", err)
	}

	totals, err := pricing.ComputeOrderTotal(in.Item.Size, in.Item.Options.Quantidade, in.Item.Options.Drinks, catalog)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidSize) {
			return models.Order{}, invalid("Tamanho da marmita inválido.", err)
		}
		return models.Order{}, err
	}

	item := *in.Item
	item.UnitPrice = totals.UnitPrice
	item.DrinksTotal = totals.DrinksTotal
	item.TotalPrice = totals.TotalPrice

	now := s.now()
	order := models.Order{
		ID:            utils.NewID("order"),
		Item:          item,
		Address:       *in.Address,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Total:         totals.TotalPrice,
		Status:        models.StatusPendente,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Delivered:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	record := models.FinancialRecord{
		ID:          utils.NewID("finance"),
		OrderID:     order.ID,
		Amount:      order.Total,
		Type:        models.RecordEntrada,
		Description: RevenueDescription(order),
		Date:        now,
	}

	if err := s.store.CreateOrder(ctx, &order, &record); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// RevenueDescription is the ledger text for an order, e.g.
// "Marmita media (Salada, Talheres) - Ana". Finance charts classify records
// by matching tokens in this text.
func RevenueDescription(order models.Order) string {
	var extras []string
	opts := order.Item.Options
	if opts.Salada {
		extras = append(extras, "Salada")
	}
	if opts.Torresmo {
		extras = append(extras, "Torresmo")
	}
	if opts.Talheres {
		extras = append(extras, "Talheres")
	}
	extrasText := ""
	if len(extras) > 0 {
		extrasText = " (" + strings.Join(extras, ", ") + ")"
	}
	return fmt.Sprintf("Marmita %s%s - %s", order.Item.Size, extrasText, order.CustomerName)
}

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id string) (models.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, lookupErr(err, "order", id)
	}
	return order, nil
}

// StatusUpdate carries the optional fields of a status change.
type StatusUpdate struct {
	Status    *models.OrderStatus
	Delivered *bool
}

// ApplyStatusUpdate mutates order in place. Any known status may follow any
// other; delivered=true always ends in entregue, whatever status was sent.
func ApplyStatusUpdate(order *models.Order, upd StatusUpdate, now time.Time) error {
	if upd.Status != nil && !upd.Status.Valid() {
		return invalid("Status do pedido inválido.", ErrInvalidStatus)
	}

	order.UpdatedAt = now
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.Delivered != nil {
		order.Delivered = *upd.Delivered
		if *upd.Delivered {
			order.Status = models.StatusEntregue
		}
	}
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, orderID string, upd StatusUpdate) (models.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return models.Order{}, invalid("ID do pedido é obrigatório.", ErrMissingOrderID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return models.Order{}, lookupErr(err, "order", orderID)
	}
	if err := ApplyStatusUpdate(&order, upd, s.now()); err != nil {
		return models.Order{}, err
	}
	if err := s.store.UpdateOrder(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
