// Package notifier tells the customer and the kitchen about new orders.
package notifier

import (
	"context"
	"errors"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

var ErrNotConfigured = errors.New("notifier not configured")

type OrderNotifier interface {
	NotifyOrder(ctx context.Context, order models.Order) error
}

// Multi fans an order out to every notifier and joins their errors.
type Multi []OrderNotifier

func (m Multi) NotifyOrder(ctx context.Context, order models.Order) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyOrder(ctx, order); err != nil && !errors.Is(err, ErrNotConfigured) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
