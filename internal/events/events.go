// Package events publishes order lifecycle events for consumers such as a
// kitchen display.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, payload []byte) error
	Close() error
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("marmita-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload []byte) error {
	return p.conn.Publish(subject, payload)
}

func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}

// NoopPublisher is used when NATS_URL is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, []byte) error { return nil }
func (NoopPublisher) Close() error                                   { return nil }

type OrderEvent struct {
	EventType    string             `json:"eventType"`
	OrderID      string             `json:"orderId"`
	Status       models.OrderStatus `json:"status"`
	Delivered    bool               `json:"delivered"`
	Size         models.MarmitaSize `json:"size"`
	Quantidade   int                `json:"quantidade"`
	Total        float64            `json:"total"`
	CustomerName string             `json:"customerName"`
	OccurredAt   time.Time          `json:"occurredAt"`
}

// OrderEvents maps order changes to subjects under a common prefix:
// <prefix>.pedidos.criado and <prefix>.pedidos.status.
type OrderEvents struct {
	pub    Publisher
	prefix string
}

func NewOrderEvents(pub Publisher, prefix string) *OrderEvents {
	if pub == nil {
		pub = NoopPublisher{}
	}
	if prefix == "" {
		prefix = "marmita"
	}
	return &OrderEvents{pub: pub, prefix: prefix}
}

func (e *OrderEvents) CreatedSubject() string { return e.prefix + ".pedidos.criado" }
func (e *OrderEvents) StatusSubject() string  { return e.prefix + ".pedidos.status" }

func (e *OrderEvents) OrderCreated(ctx context.Context, order models.Order) {
	e.publish(ctx, e.CreatedSubject(), newOrderEvent(EventOrderCreated, order, order.CreatedAt))
}

func (e *OrderEvents) StatusChanged(ctx context.Context, order models.Order) {
	e.publish(ctx, e.StatusSubject(), newOrderEvent(EventOrderStatusChanged, order, order.UpdatedAt))
}

// publish logs failures; events never fail the request that caused them.
func (e *OrderEvents) publish(ctx context.Context, subject string, evt OrderEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		log.Printf("cannot marshal %s event for order %s: %v", evt.EventType, evt.OrderID, err)
		return
	}
	if err := e.pub.Publish(ctx, subject, payload); err != nil {
		log.Printf("cannot publish %s event for order %s: %v", evt.EventType, evt.OrderID, err)
	}
}

func (e *OrderEvents) Close() error {
	return e.pub.Close()
}

func newOrderEvent(kind string, order models.Order, at time.Time) OrderEvent {
	return OrderEvent{
		EventType:    kind,
		OrderID:      order.ID,
		Status:       order.Status,
		Delivered:    order.Delivered,
		Size:         order.Item.Size,
		Quantidade:   order.Item.Options.Quantidade,
		Total:        order.Total,
		CustomerName: order.CustomerName,
		OccurredAt:   at.UTC(),
	}
}
