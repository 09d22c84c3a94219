// Package service is the operation boundary of the restaurant: it validates
// input, prices orders, keeps the financial ledger in step with orders and
// expenses, and reports domain failures as typed errors.
package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/JoseMiguelMilani/teste-site/internal/store"
)

type Service struct {
	store store.Store
	now   func() time.Time

	// mu serializes mutations so that at most one write runs at a time.
	mu sync.Mutex
}

type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{store: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func lookupErr(err error, entity, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id, Err: err}
	}
	return fmt.Errorf("load %s %s: %w", entity, id, err)
}
