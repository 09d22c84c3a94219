package service

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidQuantity     = errors.New("quantidade must be at least 1")
	ErrMissingOrderID      = errors.New("order id is required")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrDuplicateIngredient = errors.New("ingredient already exists")
	ErrInvalidDrink        = errors.New("invalid drink")
)

// ValidationError reports missing or invalid input. Message is meant for
// the customer or admin; Err carries the sentinel for errors.Is.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(message string, err error) error {
	return &ValidationError{Message: message, Err: err}
}

// NotFoundError reports an unknown id on lookup or availability change.
type NotFoundError struct {
	Entity string
	ID     string
	Err    error
}

var notFoundMessages = map[string]string{
	"order":         "Pedido não encontrado.",
	"ingredient":    "Ingrediente não encontrado.",
	"house special": "Moda da casa não encontrada.",
	"drink":         "Bebida não encontrada.",
}

func (e *NotFoundError) Error() string {
	if msg, ok := notFoundMessages[e.Entity]; ok {
		return msg
	}
	return e.Entity + " " + e.ID + " not found"
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ReferenceError is returned when a house special names ingredients that do
// not exist.
type ReferenceError struct {
	MissingIDs []string
}

func (e *ReferenceError) Error() string {
	return "Alguns ingredientes selecionados não existem: " + strings.Join(e.MissingIDs, ", ")
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsReference(err error) bool {
	var ref *ReferenceError
	return errors.As(err, &ref)
}
