// Package pricing computes marmita order totals from the size table and the
// drink catalog.
package pricing

import (
	"errors"
	"fmt"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

var ErrInvalidSize = errors.New("invalid marmita size")

var sizePrices = map[models.MarmitaSize]float64{
	models.SizePequena: 12.00,
	models.SizeMedia:   15.00,
	models.SizeGrande:  18.00,
}

type Totals struct {
	UnitPrice   float64 `json:"unitPrice"`
	DrinksTotal float64 `json:"drinksTotal"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Prices returns a copy of the size table.
func Prices() map[models.MarmitaSize]float64 {
	out := make(map[models.MarmitaSize]float64, len(sizePrices))
	for size, price := range sizePrices {
		out[size] = price
	}
	return out
}

func UnitPrice(size models.MarmitaSize) (float64, error) {
	price, ok := sizePrices[size]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	return price, nil
}

// DrinkPrice resolves a drink reference against the catalog, first by id and
// then by type. Unknown references cost nothing.
func DrinkPrice(ref string, catalog []models.AvailableDrink) float64 {
	for _, drink := range catalog {
		if drink.ID == ref {
			return drink.Price
		}
	}
	for _, drink := range catalog {
		if string(drink.Type) == ref {
			return drink.Price
		}
	}
	return 0
}

// ComputeOrderTotal does not validate quantidade; order creation rejects
// values below one before calling it.
func ComputeOrderTotal(size models.MarmitaSize, quantidade int, drinks []models.DrinkOption, catalog []models.AvailableDrink) (Totals, error) {
	unit, err := UnitPrice(size)
	if err != nil {
		return Totals{}, err
	}

	var drinksTotal float64
	for _, d := range drinks {
		drinksTotal += DrinkPrice(d.Type, catalog) * float64(d.Quantity)
	}

	return Totals{
		UnitPrice:   unit,
		DrinksTotal: drinksTotal,
		TotalPrice:  unit*float64(quantidade) + drinksTotal,
	}, nil
}
