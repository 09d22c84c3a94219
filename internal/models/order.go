package models

import "time"

type MarmitaSize string

const (
	SizePequena MarmitaSize = "pequena"
	SizeMedia   MarmitaSize = "media"
	SizeGrande  MarmitaSize = "grande"
)

type OrderStatus string

const (
	StatusPendente   OrderStatus = "pendente"
	StatusPreparando OrderStatus = "preparando"
	StatusPronta     OrderStatus = "pronta"
	StatusEntregue   OrderStatus = "entregue"
	StatusCancelado  OrderStatus = "cancelado"
)

var OrderStatuses = []OrderStatus{StatusPendente, StatusPreparando, StatusPronta, StatusEntregue, StatusCancelado}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type OrderingType string

const (
	OrderingModaDaCasa    OrderingType = "moda-da-casa"
	OrderingPersonalizada OrderingType = "personalizada"
)

// DrinkOption references a catalog drink. Type carries whatever the client
// sent as the reference (the catalog id, or the drink type).
type DrinkOption struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type MarmitaOptions struct {
	OrderingType        OrderingType  `json:"orderingType"`
	HouseSpecialID      string        `json:"houseSpecialId,omitempty"`
	SelectedIngredients []string      `json:"selectedIngredients,omitempty"`
	Salada              bool          `json:"salada"`
	Torresmo            bool          `json:"torresmo"`
	Talheres            bool          `json:"talheres"`
	Quantidade          int           `json:"quantidade"`
	WantsDrinks         bool          `json:"wantsDrinks"`
	Drinks              []DrinkOption `json:"drinks"`
}

type OrderItem struct {
	Size        MarmitaSize    `json:"size"`
	Options     MarmitaOptions `json:"options"`
	UnitPrice   float64        `json:"unitPrice"`
	DrinksTotal float64        `json:"drinksTotal"`
	TotalPrice  float64        `json:"totalPrice"`
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;size:64"`
	Item          OrderItem   `json:"item" gorm:"type:text;serializer:json"`
	Address       Address     `json:"address" gorm:"type:text;serializer:json"`
	CustomerName  string      `json:"customerName" gorm:"size:120;not null"`
	CustomerPhone string      `json:"customerPhone" gorm:"size:32;not null"`
	Total         float64     `json:"total" gorm:"not null"`
	Status        OrderStatus `json:"status" gorm:"size:16;index;not null"`
	PaymentMethod string      `json:"paymentMethod" gorm:"size:32;not null"`
	Delivered     bool        `json:"delivered" gorm:"not null"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time   `json:"updatedAt" gorm:"autoUpdateTime:false"`
}
