package models

import "time"

type DrinkType string

const (
	DrinkCocaLata    DrinkType = "coca-lata"
	DrinkGuaranaLata DrinkType = "guarana-lata"
	DrinkSpriteLata  DrinkType = "sprite-lata"
)

var DrinkTypes = []DrinkType{DrinkCocaLata, DrinkGuaranaLata, DrinkSpriteLata}

func (t DrinkType) Valid() bool {
	for _, known := range DrinkTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Ingredient struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"size:120;not null"`
	Available bool      `json:"available" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

type HouseSpecial struct {
	ID          string    `json:"id" gorm:"primaryKey;size:64"`
	Name        string    `json:"name" gorm:"size:120;not null"`
	Description string    `json:"description" gorm:"size:255;not null"`
	Ingredients []string  `json:"ingredients" gorm:"type:text;serializer:json"` // ingredient ids
	Available   bool      `json:"available" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

type AvailableDrink struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Type      DrinkType `json:"type" gorm:"size:32;not null"`
	Name      string    `json:"name" gorm:"size:120;not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Available bool      `json:"available" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}
