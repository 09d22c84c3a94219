package models

import "time"

type RecordType string

const (
	RecordEntrada RecordType = "entrada"
	RecordSaida   RecordType = "saida"
)

// FinancialRecord is one line of the ledger. OrderID holds the order id for
// entrada records and the expense id for saida records.
type FinancialRecord struct {
	ID          string     `json:"id" gorm:"primaryKey;size:64"`
	OrderID     string     `json:"orderId" gorm:"size:64;index;not null"`
	Amount      float64    `json:"amount" gorm:"not null"`
	Type        RecordType `json:"type" gorm:"size:8;index;not null"`
	Description string     `json:"description" gorm:"size:255"`
	Date        time.Time  `json:"date" gorm:"index;not null"`
}

type Expense struct {
	ID            string    `json:"id" gorm:"primaryKey;size:64"`
	Description   string    `json:"description" gorm:"size:255;not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Installments  int       `json:"installments" gorm:"not null"`
	MonthlyAmount float64   `json:"monthlyAmount" gorm:"not null"`
	StartDate     time.Time `json:"startDate" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
}
