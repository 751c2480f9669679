package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a transaction by spending area.
type Category string

const (
	CategoryTransport     Category = "Transport"
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// AllCategories returns every valid category.
func AllCategories() []Category {
	return []Category{
		CategoryTransport,
		CategoryFood,
		CategoryShopping,
		CategoryHealth,
		CategoryEntertainment,
		CategoryOther,
	}
}

// Transaction is a categorized ledger entry ready for display.
type Transaction struct {
	ID            string
	Date          time.Time
	Description   string
	Amount        decimal.Decimal // negative = expense, positive = income
	ReferenceDate *time.Time      // statement as-of date, nil if the statement had none
	Category      Category
}

// IsIncome reports whether the transaction is a credit.
// Derived from the amount sign, never stored independently.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}
