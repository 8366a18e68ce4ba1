// Package receipt implements receipt validation, scoring, and in-memory storage.
package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Layouts for the date and time fields of a submitted receipt.
const (
	purchaseDateLayout = "2006-01-02"
	purchaseTimeLayout = "15:04"
)

// Item is a single line entry on a receipt.
type Item struct {
	ShortDescription string          `json:"shortDescription"`
	Price            decimal.Decimal `json:"price"`
}

// Receipt is a validated purchase record. Instances are immutable once
// stored; all fields are normalized by Validate.
type Receipt struct {
	Retailer     string          `json:"retailer"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	PurchaseTime time.Time       `json:"purchaseTime"`
	Items        []Item          `json:"items"`
	Total        decimal.Decimal `json:"total"`
}
