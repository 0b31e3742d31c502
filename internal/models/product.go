package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the inventory catalog.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name" validate:"required,token"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity int             `json:"quantity" validate:"gte=0"`
}

// Value is the stock value of the product at its current price.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
