package models

import "github.com/shopspring/decimal"

type Sale struct {
	SaleID       int64           `json:"saleId"`
	ProductID    int             `json:"productId"`
	ProductName  string          `json:"productName"`
	QuantitySold int             `json:"quantitySold"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
}
