package repo

import "github.com/shopspring/decimal"

type Metrics struct {
	TotalProducts   int             `json:"total_products"`
	TotalUnits      int             `json:"total_units"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	TotalRentals    int             `json:"total_rentals"`
	ActiveRentals   int             `json:"active_rentals"`
	ReturnedRentals int             `json:"returned_rentals"`
	RentalRevenue   decimal.Decimal `json:"rental_revenue"`
	SalesCount      int             `json:"sales_count"`
	SalesRevenue    decimal.Decimal `json:"sales_revenue"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
