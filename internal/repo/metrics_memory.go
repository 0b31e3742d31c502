package repo

import (
	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/shopspring/decimal"
)

type InMemoryMetricsRepository struct {
	productRepo ProductRepository
	rentalRepo  RentalRepository
	saleRepo    SaleRepository
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{
		InventoryValue: decimal.Zero,
		RentalRevenue:  decimal.Zero,
		SalesRevenue:   decimal.Zero,
	}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)
	for _, p := range products {
		m.TotalUnits += p.Quantity
		m.InventoryValue = m.InventoryValue.Add(p.Value())
		if p.Quantity == 0 {
			m.OutOfStockCount++
		}
	}

	rentals, err := i.rentalRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalRentals = len(rentals)
	for _, r := range rentals {
		switch r.Status {
		case models.RentalActive:
			m.ActiveRentals++
		case models.RentalReturned:
			m.ReturnedRentals++
		}
		m.RentalRevenue = m.RentalRevenue.Add(r.AmountPaid)
	}

	if i.saleRepo != nil {
		sales, err := i.saleRepo.GetAll()
		if err != nil {
			return m, err
		}
		m.SalesCount = len(sales)
		for _, s := range sales {
			m.SalesRevenue = m.SalesRevenue.Add(s.Amount)
		}
	}

	return m, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	rentalRepo RentalRepository,
	saleRepo SaleRepository,
) {
	i.productRepo = productRepo
	i.rentalRepo = rentalRepo
	i.saleRepo = saleRepo
}
