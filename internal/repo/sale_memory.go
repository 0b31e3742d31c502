package repo

import (
	"time"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/shopspring/decimal"
)

type InMemorySaleRepository struct {
	sales []models.Sale
	ids   *IDGenerator
	now   func() time.Time
}

func NewInMemorySaleRepository(now func() time.Time) *InMemorySaleRepository {
	if now == nil {
		now = time.Now
	}
	return &InMemorySaleRepository{
		sales: []models.Sale{},
		ids:   NewIDGenerator(now),
		now:   now,
	}
}

// Log records qty units of product sold at its current price.
func (r *InMemorySaleRepository) Log(product models.Product, qty int) models.Sale {
	sale := models.Sale{
		SaleID:       r.ids.Next(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		QuantitySold: qty,
		Date:         r.now().Format(models.DateLayout),
		Amount:       product.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
	r.sales = append(r.sales, sale)
	return sale
}

func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}
