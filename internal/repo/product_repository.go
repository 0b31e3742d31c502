package repo

import "github.com/rogerio-castellano/rental-tracker/internal/models"

// ProductRepository defines the catalog operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	Sell(id int, qty int) (models.Product, error)
	AdjustQuantity(id int, delta int) (models.Product, error)
	SortBy(key SortKey) error
	Count() int
}
