package repo

import (
	"github.com/rogerio-castellano/rental-tracker/internal/models"
)

// InMemoryProductRepository is the product catalog. Products keep insertion
// order until SortBy reorders them.
type InMemoryProductRepository struct {
	products []models.Product
	capacity int
}

// NewInMemoryProductRepository creates an empty catalog holding at most
// capacity products. A capacity of zero or less means no limit.
func NewInMemoryProductRepository(capacity int) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		capacity: capacity,
	}
}

// Create adds a new product to the catalog. Prices are kept to cents, the
// precision both stores write.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if err := validateProduct(product); err != nil {
		return models.Product{}, err
	}
	product.Price = product.Price.Round(2)
	if r.indexOf(product.ID) >= 0 {
		return models.Product{}, ErrDuplicateID
	}
	if r.capacity > 0 && len(r.products) >= r.capacity {
		return models.Product{}, &CapacityError{Store: "catalog", Limit: r.capacity}
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll returns a copy of the catalog in its current order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// Update overwrites name, price and quantity of an existing product.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	if err := validateProduct(product); err != nil {
		return models.Product{}, err
	}
	i := r.indexOf(product.ID)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	product.Price = product.Price.Round(2)
	r.products[i] = product
	return product, nil
}

// Delete removes a product, shifting the following ones left.
func (r *InMemoryProductRepository) Delete(id int) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// Sell takes qty units out of stock and returns the product with its
// remaining quantity.
func (r *InMemoryProductRepository) Sell(id int, qty int) (models.Product, error) {
	if qty <= 0 {
		return models.Product{}, ErrInvalidQuantity
	}
	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	if qty > r.products[i].Quantity {
		return models.Product{}, &StockError{ProductID: id, Requested: qty, Available: r.products[i].Quantity}
	}
	r.products[i].Quantity -= qty
	return r.products[i], nil
}

// AdjustQuantity implements ProductRepository.
func (r *InMemoryProductRepository) AdjustQuantity(id int, delta int) (models.Product, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	if r.products[i].Quantity+delta < 0 {
		return models.Product{}, ErrInvalidQuantityChange
	}
	r.products[i].Quantity += delta
	return r.products[i], nil
}

func (r *InMemoryProductRepository) Count() int {
	return len(r.products)
}

func (r *InMemoryProductRepository) indexOf(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
