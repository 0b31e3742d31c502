package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/rogerio-castellano/rental-tracker/internal/repo"
	"github.com/rs/zerolog"
)

// Gateway is the persistence side used by the service.
type Gateway interface {
	Load() ([]models.Product, error)
	LoadRentals() ([]models.Rental, error)
	Save(ctx context.Context, products []models.Product, rentals []models.Rental) error
}

type Options struct {
	// RestoreRentals reads the ledger back from the snapshot at startup.
	RestoreRentals bool
	// ReserveStock takes one unit out of stock per active rental.
	ReserveStock bool
}

// Service is the entry point to the catalog and the rental ledger. Calls are
// serialized with a mutex, so a Service may be shared between goroutines.
type Service struct {
	mu       sync.Mutex
	products repo.ProductRepository
	rentals  repo.RentalRepository
	sales    repo.SaleRepository
	metrics  repo.MetricsRepository
	gateway  Gateway
	opts     Options
	logger   zerolog.Logger
}

func NewService(
	products repo.ProductRepository,
	rentals repo.RentalRepository,
	sales repo.SaleRepository,
	gateway Gateway,
	opts Options,
	logger zerolog.Logger,
) *Service {
	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(products, rentals, sales)

	return &Service{
		products: products,
		rentals:  rentals,
		sales:    sales,
		metrics:  metrics,
		gateway:  gateway,
		opts:     opts,
		logger:   logger.With().Str("component", "inventory").Logger(),
	}
}

type BootstrapResult struct {
	Products        int
	Rentals         int
	SkippedProducts int
	SkippedRentals  int
}

// Bootstrap fills the catalog from the product store and, when enabled, the
// ledger from the snapshot. Records the repositories refuse (duplicate ids,
// invalid values, over capacity) are skipped and logged.
func (s *Service) Bootstrap() (BootstrapResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res BootstrapResult
	products, err := s.gateway.Load()
	if err != nil {
		return res, err
	}
	for _, p := range products {
		if _, err := s.products.Create(p); err != nil {
			s.logger.Warn().Err(err).Int("product_id", p.ID).Msg("skipping stored product")
			res.SkippedProducts++
			continue
		}
		res.Products++
	}

	if s.opts.RestoreRentals {
		rentals, err := s.gateway.LoadRentals()
		if err != nil {
			return res, err
		}
		for _, r := range rentals {
			if err := s.rentals.Restore(r); err != nil {
				s.logger.Warn().Err(err).Int64("rental_id", r.RentalID).Msg("skipping stored rental")
				res.SkippedRentals++
				continue
			}
			res.Rentals++
		}
	}

	s.logger.Info().
		Int("products", res.Products).
		Int("rentals", res.Rentals).
		Int("skipped_products", res.SkippedProducts).
		Int("skipped_rentals", res.SkippedRentals).
		Bool("restore_rentals", s.opts.RestoreRentals).
		Msg("inventory loaded")
	return res, nil
}

func (s *Service) AddProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.products.Create(p)
	if err != nil {
		return models.Product{}, err
	}
	s.logger.Info().Int("product_id", created.ID).Str("name", created.Name).Msg("product added")
	return created, nil
}

func (s *Service) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, _ := s.products.GetAll()
	return products
}

func (s *Service) FindProduct(id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products.GetByID(id)
}

func (s *Service) SortProducts(key repo.SortKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products.SortBy(key)
}

func (s *Service) UpdateProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.products.Update(p)
	if err != nil {
		return models.Product{}, err
	}
	s.logger.Info().Int("product_id", updated.ID).Msg("product updated")
	return updated, nil
}

func (s *Service) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.products.Delete(id); err != nil {
		return err
	}
	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// SellProduct takes qty units out of stock and records the sale.
func (s *Service) SellProduct(id, qty int) (models.Product, models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.Sell(id, qty)
	if err != nil {
		return models.Product{}, models.Sale{}, err
	}
	sale := s.sales.Log(product, qty)
	s.logger.Info().
		Int("product_id", id).
		Int("sold", qty).
		Int("remaining", product.Quantity).
		Str("amount", sale.Amount.StringFixed(2)).
		Msg("product sold")
	return product, sale, nil
}

// RecordRental adds a rental for an existing product. The product name is
// resolved through the catalog at this moment only.
func (s *Service) RecordRental(req repo.RentalRequest) (models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.ReserveStock {
		p, err := s.products.GetByID(req.ProductID)
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.Rental{}, fmt.Errorf("%w: %d", repo.ErrUnknownProduct, req.ProductID)
		}
		if err != nil {
			return models.Rental{}, err
		}
		if p.Quantity <= 0 {
			return models.Rental{}, repo.ErrOutOfStock
		}
	}

	req.ReserveStock = s.opts.ReserveStock
	rental, err := s.rentals.Create(req, s.lookupName)
	if err != nil {
		return models.Rental{}, err
	}

	if rental.StockReserved {
		if _, err := s.products.AdjustQuantity(req.ProductID, -1); err != nil {
			s.logger.Error().Err(err).Int("product_id", req.ProductID).Msg("could not reserve stock for rental")
		}
	}

	s.logger.Info().
		Int64("rental_id", rental.RentalID).
		Int("product_id", rental.ProductID).
		Str("renter", rental.RenterName).
		Msg("rental recorded")
	return rental, nil
}

func (s *Service) lookupName(productID int) (string, bool) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return "", false
	}
	return p.Name, true
}

func (s *Service) Rentals() []models.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()

	rentals, _ := s.rentals.GetAll()
	return rentals
}

// ReturnRental marks a rental returned. changed is false when it already was.
// A rental recorded with stock reservation puts its unit back.
func (s *Service) ReturnRental(rentalID int64) (rental models.Rental, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, changed, err = s.rentals.MarkReturned(rentalID)
	if err != nil || !changed {
		return rental, changed, err
	}

	// only rentals that took a unit give one back, whatever the current option
	if rental.StockReserved {
		_, err := s.products.AdjustQuantity(rental.ProductID, 1)
		if err != nil && !errors.Is(err, repo.ErrProductNotFound) {
			s.logger.Error().Err(err).Int("product_id", rental.ProductID).Msg("could not release stock for rental")
		}
	}

	s.logger.Info().Int64("rental_id", rentalID).Msg("rental returned")
	return rental, true, nil
}

func (s *Service) Sales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, _ := s.sales.GetAll()
	return sales
}

func (s *Service) Metrics() (repo.Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.metrics.GetDashboardMetrics()
}

// Save writes the catalog and the ledger through the gateway.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.GetAll()
	if err != nil {
		return err
	}
	rentals, err := s.rentals.GetAll()
	if err != nil {
		return err
	}
	return s.gateway.Save(ctx, products, rentals)
}
