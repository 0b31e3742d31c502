package repo

import (
	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ProductNameLookup resolves a product id to the product's current name.
type ProductNameLookup func(productID int) (string, bool)

// RentalRequest carries the caller supplied fields of a new rental.
type RentalRequest struct {
	ProductID   int
	RenterName  string          `validate:"required"`
	PhoneNumber string          `validate:"required"`
	Address     string          `validate:"required"`
	ReturnDate  string          `validate:"required,datetime=2006-01-02"`
	AmountPaid  decimal.Decimal `validate:"gte=0"`

	// ReserveStock marks the rental as holding one unit of the product.
	ReserveStock bool
}

// RentalRepository defines the rental ledger operations.
type RentalRepository interface {
	Create(req RentalRequest, lookup ProductNameLookup) (models.Rental, error)
	MarkReturned(rentalID int64) (models.Rental, bool, error)
	GetByID(rentalID int64) (models.Rental, error)
	GetAll() ([]models.Rental, error)
	Restore(rental models.Rental) error
	Count() int
}
