package repo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProductNotFound is returned when a product is not found in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrRentalNotFound is returned when a rental id is not in the ledger.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrDuplicateID is returned when a record with the same id already exists.
	ErrDuplicateID = errors.New("id already exists")
	// ErrCapacityExceeded is returned when a store is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInsufficientStock is returned when a sale asks for more units than available.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOutOfStock is returned when a rental needs a unit and none is left.
	ErrOutOfStock = errors.New("product not available for rent")
	// ErrUnknownProduct is returned when a rental references a product missing from the catalog.
	ErrUnknownProduct = errors.New("rental references unknown product")

	// ErrInvalidProduct is matched by a *ValidationError raised for a product.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidRental is matched by a *ValidationError raised for a rental.
	ErrInvalidRental = errors.New("invalid rental")
	// ErrInvalidQuantity is returned when a sale asks for zero or fewer units.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidQuantityChange is returned when an adjustment would leave stock below zero.
	ErrInvalidQuantityChange = errors.New("quantity cannot be negative")
	// ErrInvalidSortKey is returned for a sort key other than id, name or price.
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// CapacityError reports which store is full and its limit.
type CapacityError struct {
	Store string
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s is full (limit %d)", e.Store, e.Limit)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// StockError carries the quantity still available when a sale is refused.
type StockError struct {
	ProductID int
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient quantity for product %d: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// FieldError names one field that failed validation.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError lists every field that failed validation. It matches
// ErrInvalidProduct or ErrInvalidRental depending on what was validated.
type ValidationError struct {
	Kind   error
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Description
	}
	return fmt.Sprintf("%v: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
