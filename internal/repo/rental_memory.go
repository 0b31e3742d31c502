package repo

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
)

// InMemoryRentalRepository is the rental ledger. Records are kept in creation
// order and are never removed.
type InMemoryRentalRepository struct {
	rentals  []models.Rental
	capacity int
	ids      *IDGenerator
	now      func() time.Time
}

// NewInMemoryRentalRepository creates an empty ledger holding at most capacity
// rentals (zero or less means no limit). now defaults to time.Now.
func NewInMemoryRentalRepository(capacity int, now func() time.Time) *InMemoryRentalRepository {
	if now == nil {
		now = time.Now
	}
	return &InMemoryRentalRepository{
		rentals:  []models.Rental{},
		capacity: capacity,
		ids:      NewIDGenerator(now),
		now:      now,
	}
}

// Create records a new active rental for a product that lookup can resolve.
func (r *InMemoryRentalRepository) Create(req RentalRequest, lookup ProductNameLookup) (models.Rental, error) {
	if r.full() {
		return models.Rental{}, &CapacityError{Store: "rental ledger", Limit: r.capacity}
	}
	name, ok := lookup(req.ProductID)
	if !ok {
		return models.Rental{}, fmt.Errorf("%w: %d", ErrUnknownProduct, req.ProductID)
	}
	if err := validateRental(req); err != nil {
		return models.Rental{}, err
	}

	rental := models.Rental{
		RentalID:      r.ids.Next(),
		ProductID:     req.ProductID,
		ProductName:   name,
		RenterName:    req.RenterName,
		RentDate:      r.now().Format(models.DateLayout),
		ReturnDate:    req.ReturnDate,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		AmountPaid:    req.AmountPaid.Round(2),
		Status:        models.RentalActive,
		StockReserved: req.ReserveStock,
	}
	r.rentals = append(r.rentals, rental)
	return rental, nil
}

// MarkReturned moves an active rental to returned. For a rental that is
// already returned it reports changed=false and leaves the record as is.
func (r *InMemoryRentalRepository) MarkReturned(rentalID int64) (models.Rental, bool, error) {
	i := r.indexOf(rentalID)
	if i < 0 {
		return models.Rental{}, false, ErrRentalNotFound
	}
	if r.rentals[i].Status != models.RentalActive {
		return r.rentals[i], false, nil
	}
	r.rentals[i].Status = models.RentalReturned
	r.rentals[i].ReturnedDate = r.now().Format(models.DateLayout)
	return r.rentals[i], true, nil
}

func (r *InMemoryRentalRepository) GetByID(rentalID int64) (models.Rental, error) {
	if i := r.indexOf(rentalID); i >= 0 {
		return r.rentals[i], nil
	}
	return models.Rental{}, ErrRentalNotFound
}

// GetAll returns a copy of the ledger in creation order.
func (r *InMemoryRentalRepository) GetAll() ([]models.Rental, error) {
	out := make([]models.Rental, len(r.rentals))
	copy(out, r.rentals)
	return out, nil
}

// Restore appends a rental read back from a snapshot, keeping its id.
func (r *InMemoryRentalRepository) Restore(rental models.Rental) error {
	if r.full() {
		return &CapacityError{Store: "rental ledger", Limit: r.capacity}
	}
	if r.indexOf(rental.RentalID) >= 0 {
		return fmt.Errorf("%w: rental %d", ErrDuplicateID, rental.RentalID)
	}
	if rental.Status != models.RentalActive && rental.Status != models.RentalReturned {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRental, rental.Status)
	}
	r.ids.Observe(rental.RentalID)
	r.rentals = append(r.rentals, rental)
	return nil
}

func (r *InMemoryRentalRepository) Count() int {
	return len(r.rentals)
}

func (r *InMemoryRentalRepository) full() bool {
	return r.capacity > 0 && len(r.rentals) >= r.capacity
}

func (r *InMemoryRentalRepository) indexOf(rentalID int64) int {
	for i, rental := range r.rentals {
		if rental.RentalID == rentalID {
			return i
		}
	}
	return -1
}
