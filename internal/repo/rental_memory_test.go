package repo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/rogerio-castellano/rental-tracker/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func frozenClock() time.Time { return fixedNow }

func drillLookup(id int) (string, bool) {
	if id == 1 {
		return "Drill", true
	}
	return "", false
}

func rentalRequest(productID int) repo.RentalRequest {
	return repo.RentalRequest{
		ProductID:   productID,
		RenterName:  "Asha",
		PhoneNumber: "555-0100",
		Address:     "12 Elm St",
		ReturnDate:  "2025-03-20",
		AmountPaid:  decimal.RequireFromString("15.00"),
	}
}

func TestCreateRental(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)

	rental, err := r.Create(rentalRequest(1), drillLookup)
	require.NoError(t, err)

	assert.Equal(t, fixedNow.UnixMicro(), rental.RentalID)
	assert.Equal(t, "Drill", rental.ProductName)
	assert.Equal(t, "2025-03-14", rental.RentDate)
	assert.Equal(t, "2025-03-20", rental.ReturnDate)
	assert.Equal(t, models.RentalActive, rental.Status)
	assert.Empty(t, rental.ReturnedDate)
	assert.Equal(t, 1, r.Count())
}

func TestCreateRental_UnknownProduct(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)

	_, err := r.Create(rentalRequest(99), drillLookup)
	assert.ErrorIs(t, err, repo.ErrUnknownProduct)
	assert.Equal(t, 0, r.Count())
}

func TestCreateRental_Capacity(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(2, frozenClock)
	for i := 0; i < 2; i++ {
		_, err := r.Create(rentalRequest(1), drillLookup)
		require.NoError(t, err)
	}

	_, err := r.Create(rentalRequest(1), drillLookup)
	require.ErrorIs(t, err, repo.ErrCapacityExceeded)
	var capErr *repo.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "rental ledger", capErr.Store)
	assert.Equal(t, 2, r.Count())
}

func TestCreateRental_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*repo.RentalRequest)
	}{
		{"missing renter", func(req *repo.RentalRequest) { req.RenterName = "" }},
		{"missing phone", func(req *repo.RentalRequest) { req.PhoneNumber = "" }},
		{"missing address", func(req *repo.RentalRequest) { req.Address = "" }},
		{"bad return date", func(req *repo.RentalRequest) { req.ReturnDate = "20/03/2025" }},
		{"negative amount", func(req *repo.RentalRequest) { req.AmountPaid = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := repo.NewInMemoryRentalRepository(10, frozenClock)
			req := rentalRequest(1)
			tt.modify(&req)

			_, err := r.Create(req, drillLookup)
			assert.ErrorIs(t, err, repo.ErrInvalidRental)
			assert.Equal(t, 0, r.Count())
		})
	}
}

func TestCreateRental_IDsStrictlyIncreaseUnderFrozenClock(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(0, frozenClock)

	var last int64
	for i := 0; i < 50; i++ {
		rental, err := r.Create(rentalRequest(1), drillLookup)
		require.NoError(t, err)
		assert.Greater(t, rental.RentalID, last)
		last = rental.RentalID
	}
}

func TestMarkReturned(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)
	created, _ := r.Create(rentalRequest(1), drillLookup)

	returned, changed, err := r.MarkReturned(created.RentalID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.RentalReturned, returned.Status)
	assert.Equal(t, "2025-03-14", returned.ReturnedDate)

	again, changed, err := r.MarkReturned(created.RentalID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, returned, again)

	got, _ := r.GetByID(created.RentalID)
	assert.Equal(t, models.RentalReturned, got.Status)
}

func TestMarkReturned_NotFound(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)
	_, _, err := r.MarkReturned(12345)
	assert.ErrorIs(t, err, repo.ErrRentalNotFound)
}

func TestRestoreRental(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)
	stored := models.Rental{
		RentalID:    fixedNow.UnixMicro() + 1000,
		ProductID:   1,
		ProductName: "Drill",
		RenterName:  "Asha",
		RentDate:    "2025-03-10",
		ReturnDate:  "2025-03-12",
		AmountPaid:  decimal.NewFromInt(5),
		Status:      models.RentalReturned,
	}
	require.NoError(t, r.Restore(stored))

	assert.ErrorIs(t, r.Restore(stored), repo.ErrDuplicateID)

	bad := stored
	bad.RentalID++
	bad.Status = "lost"
	assert.ErrorIs(t, r.Restore(bad), repo.ErrInvalidRental)

	created, err := r.Create(rentalRequest(1), drillLookup)
	require.NoError(t, err)
	assert.Greater(t, created.RentalID, stored.RentalID)

	all, _ := r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, stored.RentalID, all[0].RentalID)
}

func TestIDGenerator(t *testing.T) {
	t.Run("follows the clock when it moves", func(t *testing.T) {
		now := fixedNow
		g := repo.NewIDGenerator(func() time.Time { return now })
		first := g.Next()
		now = now.Add(time.Second)
		assert.Equal(t, first+int64(time.Second/time.Microsecond), g.Next())
	})

	t.Run("never goes backwards", func(t *testing.T) {
		now := fixedNow
		g := repo.NewIDGenerator(func() time.Time { return now })
		first := g.Next()
		now = now.Add(-time.Hour)
		assert.Equal(t, first+1, g.Next())
	})

	t.Run("observe raises the floor", func(t *testing.T) {
		g := repo.NewIDGenerator(frozenClock)
		floor := fixedNow.UnixMicro() + 500
		g.Observe(floor)
		assert.Equal(t, floor+1, g.Next())
		g.Observe(1)
		assert.Equal(t, floor+2, g.Next())
	})
}

func TestCreateRental_AmountKeptToCents(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)
	req := rentalRequest(1)
	req.AmountPaid = decimal.RequireFromString("9.999")

	rental, err := r.Create(req, drillLookup)
	require.NoError(t, err)
	assert.True(t, rental.AmountPaid.Equal(decimal.NewFromInt(10)), rental.AmountPaid.String())
}

func TestCreateRental_RecordsStockReservation(t *testing.T) {
	r := repo.NewInMemoryRentalRepository(10, frozenClock)
	req := rentalRequest(1)
	req.ReserveStock = true

	rental, err := r.Create(req, drillLookup)
	require.NoError(t, err)
	assert.True(t, rental.StockReserved)

	plain, err := r.Create(rentalRequest(1), drillLookup)
	require.NoError(t, err)
	assert.False(t, plain.StockReserved)
}
