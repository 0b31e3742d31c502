package menu

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/rental-tracker/internal/repo"
)

// message turns a service error into the line shown to the user.
func message(err error) string {
	var stock *repo.StockError
	var capacity *repo.CapacityError
	var invalid *repo.ValidationError

	switch {
	case errors.As(err, &stock):
		return fmt.Sprintf("Insufficient quantity. Available: %d", stock.Available)
	case errors.As(err, &capacity):
		if capacity.Store == "catalog" {
			return "Inventory full!"
		}
		return "Rental records full!"
	case errors.As(err, &invalid):
		return "Invalid data: " + invalid.Error()
	case errors.Is(err, repo.ErrDuplicateID):
		return "Product ID already exists!"
	case errors.Is(err, repo.ErrProductNotFound), errors.Is(err, repo.ErrUnknownProduct):
		return "Product not found."
	case errors.Is(err, repo.ErrRentalNotFound):
		return "Rental not found."
	case errors.Is(err, repo.ErrInvalidQuantity):
		return "Quantity to sell must be greater than zero."
	case errors.Is(err, repo.ErrOutOfStock):
		return "Product not available for rent."
	default:
		return "Error: " + err.Error()
	}
}
