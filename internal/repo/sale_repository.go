package repo

import "github.com/rogerio-castellano/rental-tracker/internal/models"

type SaleRepository interface {
	Log(product models.Product, qty int) models.Sale
	GetAll() ([]models.Sale, error)
}
