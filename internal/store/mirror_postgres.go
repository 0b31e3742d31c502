package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS inventory_products (
	position INTEGER NOT NULL,
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	price NUMERIC(12,2) NOT NULL,
	quantity INTEGER NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS inventory_rentals (
	rental_id BIGINT PRIMARY KEY,
	product_id INTEGER NOT NULL,
	product_name TEXT NOT NULL,
	renter_name TEXT NOT NULL,
	rent_date TEXT NOT NULL,
	return_date TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	address TEXT NOT NULL,
	amount_paid NUMERIC(12,2) NOT NULL,
	status TEXT NOT NULL,
	returned_date TEXT NOT NULL DEFAULT '',
	stock_reserved BOOLEAN NOT NULL DEFAULT FALSE
)`}

// PostgresMirror replaces the products and rentals tables with the snapshot
// contents in a single transaction.
type PostgresMirror struct {
	db *sql.DB
}

func NewPostgresMirror(db *sql.DB) *PostgresMirror {
	return &PostgresMirror{db: db}
}

func (m *PostgresMirror) Name() string { return "postgres" }

func (m *PostgresMirror) Push(ctx context.Context, snap Snapshot) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	for _, stmt := range postgresSchema {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM inventory_rentals`); err != nil {
		return fmt.Errorf("failed to clear rentals: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM inventory_products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	for i, p := range snap.Products {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO inventory_products (position, id, name, price, quantity) VALUES ($1, $2, $3, $4, $5)`,
			i, p.ID, p.Name, p.Price, p.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	for _, r := range snap.Rentals {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO inventory_rentals (rental_id, product_id, product_name, renter_name, rent_date, return_date, phone_number, address, amount_paid, status, returned_date, stock_reserved)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			r.RentalID, r.ProductID, r.ProductName, r.RenterName, r.RentDate, r.ReturnDate,
			r.PhoneNumber, r.Address, r.AmountPaid, string(r.Status), r.ReturnedDate, r.StockReserved)
		if err != nil {
			return fmt.Errorf("failed to insert rental %d: %w", r.RentalID, err)
		}
	}

	return tx.Commit()
}

// CountRows reports how many products and rentals the mirror holds.
func (m *PostgresMirror) CountRows(ctx context.Context) (products, rentals int, err error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err = m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_products`).Scan(&products); err != nil {
		return 0, 0, err
	}
	if err = m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_rentals`).Scan(&rentals); err != nil {
		return 0, 0, err
	}
	return products, rentals, nil
}
