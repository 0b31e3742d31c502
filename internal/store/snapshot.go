package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
)

// Snapshot is the full dump of the catalog and the rental ledger.
type Snapshot struct {
	Products []models.Product `json:"products"`
	Rentals  []models.Rental  `json:"rentals"`
}

// WriteSnapshot writes snap as a JSON document with one record per line.
// Amounts are written with two decimals. Optional rental keys are written
// only when set.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "{\n  \"products\": [\n")
	for i, p := range snap.Products {
		fmt.Fprintf(bw, "    {\"id\": %d, \"name\": %s, \"price\": %s, \"quantity\": %d}%s\n",
			p.ID, quote(p.Name), p.Price.StringFixed(2), p.Quantity, separator(i, len(snap.Products)))
	}

	fmt.Fprint(bw, "  ],\n  \"rentals\": [\n")
	for i, r := range snap.Rentals {
		fmt.Fprintf(bw, "    {\"rentalId\": %d, \"productId\": %d, \"productName\": %s, \"renterName\": %s, \"rentDate\": %s, \"returnDate\": %s, \"phoneNumber\": %s, \"address\": %s, \"amountPaid\": %s, \"status\": %s",
			r.RentalID, r.ProductID, quote(r.ProductName), quote(r.RenterName), quote(r.RentDate), quote(r.ReturnDate),
			quote(r.PhoneNumber), quote(r.Address), r.AmountPaid.StringFixed(2), quote(string(r.Status)))
		if r.ReturnedDate != "" {
			fmt.Fprintf(bw, ", \"returnedDate\": %s", quote(r.ReturnedDate))
		}
		if r.StockReserved {
			fmt.Fprint(bw, ", \"stockReserved\": true")
		}
		fmt.Fprintf(bw, "}%s\n", separator(i, len(snap.Rentals)))
	}

	fmt.Fprint(bw, "  ]\n}\n")
	return bw.Flush()
}

// ReadSnapshot parses a snapshot document. A bare JSON array is read as a
// products-only document with no rentals.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Snapshot{Products: []models.Product{}, Rentals: []models.Rental{}}, nil
	}

	var snap Snapshot
	if data[0] == '[' {
		err = json.Unmarshal(data, &snap.Products)
	} else {
		err = json.Unmarshal(data, &snap)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("invalid snapshot: %w", err)
	}
	if snap.Products == nil {
		snap.Products = []models.Product{}
	}
	if snap.Rentals == nil {
		snap.Rentals = []models.Rental{}
	}
	return snap, nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func separator(i, n int) string {
	if i == n-1 {
		return ""
	}
	return ","
}
