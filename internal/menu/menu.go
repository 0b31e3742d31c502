package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rogerio-castellano/rental-tracker/internal/inventory"
	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/rogerio-castellano/rental-tracker/internal/repo"
)

const banner = `
=== PRODUCT INVENTORY SYSTEM ===
1. Add Product
2. Display All Products
3. Search Product by ID
4. Sort Products by ID
5. Sort Products by Name
6. Sort Products by Price
7. Update Product
8. Delete Product
9. Sell Product
10. Record Rental
11. View All Rentals
12. Mark Rental as Returned
13. Save & Exit
Enter your choice: `

// Menu is the numbered command prompt in front of the inventory service.
type Menu struct {
	svc      *inventory.Service
	in       *tokens
	out      io.Writer
	currency string
}

func New(svc *inventory.Service, in io.Reader, out io.Writer, currency string) *Menu {
	return &Menu{svc: svc, in: newTokens(in), out: out, currency: currency}
}

// Run shows the menu until the user picks Save & Exit, the input ends or the
// input fails. Every path saves; read and save errors are returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printf("%s", banner)
		choice, err := m.in.nextInt()
		switch {
		case errors.Is(err, io.EOF):
			return m.saveAndExit(ctx)
		case errors.Is(err, errInvalidInput):
			m.println("Invalid choice.")
			continue
		case err != nil:
			return m.abort(ctx, err)
		}

		if choice == 13 {
			return m.saveAndExit(ctx)
		}

		action, ok := m.actions()[choice]
		if !ok {
			m.println("Invalid choice.")
			continue
		}

		err = action()
		switch {
		case errors.Is(err, io.EOF):
			return m.saveAndExit(ctx)
		case errors.Is(err, errInvalidInput):
			m.println("Invalid input.")
		case err != nil:
			return m.abort(ctx, err)
		}
	}
}

// abort ends the session after input can no longer be read. State is still
// saved; the read error is returned along with any save error.
func (m *Menu) abort(ctx context.Context, readErr error) error {
	m.printf("Could not read input: %v\n", readErr)
	return errors.Join(fmt.Errorf("reading input: %w", readErr), m.saveAndExit(ctx))
}

func (m *Menu) actions() map[int]func() error {
	return map[int]func() error{
		1:  m.addProduct,
		2:  m.displayProducts,
		3:  m.searchProduct,
		4:  func() error { return m.sortProducts(repo.SortByID, "ID") },
		5:  func() error { return m.sortProducts(repo.SortByName, "Name") },
		6:  func() error { return m.sortProducts(repo.SortByPrice, "Price") },
		7:  m.updateProduct,
		8:  m.deleteProduct,
		9:  m.sellProduct,
		10: m.recordRental,
		11: m.viewRentals,
		12: m.returnRental,
	}
}

func (m *Menu) saveAndExit(ctx context.Context) error {
	if err := m.svc.Save(ctx); err != nil {
		m.printf("Could not save data: %v\n", err)
		return err
	}
	m.println("Data saved. Exiting...")
	return nil
}

func (m *Menu) addProduct() error {
	m.printf("\nEnter Product ID: ")
	id, err := m.in.nextInt()
	if err != nil {
		return err
	}
	if _, err := m.svc.FindProduct(id); err == nil {
		m.println(message(repo.ErrDuplicateID))
		return nil
	}

	p := models.Product{ID: id}
	m.printf("Enter Product Name: ")
	if p.Name, err = m.in.next(); err != nil {
		return err
	}
	m.printf("Enter Price: ")
	if p.Price, err = m.in.nextDecimal(); err != nil {
		return err
	}
	m.printf("Enter Quantity: ")
	if p.Quantity, err = m.in.nextInt(); err != nil {
		return err
	}

	if _, err := m.svc.AddProduct(p); err != nil {
		m.println(message(err))
		return nil
	}
	m.println("Product added successfully.")
	return nil
}

func (m *Menu) displayProducts() error {
	products := m.svc.Products()
	if len(products) == 0 {
		m.println("\nNo products in inventory.")
		return nil
	}

	m.println("\n===== ALL PRODUCTS =====")
	m.printf("%-5s %-20s %-10s %-10s %-15s\n", "ID", "Name", "Price", "Qty", "Total Value")
	m.println("====================================================")
	for _, p := range products {
		m.printf("%-5d %-20s %-10s %-10d %-15s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Quantity, p.Value().StringFixed(2))
	}
	return nil
}

func (m *Menu) searchProduct() error {
	m.printf("\nEnter product ID to search: ")
	id, err := m.in.nextInt()
	if err != nil {
		return err
	}
	p, err := m.svc.FindProduct(id)
	if err != nil {
		m.println(message(err))
		return nil
	}
	m.println("\nProduct Found:")
	m.printf("ID: %d | Name: %s | Price: %s | Qty: %d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Quantity)
	return nil
}

func (m *Menu) sortProducts(key repo.SortKey, label string) error {
	if err := m.svc.SortProducts(key); err != nil {
		m.println(message(err))
		return nil
	}
	m.printf("Sorted by %s.\n", label)
	return nil
}

func (m *Menu) updateProduct() error {
	m.printf("\nEnter product ID to update: ")
	id, err := m.in.nextInt()
	if err != nil {
		return err
	}
	if _, err := m.svc.FindProduct(id); err != nil {
		m.println(message(err))
		return nil
	}

	p := models.Product{ID: id}
	m.printf("Enter new name: ")
	if p.Name, err = m.in.next(); err != nil {
		return err
	}
	m.printf("Enter new price: ")
	if p.Price, err = m.in.nextDecimal(); err != nil {
		return err
	}
	m.printf("Enter new quantity: ")
	if p.Quantity, err = m.in.nextInt(); err != nil {
		return err
	}

	if _, err := m.svc.UpdateProduct(p); err != nil {
		m.println(message(err))
		return nil
	}
	m.println("Product updated.")
	return nil
}

func (m *Menu) deleteProduct() error {
	m.printf("\nEnter product ID to delete: ")
	id, err := m.in.nextInt()
	if err != nil {
		return err
	}
	if err := m.svc.DeleteProduct(id); err != nil {
		m.println(message(err))
		return nil
	}
	m.println("Product deleted.")
	return nil
}

func (m *Menu) sellProduct() error {
	m.printf("\nEnter product ID to sell: ")
	id, err := m.in.nextInt()
	if err != nil {
		return err
	}
	m.printf("Enter quantity to sell: ")
	qty, err := m.in.nextInt()
	if err != nil {
		return err
	}

	p, _, err := m.svc.SellProduct(id, qty)
	if err != nil {
		m.println(message(err))
		return nil
	}
	m.printf(" Sold %d unit(s) of %s\n", qty, p.Name)
	m.printf("Remaining quantity: %d\n", p.Quantity)
	return nil
}

func (m *Menu) recordRental() error {
	m.printf("\nEnter product ID to rent: ")
	id, err := m.in.nextInt()
	if err != nil {
		return err
	}
	if _, err := m.svc.FindProduct(id); err != nil {
		m.println(message(err))
		return nil
	}

	req := repo.RentalRequest{ProductID: id}
	m.printf("Enter renter name: ")
	if req.RenterName, err = m.in.next(); err != nil {
		return err
	}
	m.printf("Enter phone number: ")
	if req.PhoneNumber, err = m.in.next(); err != nil {
		return err
	}
	m.printf("Enter address: ")
	if req.Address, err = m.in.next(); err != nil {
		return err
	}
	m.printf("Enter return date (YYYY-MM-DD): ")
	if req.ReturnDate, err = m.in.next(); err != nil {
		return err
	}
	m.printf("Enter amount paid: ")
	if req.AmountPaid, err = m.in.nextDecimal(); err != nil {
		return err
	}

	rental, err := m.svc.RecordRental(req)
	if err != nil {
		m.println(message(err))
		return nil
	}
	m.println("Rental recorded!")
	m.printf("Rental ID: %d\n", rental.RentalID)
	return nil
}

func (m *Menu) viewRentals() error {
	rentals := m.svc.Rentals()
	if len(rentals) == 0 {
		m.println("\nNo rental records.")
		return nil
	}

	m.println("\n===== RENTAL RECORDS =====")
	for i, r := range rentals {
		m.printf("\n--- Rental #%d ---\n", i+1)
		m.printf("Rental ID: %d\n", r.RentalID)
		m.printf("Product: %s (ID: %d)\n", r.ProductName, r.ProductID)
		m.printf("Renter: %s\n", r.RenterName)
		m.printf("Phone: %s\n", r.PhoneNumber)
		m.printf("Address: %s\n", r.Address)
		m.printf("Rent Date: %s\n", r.RentDate)
		m.printf("Return Date: %s\n", r.ReturnDate)
		m.printf("Amount: %s%s\n", m.currency, r.AmountPaid.StringFixed(2))
		m.printf("Status: %s\n", r.Status)
		if r.ReturnedDate != "" {
			m.printf("Returned On: %s\n", r.ReturnedDate)
		}
	}
	return nil
}

func (m *Menu) returnRental() error {
	m.printf("\nEnter rental ID to mark as returned: ")
	id, err := m.in.nextInt64()
	if err != nil {
		return err
	}

	rental, changed, err := m.svc.ReturnRental(id)
	if err != nil {
		m.println(message(err))
		return nil
	}
	if !changed {
		m.printf("Rental is already marked as %s\n", rental.Status)
		return nil
	}
	m.println("Rental marked as returned.")
	return nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
