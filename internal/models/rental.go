package models

import "github.com/shopspring/decimal"

type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
)

// DateLayout is the calendar date format used for rent and return dates.
const DateLayout = "2006-01-02"

// Rental is a rental transaction. ProductName is copied when the rental is
// recorded and is not kept in sync with the catalog afterwards. StockReserved
// is set when recording the rental took one unit out of stock.
type Rental struct {
	RentalID      int64           `json:"rentalId"`
	ProductID     int             `json:"productId"`
	ProductName   string          `json:"productName"`
	RenterName    string          `json:"renterName"`
	RentDate      string          `json:"rentDate"`
	ReturnDate    string          `json:"returnDate"`
	PhoneNumber   string          `json:"phoneNumber"`
	Address       string          `json:"address"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Status        RentalStatus    `json:"status"`
	ReturnedDate  string          `json:"returnedDate,omitempty"`
	StockReserved bool            `json:"stockReserved,omitempty"`
}
