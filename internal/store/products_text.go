package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// WriteProducts writes one "id name price quantity" line per product.
func WriteProducts(w io.Writer, products []models.Product) error {
	bw := bufio.NewWriter(w)
	for _, p := range products {
		if _, err := fmt.Fprintf(bw, "%d %s %s %d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Quantity); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LineError reports the first line ReadProducts could not parse.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadProducts parses the text product store. Reading stops at the first line
// that does not hold exactly four valid fields or is too long to scan; the
// products read before it are returned together with a *LineError. Blank
// lines are skipped.
func ReadProducts(r io.Reader) ([]models.Product, error) {
	products := []models.Product{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := parseProductLine(text)
		if err != nil {
			return products, &LineError{Line: lineNo, Text: text, Err: err}
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return products, &LineError{Line: lineNo + 1, Err: err}
		}
		return products, err
	}
	return products, nil
}

func parseProductLine(line string) (models.Product, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return models.Product{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid id: %w", err)
	}
	price, err := decimal.NewFromString(fields[2])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid price: %w", err)
	}
	qty, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid quantity: %w", err)
	}
	return models.Product{ID: id, Name: fields[1], Price: price, Quantity: qty}, nil
}
