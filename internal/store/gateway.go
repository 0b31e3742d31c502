package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/rs/zerolog"
)

// Gateway moves catalog and ledger state between memory and disk. Products
// go to a line oriented text file and the full state to a JSON snapshot.
type Gateway struct {
	productsPath string
	snapshotPath string
	mirrors      []Mirror
	logger       zerolog.Logger
}

func NewGateway(productsPath, snapshotPath string, logger zerolog.Logger, mirrors ...Mirror) *Gateway {
	return &Gateway{
		productsPath: productsPath,
		snapshotPath: snapshotPath,
		mirrors:      mirrors,
		logger:       logger.With().Str("component", "store").Logger(),
	}
}

// SaveProducts replaces the text product store with products.
func (g *Gateway) SaveProducts(products []models.Product) error {
	return writeFile(g.productsPath, func(w io.Writer) error {
		return WriteProducts(w, products)
	})
}

// LoadProducts reads the text product store. A missing store is not an
// error and yields no products. Parsing stops at the first malformed line.
func (g *Gateway) LoadProducts() ([]models.Product, error) {
	f, err := os.Open(g.productsPath)
	if errors.Is(err, fs.ErrNotExist) {
		g.logger.Info().Str("path", g.productsPath).Msg("no product store found, starting empty")
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, readError(g.productsPath, err)
	}
	defer f.Close()

	products, err := ReadProducts(f)
	var lineErr *LineError
	if errors.As(err, &lineErr) {
		g.logger.Warn().
			Str("path", g.productsPath).
			Int("line", lineErr.Line).
			Err(lineErr.Err).
			Int("loaded", len(products)).
			Msg("stopped reading product store at malformed line")
		return products, nil
	}
	if err != nil {
		return nil, readError(g.productsPath, err)
	}
	return products, nil
}

// SaveSnapshot replaces the JSON snapshot with the given state.
func (g *Gateway) SaveSnapshot(products []models.Product, rentals []models.Rental) error {
	return writeFile(g.snapshotPath, func(w io.Writer) error {
		return WriteSnapshot(w, Snapshot{Products: products, Rentals: rentals})
	})
}

// Save writes the product store and then the snapshot, stopping at the first
// failure. Once both files are written the snapshot is pushed to every
// mirror; mirror failures are joined into the returned error.
func (g *Gateway) Save(ctx context.Context, products []models.Product, rentals []models.Rental) error {
	if err := g.SaveProducts(products); err != nil {
		return err
	}
	if err := g.SaveSnapshot(products, rentals); err != nil {
		return err
	}
	g.logger.Info().
		Str("products_file", g.productsPath).
		Str("snapshot_file", g.snapshotPath).
		Int("products", len(products)).
		Int("rentals", len(rentals)).
		Msg("state saved")

	snap := Snapshot{Products: products, Rentals: rentals}
	var errs []error
	for _, m := range g.mirrors {
		if err := m.Push(ctx, snap); err != nil {
			g.logger.Error().Err(err).Str("mirror", m.Name()).Msg("snapshot mirror push failed")
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrMirrorWrite, m.Name(), err))
			continue
		}
		g.logger.Debug().Str("mirror", m.Name()).Msg("snapshot mirrored")
	}
	return errors.Join(errs...)
}

// Load returns the products of the text store. Rentals are not part of it.
func (g *Gateway) Load() ([]models.Product, error) {
	return g.LoadProducts()
}

// LoadRentals reads the rentals list back from the JSON snapshot. A missing
// snapshot yields no rentals.
func (g *Gateway) LoadRentals() ([]models.Rental, error) {
	f, err := os.Open(g.snapshotPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Rental{}, nil
	}
	if err != nil {
		return nil, readError(g.snapshotPath, err)
	}
	defer f.Close()

	snap, err := ReadSnapshot(f)
	if err != nil {
		return nil, readError(g.snapshotPath, err)
	}
	return snap.Rentals, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return writeError(path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return writeError(path, err)
	}
	if err := f.Close(); err != nil {
		return writeError(path, err)
	}
	return nil
}
