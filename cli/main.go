package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rogerio-castellano/rental-tracker/internal/config"
	"github.com/rogerio-castellano/rental-tracker/internal/db"
	"github.com/rogerio-castellano/rental-tracker/internal/inventory"
	"github.com/rogerio-castellano/rental-tracker/internal/logging"
	"github.com/rogerio-castellano/rental-tracker/internal/menu"
	"github.com/rogerio-castellano/rental-tracker/internal/redissvc"
	"github.com/rogerio-castellano/rental-tracker/internal/repo"
	"github.com/rogerio-castellano/rental-tracker/internal/store"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("inventory stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.App, logger zerolog.Logger) error {
	var mirrors []store.Mirror

	if cfg.Mirror.PostgresURL != "" {
		database, err := db.Connect(ctx, cfg.Mirror.PostgresURL)
		if err != nil {
			return err
		}
		defer database.Close()
		mirrors = append(mirrors, store.NewPostgresMirror(database))
	}

	if cfg.Mirror.RedisAddr != "" {
		rs, err := redissvc.Connect(ctx, cfg.Mirror.RedisAddr)
		if err != nil {
			return err
		}
		defer rs.Close()
		mirrors = append(mirrors, store.NewRedisMirror(rs, cfg.Mirror.RedisKey))
	}

	gateway := store.NewGateway(cfg.ProductsFile, cfg.SnapshotFile, logger, mirrors...)
	svc := inventory.NewService(
		repo.NewInMemoryProductRepository(cfg.CatalogLimit),
		repo.NewInMemoryRentalRepository(cfg.LedgerLimit, nil),
		repo.NewInMemorySaleRepository(nil),
		gateway,
		inventory.Options{RestoreRentals: cfg.RestoreRentals, ReserveStock: cfg.ReserveStock},
		logger,
	)

	if _, err := svc.Bootstrap(); err != nil {
		return fmt.Errorf("could not load inventory: %w", err)
	}

	err := menu.New(svc, os.Stdin, os.Stdout, cfg.CurrencySymbol).Run(ctx)

	if m, merr := svc.Metrics(); merr == nil {
		logger.Info().
			Int("products", m.TotalProducts).
			Int("units", m.TotalUnits).
			Str("inventory_value", m.InventoryValue.StringFixed(2)).
			Int("rentals_active", m.ActiveRentals).
			Int("rentals_returned", m.ReturnedRentals).
			Str("rental_revenue", m.RentalRevenue.StringFixed(2)).
			Int("sales", m.SalesCount).
			Str("sales_revenue", m.SalesRevenue.StringFixed(2)).
			Msg("session summary")
	}
	return err
}
