package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/rogerio-castellano/rental-tracker/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMirror struct {
	name   string
	err    error
	pushed []store.Snapshot
}

func (m *recordingMirror) Name() string { return m.name }

func (m *recordingMirror) Push(_ context.Context, snap store.Snapshot) error {
	m.pushed = append(m.pushed, snap)
	return m.err
}

func newGateway(t *testing.T, mirrors ...store.Mirror) (*store.Gateway, string, string) {
	t.Helper()
	dir := t.TempDir()
	productsPath := filepath.Join(dir, "inventory.txt")
	snapshotPath := filepath.Join(dir, "inventory.json")
	return store.NewGateway(productsPath, snapshotPath, zerolog.Nop(), mirrors...), productsPath, snapshotPath
}

func TestGatewaySaveAndLoad(t *testing.T) {
	g, productsPath, snapshotPath := newGateway(t)
	products := []models.Product{product(1, "Drill", "49.99", 7), product(2, "Saw", "19.50", 0)}
	rentals := sampleRentals()

	require.NoError(t, g.Save(context.Background(), products, rentals))

	text, err := os.ReadFile(productsPath)
	require.NoError(t, err)
	assert.Equal(t, "1 Drill 49.99 7\n2 Saw 19.50 0\n", string(text))
	assert.FileExists(t, snapshotPath)

	loaded, err := g.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 7, loaded[0].Quantity)

	restored, err := g.LoadRentals()
	require.NoError(t, err)
	require.Len(t, restored, 2)
	assert.Equal(t, rentals[0].RentalID, restored[0].RentalID)
}

func TestGatewayLoad_MissingFiles(t *testing.T) {
	g, _, _ := newGateway(t)

	products, err := g.Load()
	require.NoError(t, err)
	assert.Empty(t, products)

	rentals, err := g.LoadRentals()
	require.NoError(t, err)
	assert.Empty(t, rentals)
}

func TestGatewayLoad_KeepsProductsBeforeMalformedLine(t *testing.T) {
	g, productsPath, _ := newGateway(t)
	require.NoError(t, os.WriteFile(productsPath, []byte("1 Drill 49.99 7\noops\n2 Saw 19.50 0\n"), 0o644))

	products, err := g.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Drill", products[0].Name)
}

func TestGatewayLoadRentals_CorruptSnapshot(t *testing.T) {
	g, _, snapshotPath := newGateway(t)
	require.NoError(t, os.WriteFile(snapshotPath, []byte("{not json"), 0o644))

	_, err := g.LoadRentals()
	assert.ErrorIs(t, err, store.ErrPersistenceRead)
}

func TestGatewaySave_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be opened for writing
	g := store.NewGateway(dir, filepath.Join(dir, "inventory.json"), zerolog.Nop())

	err := g.Save(context.Background(), []models.Product{product(1, "Drill", "1", 1)}, nil)
	require.ErrorIs(t, err, store.ErrPersistenceWrite)

	var perr *store.PersistError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, dir, perr.Path)
	assert.NoFileExists(t, filepath.Join(dir, "inventory.json"))
}

func TestGatewaySave_SnapshotWriteFailure(t *testing.T) {
	dir := t.TempDir()
	productsPath := filepath.Join(dir, "inventory.txt")
	g := store.NewGateway(productsPath, filepath.Join(dir, "missing", "inventory.json"), zerolog.Nop())

	err := g.Save(context.Background(), []models.Product{product(1, "Drill", "1", 1)}, nil)
	assert.ErrorIs(t, err, store.ErrPersistenceWrite)
	assert.FileExists(t, productsPath)
}

func TestGatewaySave_Mirrors(t *testing.T) {
	ok := &recordingMirror{name: "ok"}
	broken := &recordingMirror{name: "broken", err: errors.New("connection refused")}
	g, productsPath, _ := newGateway(t, ok, broken)

	products := []models.Product{product(1, "Drill", "49.99", 7)}
	err := g.Save(context.Background(), products, sampleRentals())

	require.ErrorIs(t, err, store.ErrMirrorWrite)
	assert.NotErrorIs(t, err, store.ErrPersistenceWrite)
	assert.Contains(t, err.Error(), "broken")
	assert.FileExists(t, productsPath)

	require.Len(t, ok.pushed, 1)
	assert.Len(t, ok.pushed[0].Products, 1)
	assert.Len(t, ok.pushed[0].Rentals, 2)
	assert.Len(t, broken.pushed, 1)
}

func TestGatewaySave_MirrorsSkippedOnWriteFailure(t *testing.T) {
	m := &recordingMirror{name: "ok"}
	dir := t.TempDir()
	g := store.NewGateway(dir, filepath.Join(dir, "inventory.json"), zerolog.Nop(), m)

	err := g.Save(context.Background(), nil, nil)
	assert.ErrorIs(t, err, store.ErrPersistenceWrite)
	assert.Empty(t, m.pushed)
}

func TestGatewayLoad_OverlongLineKeepsEarlierProducts(t *testing.T) {
	g, productsPath, _ := newGateway(t)
	content := "1 Drill 49.99 7\n" + strings.Repeat("x", 70<<10) + "\n"
	require.NoError(t, os.WriteFile(productsPath, []byte(content), 0o644))

	products, err := g.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].Quantity)
}
