package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(dir, filepath.Join(dir, "stock.csv"), filepath.Join(dir, "ventes.csv"))
	require.NoError(t, err)
	return store
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpenMissingFilesStartsEmpty(t *testing.T) {
	store := openStore(t, t.TempDir())
	store.View(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) {
		assert.Equal(t, 0, stock.Len())
		assert.Equal(t, 0, ventes.Len())
	})
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	openStore(t, dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUpdateFlushesAndReloads(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, dir)

	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	err := store.Update(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) error {
		_, _, _, err := stock.AddOrIncrement(ledger.NewItemInput{
			Categorie:     "Boissons",
			SousCategorie: "Soda",
			Produit:       "Cola",
			PrixUnitaire:  decimal.RequireFromString("500.5"),
			Quantite:      decimal.NewFromInt(10),
		}, date)
		if err != nil {
			return err
		}
		ventes.Append(model.Sale{
			Categorie:      "Boissons",
			SousCategorie:  "Soda",
			Produit:        "Cola",
			PrixUnitaire:   decimal.RequireFromString("500.5"),
			QuantiteVendue: decimal.NewFromInt(2),
			Date:           date,
			Total:          decimal.NewFromInt(1001),
		})
		return nil
	})
	require.NoError(t, err)

	// A fresh store over the same files sees the same data.
	reloaded := openStore(t, dir)
	reloaded.View(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) {
		require.Equal(t, 1, stock.Len())
		item, err := stock.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "Cola", item.Produit)
		assert.Equal(t, "Soda", item.SousCategorie)
		assert.True(t, item.PrixUnitaire.Equal(decimal.RequireFromString("500.5")))
		assert.True(t, item.Quantite.Equal(decimal.NewFromInt(10)))
		assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(10)))
		assert.True(t, item.Date.Equal(date))

		require.Equal(t, 1, ventes.Len())
		sale := ventes.List()[0]
		assert.True(t, sale.Total.Equal(decimal.NewFromInt(1001)))
		assert.True(t, sale.Date.Equal(date))
	})
}

func TestLoadBackfillsQuantiteInitiale(t *testing.T) {
	dir := t.TempDir()
	// Legacy stock file without the Quantite_initiale column.
	writeFile(t, filepath.Join(dir, "stock.csv"),
		"Categorie,Sous-categorie,Produit,Prix unitaire,Quantite,Date\n"+
			"Boissons,Soda,Cola,500,7,10-06-2025\n")
	writeFile(t, filepath.Join(dir, "ventes.csv"),
		"Categorie,Sous-categorie,Produit,Prix unitaire,Quantite vendue,Date,Total\n"+
			"Boissons,Soda,Cola,500,3,10-06-2025,1500\n"+
			"Boissons,Soda,Cola,500,2,09-06-2025,1000\n")

	store := openStore(t, dir)
	store.View(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) {
		item, err := stock.Get(0)
		require.NoError(t, err)
		// 7 remaining + 5 historically sold.
		assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(12)))
	})
}

func TestLoadAcceptsSlashDates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ventes.csv"),
		"Categorie,Sous-categorie,Produit,Prix unitaire,Quantite vendue,Date,Total\n"+
			"Boissons,Soda,Cola,500,1,10/06/2025,500\n")

	store := openStore(t, dir)
	store.View(func(_ *ledger.StockLedger, ventes *ledger.SalesLedger) {
		require.Equal(t, 1, ventes.Len())
		assert.True(t, ventes.List()[0].Date.Equal(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)))
	})

	// Saving normalizes to the dash format.
	require.NoError(t, store.Update(func(_ *ledger.StockLedger, _ *ledger.SalesLedger) error {
		return nil
	}))
	raw, err := os.ReadFile(filepath.Join(dir, "ventes.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "10-06-2025")
	assert.NotContains(t, string(raw), "10/06/2025")
}

func TestLoadBlankAndGarbageNumericsBecomeZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stock.csv"),
		"Categorie,Sous-categorie,Produit,Prix unitaire,Quantite,Date,Quantite_initiale\n"+
			"Boissons,Soda,Cola,,abc,10-06-2025,10\n")

	store := openStore(t, dir)
	store.View(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) {
		item, err := stock.Get(0)
		require.NoError(t, err)
		assert.True(t, item.PrixUnitaire.IsZero())
		assert.True(t, item.Quantite.IsZero())
		assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(10)))
	})
}

func TestUpdateErrorSkipsFlush(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, dir)

	err := store.Update(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) error {
		_, err := stock.Remove(5)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrIndexOutOfRange)

	// Nothing was written.
	_, statErr := os.Stat(filepath.Join(dir, "stock.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFlushFailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, dir)

	// Point the stock file into a directory that does not exist so the
	// temp-file creation fails.
	store.stockPath = filepath.Join(dir, "absent", "stock.csv")

	err := store.Update(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) error {
		_, _, _, err := stock.AddOrIncrement(ledger.NewItemInput{
			Categorie:    "Boissons",
			Produit:      "Cola",
			PrixUnitaire: decimal.NewFromInt(500),
			Quantite:     decimal.NewFromInt(10),
		}, time.Now())
		return err
	})

	var fe *FlushError
	require.ErrorAs(t, err, &fe)
	store.View(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) {
		assert.Equal(t, 1, stock.Len())
	})
}
