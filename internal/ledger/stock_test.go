package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func colaInput() NewItemInput {
	return NewItemInput{
		Categorie:     "Boissons",
		SousCategorie: "Soda",
		Produit:       "Cola",
		PrixUnitaire:  decimal.NewFromInt(500),
		Quantite:      decimal.NewFromInt(10),
	}
}

func TestAddCreatesRowWithInitialQuantity(t *testing.T) {
	l := NewStockLedger(nil)

	item, _, created, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, l.Len())
	assert.True(t, item.Quantite.Equal(decimal.NewFromInt(10)))
	assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, testNow, item.Date)
}

func TestAddMatchingRowIncrementsQuantity(t *testing.T) {
	l := NewStockLedger(nil)
	_, _, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)

	in := colaInput()
	in.Quantite = decimal.NewFromInt(5)
	item, _, created, err := l.AddOrIncrement(in, testNow)
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, 1, l.Len())
	assert.True(t, item.Quantite.Equal(decimal.NewFromInt(15)))
	// The snapshot is untouched by an increment.
	assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(10)))
}

func TestAddDifferentPriceCreatesSecondRow(t *testing.T) {
	l := NewStockLedger(nil)
	_, _, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)

	in := colaInput()
	in.PrixUnitaire = decimal.NewFromInt(600)
	_, _, created, err := l.AddOrIncrement(in, testNow)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, 2, l.Len())
}

func TestAddReturnsPositionalIndex(t *testing.T) {
	l := NewStockLedger(nil)
	_, index, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	// Same product at another price sits on its own row.
	in := colaInput()
	in.PrixUnitaire = decimal.NewFromInt(600)
	_, index, _, err = l.AddOrIncrement(in, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	// Incrementing the second-price row must address that row, not the
	// first row sharing categorie+produit.
	in.Quantite = decimal.NewFromInt(5)
	item, index, created, err := l.AddOrIncrement(in, testNow)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, index)
	assert.True(t, item.Quantite.Equal(decimal.NewFromInt(15)))
}

func TestAddValidation(t *testing.T) {
	l := NewStockLedger(nil)

	missing := colaInput()
	missing.Produit = "  "
	_, _, _, err := l.AddOrIncrement(missing, testNow)
	assert.ErrorIs(t, err, ErrMissingField)

	negative := colaInput()
	negative.PrixUnitaire = decimal.NewFromInt(-1)
	_, _, _, err = l.AddOrIncrement(negative, testNow)
	assert.ErrorIs(t, err, ErrNegativeValue)

	assert.Equal(t, 0, l.Len())
}

func TestReplaceResetsInitialQuantity(t *testing.T) {
	l := NewStockLedger(nil)
	_, _, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)
	require.NoError(t, l.DecrementQuantite(0, decimal.NewFromInt(4)))

	in := colaInput()
	in.Quantite = decimal.NewFromInt(20)
	item, err := l.Replace(0, in, testNow.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.True(t, item.Quantite.Equal(decimal.NewFromInt(20)))
	assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(20)))
}

func TestReplaceBadIndex(t *testing.T) {
	l := NewStockLedger(nil)
	_, err := l.Replace(0, colaInput(), testNow)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveCompactsIndices(t *testing.T) {
	l := NewStockLedger(nil)
	for _, produit := range []string{"Cola", "Fanta", "Sprite"} {
		in := colaInput()
		in.Produit = produit
		_, _, _, err := l.AddOrIncrement(in, testNow)
		require.NoError(t, err)
	}

	removed, err := l.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "Fanta", removed.Produit)

	// Sprite shifted down into index 1.
	item, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Sprite", item.Produit)
	assert.Equal(t, 2, l.Len())
}

func TestDecrementInsufficientStock(t *testing.T) {
	l := NewStockLedger(nil)
	_, _, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)

	err = l.DecrementQuantite(0, decimal.NewFromInt(11))
	var insufficient *InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(10)))

	// State unchanged on failure.
	item, _ := l.Get(0)
	assert.True(t, item.Quantite.Equal(decimal.NewFromInt(10)))
}

func TestDecrementKeepsInitialQuantity(t *testing.T) {
	l := NewStockLedger(nil)
	_, _, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)

	require.NoError(t, l.DecrementQuantite(0, decimal.NewFromInt(3)))
	item, _ := l.Get(0)
	assert.True(t, item.Quantite.Equal(decimal.NewFromInt(7)))
	assert.True(t, item.QuantiteInitiale.Equal(decimal.NewFromInt(10)))
}

func TestFindByKeySubcategoryOptional(t *testing.T) {
	l := NewStockLedger(nil)
	_, _, _, err := l.AddOrIncrement(colaInput(), testNow)
	require.NoError(t, err)

	// categorie + produit is enough.
	idx, ok := l.FindByKey("Boissons", "", "Cola")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// A non-empty sous-categorie must match.
	_, ok = l.FindByKey("Boissons", "Jus", "Cola")
	assert.False(t, ok)

	_, ok = l.FindByKey("Snacks", "", "Cola")
	assert.False(t, ok)
}

func TestUniqueValuesFirstSeenOrder(t *testing.T) {
	l := NewStockLedger(nil)
	add := func(categorie, sousCategorie, produit string) {
		_, _, _, err := l.AddOrIncrement(NewItemInput{
			Categorie:     categorie,
			SousCategorie: sousCategorie,
			Produit:       produit,
			PrixUnitaire:  decimal.NewFromInt(100),
			Quantite:      decimal.NewFromInt(1),
		}, testNow)
		require.NoError(t, err)
	}
	add("Boissons", "Soda", "Cola")
	add("Snacks", "Chips", "Nature")
	add("Boissons", "Jus", "Orange")
	add("Boissons", "Soda", "Fanta")

	assert.Equal(t, []string{"Boissons", "Snacks"}, l.Categories())
	assert.Equal(t, []string{"Soda", "Jus"}, l.SousCategories("Boissons"))
	assert.Equal(t, []string{"Cola", "Fanta"}, l.Produits("Boissons", "Soda"))
	assert.Equal(t, []string{"Cola", "Orange", "Fanta"}, l.Produits("Boissons", ""))
}
