package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
)

func saleOn(day int, categorie, produit string, quantite, total int64) model.Sale {
	return model.Sale{
		Categorie:      categorie,
		SousCategorie:  "Soda",
		Produit:        produit,
		PrixUnitaire:   decimal.NewFromInt(total / quantite),
		QuantiteVendue: decimal.NewFromInt(quantite),
		Date:           time.Date(2025, time.March, day, 12, 30, 0, 0, time.UTC),
		Total:          decimal.NewFromInt(total),
	}
}

func TestSalesRemoveCompacts(t *testing.T) {
	l := NewSalesLedger(nil)
	l.Append(saleOn(1, "Boissons", "Cola", 2, 1000))
	l.Append(saleOn(2, "Boissons", "Fanta", 1, 600))
	l.Append(saleOn(3, "Snacks", "Chips", 4, 2000))

	removed, err := l.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "Cola", removed.Produit)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "Fanta", l.List()[0].Produit)

	_, err = l.Remove(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFilterInclusiveBounds(t *testing.T) {
	l := NewSalesLedger(nil)
	l.Append(saleOn(1, "Boissons", "Cola", 2, 1000))
	l.Append(saleOn(5, "Boissons", "Cola", 1, 500))
	l.Append(saleOn(10, "Boissons", "Cola", 3, 1500))

	got := l.Filter(SaleFilter{
		From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	require.Len(t, got, 2)

	// Bounds compare at day granularity: a sale recorded at 12:30 on the
	// "To" day is still included.
	got = l.Filter(SaleFilter{To: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)})
	assert.Len(t, got, 3)
}

func TestFilterByFields(t *testing.T) {
	l := NewSalesLedger(nil)
	l.Append(saleOn(1, "Boissons", "Cola", 2, 1000))
	l.Append(saleOn(1, "Snacks", "Chips", 1, 500))

	assert.Len(t, l.Filter(SaleFilter{Categorie: "Boissons"}), 1)
	assert.Len(t, l.Filter(SaleFilter{Produit: "Chips"}), 1)
	assert.Len(t, l.Filter(SaleFilter{}), 2)
	assert.Empty(t, l.Filter(SaleFilter{Categorie: "Divers"}))
}

func TestAggregateByKey(t *testing.T) {
	l := NewSalesLedger(nil)
	l.Append(saleOn(1, "Boissons", "Cola", 2, 1000))
	l.Append(saleOn(2, "Boissons", "Cola", 3, 1500))
	l.Append(saleOn(2, "Boissons", "Fanta", 1, 600))

	agg := l.AggregateByKey(SaleFilter{}, false)
	require.Len(t, agg, 2)

	cola := agg[SaleKey{Categorie: "Boissons", SousCategorie: "Soda", Produit: "Cola"}]
	assert.True(t, cola.QuantiteVendue.Equal(decimal.NewFromInt(5)))
	assert.True(t, cola.Total.Equal(decimal.NewFromInt(2500)))
}

func TestAggregateByKeyWithDate(t *testing.T) {
	l := NewSalesLedger(nil)
	l.Append(saleOn(1, "Boissons", "Cola", 2, 1000))
	l.Append(saleOn(2, "Boissons", "Cola", 3, 1500))

	agg := l.AggregateByKey(SaleFilter{}, true)
	// Same product on two days stays in two groups.
	assert.Len(t, agg, 2)
}

func TestQuantiteVendueFor(t *testing.T) {
	l := NewSalesLedger(nil)
	l.Append(saleOn(1, "Boissons", "Cola", 2, 1000))
	l.Append(saleOn(2, "Boissons", "Cola", 3, 1500))
	l.Append(saleOn(2, "Boissons", "Fanta", 1, 600))

	assert.True(t, l.QuantiteVendueFor("Boissons", "Cola").Equal(decimal.NewFromInt(5)))
	assert.True(t, l.QuantiteVendueFor("Boissons", "Inconnu").IsZero())
}
