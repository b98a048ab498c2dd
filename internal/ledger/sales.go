package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
)

// SalesLedger is the append-mostly list of recorded sales, in insertion
// order. Like the stock ledger it uses positional addressing and is
// serialized by the storage layer.
type SalesLedger struct {
	sales []model.Sale
}

func NewSalesLedger(sales []model.Sale) *SalesLedger {
	return &SalesLedger{sales: sales}
}

func (l *SalesLedger) Len() int { return len(l.sales) }

// List returns a copy of all sales in ledger order.
func (l *SalesLedger) List() []model.Sale {
	out := make([]model.Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// Append records a sale. Validation happened upstream in the coordinator.
func (l *SalesLedger) Append(s model.Sale) {
	l.sales = append(l.sales, s)
}

// Remove deletes the sale at index and compacts the ledger. It never touches
// the stock table — deleting a sale does not restore stock.
func (l *SalesLedger) Remove(index int) (model.Sale, error) {
	if index < 0 || index >= len(l.sales) {
		return model.Sale{}, ErrIndexOutOfRange
	}
	removed := l.sales[index]
	l.sales = append(l.sales[:index], l.sales[index+1:]...)
	return removed, nil
}

// SaleFilter selects sales. Empty string fields and zero times mean "no
// restriction"; the date bounds are inclusive on both ends.
type SaleFilter struct {
	Categorie     string
	SousCategorie string
	Produit       string
	From          time.Time
	To            time.Time
}

func (f SaleFilter) Matches(s model.Sale) bool {
	if f.Categorie != "" && s.Categorie != f.Categorie {
		return false
	}
	if f.SousCategorie != "" && s.SousCategorie != f.SousCategorie {
		return false
	}
	if f.Produit != "" && s.Produit != f.Produit {
		return false
	}
	day := model.DateOnly(s.Date)
	if !f.From.IsZero() && day.Before(model.DateOnly(f.From)) {
		return false
	}
	if !f.To.IsZero() && day.After(model.DateOnly(f.To)) {
		return false
	}
	return true
}

// Filter returns the sales matching f, preserving ledger order. Note the
// returned indices do NOT correspond to ledger positions once a filter is
// applied; positional deletes must be addressed against the unfiltered list.
func (l *SalesLedger) Filter(f SaleFilter) []model.Sale {
	var out []model.Sale
	for _, s := range l.sales {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// SaleKey identifies an aggregation group. Date is the zero time unless the
// aggregation groups by date.
type SaleKey struct {
	Categorie     string
	SousCategorie string
	Produit       string
	Date          time.Time
}

// SaleTotals accumulates quantity and amount for one group.
type SaleTotals struct {
	QuantiteVendue decimal.Decimal
	Total          decimal.Decimal
}

// AggregateByKey groups the sales matching f by (categorie, sous-categorie,
// produit) — plus the sale date when byDate is set — and sums quantity and
// total per group. This is the sales side of the stock⋈sales report join.
func (l *SalesLedger) AggregateByKey(f SaleFilter, byDate bool) map[SaleKey]SaleTotals {
	agg := make(map[SaleKey]SaleTotals)
	for _, s := range l.sales {
		if !f.Matches(s) {
			continue
		}
		key := SaleKey{Categorie: s.Categorie, SousCategorie: s.SousCategorie, Produit: s.Produit}
		if byDate {
			key.Date = model.DateOnly(s.Date)
		}
		t := agg[key]
		t.QuantiteVendue = t.QuantiteVendue.Add(s.QuantiteVendue)
		t.Total = t.Total.Add(s.Total)
		agg[key] = t
	}
	return agg
}

// QuantiteVendueFor sums the units sold for a (categorie, produit) pair.
// Used by the loader to backfill Quantite_initiale on legacy stock files.
func (l *SalesLedger) QuantiteVendueFor(categorie, produit string) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range l.sales {
		if s.Categorie == categorie && s.Produit == produit {
			sum = sum.Add(s.QuantiteVendue)
		}
	}
	return sum
}
