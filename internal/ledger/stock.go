package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
)

// NewItemInput carries the fields of a stock add or replace. Validation is
// the ledger's: handlers only check shape, not business rules.
type NewItemInput struct {
	Categorie     string
	SousCategorie string
	Produit       string
	PrixUnitaire  decimal.Decimal
	Quantite      decimal.Decimal
}

func (in NewItemInput) validate() error {
	if strings.TrimSpace(in.Categorie) == "" || strings.TrimSpace(in.Produit) == "" {
		return ErrMissingField
	}
	if in.PrixUnitaire.IsNegative() || in.Quantite.IsNegative() {
		return ErrNegativeValue
	}
	return nil
}

// StockLedger is the authoritative collection of current inventory rows,
// kept in insertion order. It is not safe for concurrent use on its own;
// the storage layer serializes access.
type StockLedger struct {
	items []model.StockItem
}

func NewStockLedger(items []model.StockItem) *StockLedger {
	return &StockLedger{items: items}
}

func (l *StockLedger) Len() int { return len(l.items) }

// Items returns a copy of the rows so callers can't mutate ledger state.
func (l *StockLedger) Items() []model.StockItem {
	out := make([]model.StockItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *StockLedger) Get(index int) (model.StockItem, error) {
	if index < 0 || index >= len(l.items) {
		return model.StockItem{}, ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// AddOrIncrement inserts a new row, or — when a row with the exact same
// categorie, sous-categorie, produit and price already exists — adds the
// quantity onto that row instead. A new row snapshots QuantiteInitiale from
// the incoming quantity; an increment leaves the snapshot alone.
// Returns the resulting row, its positional index and whether a row was
// created. The index must come from here: a key lookup after the fact can
// land on a different row when several rows share categorie+produit.
func (l *StockLedger) AddOrIncrement(in NewItemInput, now time.Time) (model.StockItem, int, bool, error) {
	if err := in.validate(); err != nil {
		return model.StockItem{}, 0, false, err
	}

	for i := range l.items {
		if l.items[i].SameEntry(in.Categorie, in.SousCategorie, in.Produit, in.PrixUnitaire) {
			l.items[i].Quantite = l.items[i].Quantite.Add(in.Quantite)
			return l.items[i], i, false, nil
		}
	}

	item := model.StockItem{
		Categorie:        in.Categorie,
		SousCategorie:    in.SousCategorie,
		Produit:          in.Produit,
		PrixUnitaire:     in.PrixUnitaire,
		Quantite:         in.Quantite,
		Date:             now,
		QuantiteInitiale: in.Quantite,
	}
	l.items = append(l.items, item)
	return item, len(l.items) - 1, true, nil
}

// Replace fully overwrites the row at index, resetting QuantiteInitiale to
// the new quantity. This is the "edit existing product" flow.
func (l *StockLedger) Replace(index int, in NewItemInput, now time.Time) (model.StockItem, error) {
	if index < 0 || index >= len(l.items) {
		return model.StockItem{}, ErrIndexOutOfRange
	}
	if err := in.validate(); err != nil {
		return model.StockItem{}, err
	}
	item := model.StockItem{
		Categorie:        in.Categorie,
		SousCategorie:    in.SousCategorie,
		Produit:          in.Produit,
		PrixUnitaire:     in.PrixUnitaire,
		Quantite:         in.Quantite,
		Date:             now,
		QuantiteInitiale: in.Quantite,
	}
	l.items[index] = item
	return item, nil
}

// Remove deletes the row at index and compacts the table: every subsequent
// row shifts down by one.
func (l *StockLedger) Remove(index int) (model.StockItem, error) {
	if index < 0 || index >= len(l.items) {
		return model.StockItem{}, ErrIndexOutOfRange
	}
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return removed, nil
}

// DecrementQuantite subtracts amount from the row's current quantity.
// QuantiteInitiale is deliberately untouched.
func (l *StockLedger) DecrementQuantite(index int, amount decimal.Decimal) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	if amount.GreaterThan(l.items[index].Quantite) {
		return &InsufficientStockError{Available: l.items[index].Quantite, Requested: amount}
	}
	l.items[index].Quantite = l.items[index].Quantite.Sub(amount)
	return nil
}

// FindByKey locates the first row matching categorie and produit.
// SousCategorie narrows the search only when non-empty.
func (l *StockLedger) FindByKey(categorie, sousCategorie, produit string) (int, bool) {
	for i := range l.items {
		if l.items[i].SameProduct(categorie, sousCategorie, produit) {
			return i, true
		}
	}
	return 0, false
}

// ── Cascading choice lists ────────────────────────────────────────────────────
// Deduplicated, first-seen order — used to populate dependent dropdowns.

func (l *StockLedger) Categories() []string {
	return l.uniqueValues(
		func(s model.StockItem) string { return s.Categorie },
		func(model.StockItem) bool { return true },
	)
}

// SousCategories lists sous-categories, optionally restricted to one
// categorie (empty = all).
func (l *StockLedger) SousCategories(categorie string) []string {
	return l.uniqueValues(
		func(s model.StockItem) string { return s.SousCategorie },
		func(s model.StockItem) bool { return categorie == "" || s.Categorie == categorie },
	)
}

// Produits lists products restricted by categorie and sous-categorie
// (either may be empty = no restriction).
func (l *StockLedger) Produits(categorie, sousCategorie string) []string {
	return l.uniqueValues(
		func(s model.StockItem) string { return s.Produit },
		func(s model.StockItem) bool {
			if categorie != "" && s.Categorie != categorie {
				return false
			}
			return sousCategorie == "" || s.SousCategorie == sousCategorie
		},
	)
}

func (l *StockLedger) uniqueValues(get func(model.StockItem) string, match func(model.StockItem) bool) []string {
	seen := make(map[string]struct{}, len(l.items))
	var out []string
	for _, it := range l.items {
		if !match(it) {
			continue
		}
		v := get(it)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
