package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one row of the stock table. Rows are addressed positionally:
// an index is only valid until the next insert or delete on the ledger.
type StockItem struct {
	Categorie     string
	SousCategorie string
	Produit       string
	PrixUnitaire  decimal.Decimal
	Quantite      decimal.Decimal
	// Date is the last create/replace timestamp — display only.
	Date time.Time
	// QuantiteInitiale is the denominator for percent-remaining. It is set
	// to Quantite on create and on full replace, never touched by a sale.
	QuantiteInitiale decimal.Decimal
}

// SameProduct reports whether the row matches categorie+produit, the minimum
// key a sale needs. SousCategorie narrows the match only when non-empty.
func (s StockItem) SameProduct(categorie, sousCategorie, produit string) bool {
	if s.Categorie != categorie || s.Produit != produit {
		return false
	}
	return sousCategorie == "" || s.SousCategorie == sousCategorie
}

// SameEntry reports whether the row is "the same item" for add-time duplicate
// detection: exact match on categorie, sous-categorie, produit and price.
func (s StockItem) SameEntry(categorie, sousCategorie, produit string, prix decimal.Decimal) bool {
	return s.Categorie == categorie &&
		s.SousCategorie == sousCategorie &&
		s.Produit == produit &&
		s.PrixUnitaire.Equal(prix)
}
