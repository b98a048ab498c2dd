package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one row of the ventes table. Total is computed and frozen at sale
// time — later price edits on the stock row never rewrite history.
type Sale struct {
	Categorie      string
	SousCategorie  string
	Produit        string
	PrixUnitaire   decimal.Decimal
	QuantiteVendue decimal.Decimal
	Date           time.Time
	Total          decimal.Decimal
}
