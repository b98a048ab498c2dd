package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// StockItemRequest is the body of POST /v1/stock and PUT /v1/stock/:index.
// Business validation (required fields, sign checks) lives in the ledger so
// the user-facing messages stay identical between entry points.
type StockItemRequest struct {
	Categorie     string          `json:"categorie"`
	SousCategorie string          `json:"sous_categorie"`
	Produit       string          `json:"produit"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire"`
	Quantite      decimal.Decimal `json:"quantite"`
}

// ChoicesQuery narrows the cascading dropdown lists. "Tous" is equivalent to
// leaving a level unset.
type ChoicesQuery struct {
	Categorie     string `form:"categorie"`
	SousCategorie string `form:"sous_categorie"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type StockItemResponse struct {
	Index            int             `json:"index"`
	Categorie        string          `json:"categorie"`
	SousCategorie    string          `json:"sous_categorie"`
	Produit          string          `json:"produit"`
	PrixUnitaire     decimal.Decimal `json:"prix_unitaire"`
	Quantite         decimal.Decimal `json:"quantite"`
	Date             string          `json:"date"`
	QuantiteInitiale decimal.Decimal `json:"quantite_initiale"`
}

// StockMutationResponse reports the outcome of a stock mutation. Warning is
// set when the mutation applied but the CSV flush failed.
type StockMutationResponse struct {
	Message string             `json:"message"`
	Created bool               `json:"created,omitempty"`
	Item    *StockItemResponse `json:"item,omitempty"`
	Warning string             `json:"warning,omitempty"`
}

type StockListResponse struct {
	Data  []StockItemResponse `json:"data"`
	Total int                 `json:"total"`
}

// ChoicesResponse feeds the dependent dropdowns, first-seen order preserved.
type ChoicesResponse struct {
	Categories     []string `json:"categories"`
	SousCategories []string `json:"sous_categories"`
	Produits       []string `json:"produits"`
}
