package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// VenteRequest is the body of POST /v1/ventes. PrixUnitaire is an override:
// zero (or omitted) means "use the stock row's current price".
type VenteRequest struct {
	Categorie     string          `json:"categorie"`
	SousCategorie string          `json:"sous_categorie"`
	Produit       string          `json:"produit"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire" validate:"omitempty,min=0"`
	Quantite      decimal.Decimal `json:"quantite"`
}

// VenteFilter is bound from the query string of GET /v1/ventes.
// "Tous" or empty = no restriction; dates use dd-mm-yyyy, bounds inclusive.
type VenteFilter struct {
	Categorie     string `form:"categorie"`
	SousCategorie string `form:"sous_categorie"`
	Produit       string `form:"produit"`
	DateDebut     string `form:"date_debut" validate:"omitempty,datetime=02-01-2006"`
	DateFin       string `form:"date_fin"   validate:"omitempty,datetime=02-01-2006"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type VenteResponse struct {
	Index          int             `json:"index"`
	Categorie      string          `json:"categorie"`
	SousCategorie  string          `json:"sous_categorie"`
	Produit        string          `json:"produit"`
	PrixUnitaire   decimal.Decimal `json:"prix_unitaire"`
	QuantiteVendue decimal.Decimal `json:"quantite_vendue"`
	Date           string          `json:"date"`
	Total          decimal.Decimal `json:"total"`
}

// VenteListItem adds the remaining stock quantity joined from the stock
// table; a sale whose product was deleted from stock shows 0 remaining.
type VenteListItem struct {
	VenteResponse
	QuantiteRestante decimal.Decimal `json:"quantite_restante"`
}

type VenteListResponse struct {
	Data  []VenteListItem `json:"data"`
	Total int             `json:"total"`
}

type VenteMutationResponse struct {
	Message string         `json:"message"`
	Vente   *VenteResponse `json:"vente,omitempty"`
	Warning string         `json:"warning,omitempty"`
}
