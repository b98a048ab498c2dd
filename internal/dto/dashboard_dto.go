package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// DashboardFilter is shared by the statistiques and report endpoints.
type DashboardFilter struct {
	Categorie     string `form:"categorie"`
	SousCategorie string `form:"sous_categorie"`
	Produit       string `form:"produit"`
	DateDebut     string `form:"date_debut" validate:"omitempty,datetime=02-01-2006"`
	DateFin       string `form:"date_fin"   validate:"omitempty,datetime=02-01-2006"`
	// ParDate makes the stock⋈ventes join include the date column.
	ParDate bool `form:"par_date"`
}

// ExportQuery selects the report export format.
type ExportQuery struct {
	Format string `form:"format,default=xlsx" validate:"oneof=xlsx pdf"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

// AlerteStockRow is one stock row at a critical or low level.
type AlerteStockRow struct {
	Categorie          string          `json:"categorie"`
	SousCategorie      string          `json:"sous_categorie"`
	Produit            string          `json:"produit"`
	StockInitial       decimal.Decimal `json:"stock_initial"`
	StockRestant       decimal.Decimal `json:"stock_restant"`
	PourcentageRestant decimal.Decimal `json:"pourcentage_restant"`
}

// AlertesResponse groups items by severity: Critique ≤ 20 %, Faible 21–40 %.
type AlertesResponse struct {
	Critique []AlerteStockRow `json:"critique"`
	Faible   []AlerteStockRow `json:"faible"`
}

// VenteParCategorieRow is one (categorie, date) aggregation row, date
// ascending.
type VenteParCategorieRow struct {
	Categorie      string          `json:"categorie"`
	Date           string          `json:"date"`
	QuantiteVendue decimal.Decimal `json:"quantite_vendue"`
	Total          decimal.Decimal `json:"total"`
}

type StatistiquesResponse struct {
	TotalVentes      decimal.Decimal        `json:"total_ventes"`
	UnitesVendues    decimal.Decimal        `json:"unites_vendues"`
	ProduitTop       string                 `json:"produit_top"`
	ProduitTopUnites decimal.Decimal        `json:"produit_top_unites"`
	// ValeurTotale = current stock value + historical sales value.
	ValeurTotale decimal.Decimal        `json:"valeur_totale"`
	ParCategorie []VenteParCategorieRow `json:"par_categorie_et_date"`
}

// ReportRow is one line of the stock⋈ventes report: stock fields, percent
// remaining and the (zero-filled) sales aggregates.
type ReportRow struct {
	Categorie          string          `json:"categorie"`
	SousCategorie      string          `json:"sous_categorie"`
	Produit            string          `json:"produit"`
	PrixUnitaire       decimal.Decimal `json:"prix_unitaire"`
	StockInitial       decimal.Decimal `json:"stock_initial"`
	StockRestant       decimal.Decimal `json:"stock_restant"`
	PourcentageRestant decimal.Decimal `json:"pourcentage_restant"`
	Niveau             string          `json:"niveau"`
	QuantiteVendue     decimal.Decimal `json:"quantite_vendue"`
	TotalVentes        decimal.Decimal `json:"total_ventes"`
}

type ReportResponse struct {
	Data  []ReportRow `json:"data"`
	Total int         `json:"total"`
}

// PeriodeResponse is a resolved date shortcut. Empty bounds mean "no filter".
type PeriodeResponse struct {
	Raccourci string `json:"raccourci"`
	DateDebut string `json:"date_debut"`
	DateFin   string `json:"date_fin"`
}
