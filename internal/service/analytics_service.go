package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/storage"
)

// Stock level classification thresholds, in percent remaining.
const (
	seuilCritique = 20
	seuilFaible   = 40
)

// Stock level labels.
const (
	NiveauCritique = "critique"
	NiveauFaible   = "faible"
	NiveauNormal   = "normal"
)

var hundred = decimal.NewFromInt(100)

// PercentRemaining computes quantite / quantite initiale × 100, rounded to
// two decimals. A zero initial quantity yields 0, not an error.
func PercentRemaining(it model.StockItem) decimal.Decimal {
	if it.QuantiteInitiale.IsZero() {
		return decimal.Zero
	}
	return it.Quantite.Div(it.QuantiteInitiale).Mul(hundred).Round(2)
}

// Classify buckets an item by its percent remaining: ≤ 20 critique,
// 21–40 faible, above normal.
func Classify(it model.StockItem) string {
	pct := PercentRemaining(it)
	switch {
	case pct.LessThanOrEqual(decimal.NewFromInt(seuilCritique)):
		return NiveauCritique
	case pct.LessThanOrEqual(decimal.NewFromInt(seuilFaible)):
		return NiveauFaible
	default:
		return NiveauNormal
	}
}

// AnalyticsService derives the dashboard views. Everything here is a pure
// function of the current ledger snapshots — nothing is cached, nothing
// mutates.
type AnalyticsService interface {
	Alerts(ctx context.Context) *dto.AlertesResponse
	Statistics(ctx context.Context, filter dto.DashboardFilter) (*dto.StatistiquesResponse, error)
	Report(ctx context.Context, filter dto.DashboardFilter) (*dto.ReportResponse, error)
}

type analyticsService struct {
	store *storage.Store
}

func NewAnalyticsService(store *storage.Store) AnalyticsService {
	return &analyticsService{store: store}
}

// Alerts classifies the whole stock table, unfiltered.
func (s *analyticsService) Alerts(_ context.Context) *dto.AlertesResponse {
	resp := &dto.AlertesResponse{
		Critique: []dto.AlerteStockRow{},
		Faible:   []dto.AlerteStockRow{},
	}
	s.store.View(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) {
		for _, it := range stock.Items() {
			row := dto.AlerteStockRow{
				Categorie:          it.Categorie,
				SousCategorie:      it.SousCategorie,
				Produit:            it.Produit,
				StockInitial:       it.QuantiteInitiale,
				StockRestant:       it.Quantite,
				PourcentageRestant: PercentRemaining(it),
			}
			switch Classify(it) {
			case NiveauCritique:
				resp.Critique = append(resp.Critique, row)
			case NiveauFaible:
				resp.Faible = append(resp.Faible, row)
			}
		}
	})
	return resp
}

// Report left-joins the stock table onto the date-filtered, aggregated
// ventes table. Stock rows without sales keep zero sales figures; sales
// without a stock row are not reported here (the stock side drives).
func (s *analyticsService) Report(_ context.Context, filter dto.DashboardFilter) (*dto.ReportResponse, error) {
	rows, err := s.reportRows(filter)
	if err != nil {
		return nil, err
	}
	return &dto.ReportResponse{Data: rows, Total: len(rows)}, nil
}

func (s *analyticsService) reportRows(filter dto.DashboardFilter) ([]dto.ReportRow, error) {
	categorie := normalizeTous(filter.Categorie)
	sousCategorie := normalizeTous(filter.SousCategorie)
	produit := normalizeTous(filter.Produit)
	from, to, err := parseBounds(filter.DateDebut, filter.DateFin)
	if err != nil {
		return nil, err
	}

	rows := []dto.ReportRow{}
	s.store.View(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) {
		// Sales side: date bounds only; the category/product filters are
		// applied to the joined rows afterwards, mirroring the dashboard.
		agg := ventes.AggregateByKey(ledger.SaleFilter{From: from, To: to}, filter.ParDate)

		for _, it := range stock.Items() {
			if categorie != "" && it.Categorie != categorie {
				continue
			}
			if sousCategorie != "" && it.SousCategorie != sousCategorie {
				continue
			}
			if produit != "" && it.Produit != produit {
				continue
			}
			key := ledger.SaleKey{Categorie: it.Categorie, SousCategorie: it.SousCategorie, Produit: it.Produit}
			if filter.ParDate {
				key.Date = model.DateOnly(it.Date)
			}
			totals := agg[key]
			rows = append(rows, dto.ReportRow{
				Categorie:          it.Categorie,
				SousCategorie:      it.SousCategorie,
				Produit:            it.Produit,
				PrixUnitaire:       it.PrixUnitaire,
				StockInitial:       it.QuantiteInitiale,
				StockRestant:       it.Quantite,
				PourcentageRestant: PercentRemaining(it),
				Niveau:             Classify(it),
				QuantiteVendue:     totals.QuantiteVendue,
				TotalVentes:        totals.Total,
			})
		}
	})
	return rows, nil
}

// Statistics aggregates the filtered report: total amount, units sold, top
// product (most units, first-encountered wins ties), the combined value of
// stock and sales, and the per-(categorie, date) breakdown sorted by date.
func (s *analyticsService) Statistics(_ context.Context, filter dto.DashboardFilter) (*dto.StatistiquesResponse, error) {
	filter.ParDate = false
	rows, err := s.reportRows(filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatistiquesResponse{
		TotalVentes:   decimal.Zero,
		UnitesVendues: decimal.Zero,
		ParCategorie:  []dto.VenteParCategorieRow{},
	}
	for _, r := range rows {
		resp.TotalVentes = resp.TotalVentes.Add(r.TotalVentes)
		resp.UnitesVendues = resp.UnitesVendues.Add(r.QuantiteVendue)
		if r.QuantiteVendue.IsPositive() && r.QuantiteVendue.GreaterThan(resp.ProduitTopUnites) {
			resp.ProduitTop = r.Produit
			resp.ProduitTopUnites = r.QuantiteVendue
		}
	}

	from, to, err := parseBounds(filter.DateDebut, filter.DateFin)
	if err != nil {
		return nil, err
	}
	s.store.View(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) {
		// Combined value: what the current stock is worth plus what has
		// already been sold, over the full (unfiltered) ledgers.
		valeur := decimal.Zero
		for _, it := range stock.Items() {
			valeur = valeur.Add(it.PrixUnitaire.Mul(it.Quantite))
		}
		for _, sale := range ventes.List() {
			valeur = valeur.Add(sale.Total)
		}
		resp.ValeurTotale = valeur

		// Per-(categorie, date) breakdown honours the date bounds only.
		type catDate struct {
			categorie string
			date      string
		}
		totals := make(map[catDate]ledger.SaleTotals)
		for _, sale := range ventes.Filter(ledger.SaleFilter{From: from, To: to}) {
			k := catDate{categorie: sale.Categorie, date: model.FormatDate(model.DateOnly(sale.Date))}
			t := totals[k]
			t.QuantiteVendue = t.QuantiteVendue.Add(sale.QuantiteVendue)
			t.Total = t.Total.Add(sale.Total)
			totals[k] = t
		}
		for k, t := range totals {
			resp.ParCategorie = append(resp.ParCategorie, dto.VenteParCategorieRow{
				Categorie:      k.categorie,
				Date:           k.date,
				QuantiteVendue: t.QuantiteVendue,
				Total:          t.Total,
			})
		}
	})

	// Ascending by date, categorie as tie-break for a stable order.
	sort.Slice(resp.ParCategorie, func(i, j int) bool {
		di, _ := model.ParseDate(resp.ParCategorie[i].Date)
		dj, _ := model.ParseDate(resp.ParCategorie[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return resp.ParCategorie[i].Categorie < resp.ParCategorie[j].Categorie
	})
	return resp, nil
}
