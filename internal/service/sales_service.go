package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/storage"
)

// SalesService coordinates the cross-ledger sale flow: a sale decrements the
// stock row and appends a ventes row as one logical step, flushed together.
// Deleting a sale removes the ventes row only — stock is never restored.
type SalesService interface {
	Sell(ctx context.Context, req dto.VenteRequest) (*dto.VenteMutationResponse, error)
	Delete(ctx context.Context, index int) (*dto.VenteMutationResponse, error)
	List(ctx context.Context, filter dto.VenteFilter) (*dto.VenteListResponse, error)
}

type salesService struct {
	store    *storage.Store
	currency string
	now      func() time.Time
}

func NewSalesService(store *storage.Store, currency string) SalesService {
	return &salesService{store: store, currency: currency, now: time.Now}
}

// Sell validates the request, resolves the unit price, checks availability,
// then decrements stock and appends the sale. Validation failures leave both
// ledgers untouched.
func (s *salesService) Sell(_ context.Context, req dto.VenteRequest) (*dto.VenteMutationResponse, error) {
	if strings.TrimSpace(req.Categorie) == "" || strings.TrimSpace(req.Produit) == "" {
		return nil, ledger.ErrMissingSelection
	}
	if !req.Quantite.IsPositive() {
		return nil, ledger.ErrNonPositiveQuantity
	}

	var sale model.Sale
	var index int
	err := s.store.Update(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) error {
		stockIndex, ok := stock.FindByKey(req.Categorie, req.SousCategorie, req.Produit)
		if !ok {
			return ledger.ErrProductNotFound
		}
		row, err := stock.Get(stockIndex)
		if err != nil {
			return err
		}

		// Caller price wins when strictly positive, else inherit the
		// stock row's current price.
		prix := req.PrixUnitaire
		if !prix.IsPositive() {
			prix = row.PrixUnitaire
		}

		if err := stock.DecrementQuantite(stockIndex, req.Quantite); err != nil {
			return err
		}

		sale = model.Sale{
			Categorie:      req.Categorie,
			SousCategorie:  req.SousCategorie,
			Produit:        req.Produit,
			PrixUnitaire:   prix,
			QuantiteVendue: req.Quantite,
			Date:           s.now(),
			Total:          prix.Mul(req.Quantite),
		}
		ventes.Append(sale)
		index = ventes.Len() - 1
		return nil
	})
	warning, err := flushWarning(err)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("produit", sale.Produit).
		Str("quantite", sale.QuantiteVendue.String()).
		Str("total", sale.Total.String()).
		Msg("vente enregistrée")

	resp := saleToResponse(index, sale)
	return &dto.VenteMutationResponse{
		Message: fmt.Sprintf("%s %s vendus à %s %s l'unité.",
			sale.QuantiteVendue, sale.Produit, sale.PrixUnitaire.StringFixed(2), s.currency),
		Vente:   &resp,
		Warning: warning,
	}, nil
}

// Delete removes the sale at index. The decremented stock quantity stays
// decremented — that is the recorded behaviour, not an oversight to fix.
func (s *salesService) Delete(_ context.Context, index int) (*dto.VenteMutationResponse, error) {
	var removed model.Sale
	err := s.store.Update(func(_ *ledger.StockLedger, ventes *ledger.SalesLedger) error {
		var err error
		removed, err = ventes.Remove(index)
		return err
	})
	warning, err := flushWarning(err)
	if err != nil {
		return nil, err
	}

	log.Info().Str("produit", removed.Produit).Int("index", index).Msg("vente supprimée")
	resp := saleToResponse(index, removed)
	return &dto.VenteMutationResponse{
		Message: fmt.Sprintf("Vente de %s supprimée avec succès.", removed.Produit),
		Vente:   &resp,
		Warning: warning,
	}, nil
}

// List returns the filtered sales, each joined with the remaining quantity
// of its stock row. A sale whose stock row no longer exists shows 0.
func (s *salesService) List(_ context.Context, filter dto.VenteFilter) (*dto.VenteListResponse, error) {
	f := ledger.SaleFilter{
		Categorie:     normalizeTous(filter.Categorie),
		SousCategorie: normalizeTous(filter.SousCategorie),
		Produit:       normalizeTous(filter.Produit),
	}
	var err error
	if f.From, f.To, err = parseBounds(filter.DateDebut, filter.DateFin); err != nil {
		return nil, err
	}

	var items []dto.VenteListItem
	s.store.View(func(stock *ledger.StockLedger, ventes *ledger.SalesLedger) {
		stockRows := stock.Items()
		for i, sale := range ventes.List() {
			if !f.Matches(sale) {
				continue
			}
			// Exact three-column match, unlike the sale flow's lookup:
			// the listing join pairs each sale with its own stock row.
			restante := decimal.Zero
			for _, row := range stockRows {
				if row.Categorie == sale.Categorie &&
					row.SousCategorie == sale.SousCategorie &&
					row.Produit == sale.Produit {
					restante = row.Quantite
					break
				}
			}
			items = append(items, dto.VenteListItem{
				VenteResponse:    saleToResponse(i, sale),
				QuantiteRestante: restante,
			})
		}
	})
	return &dto.VenteListResponse{Data: items, Total: len(items)}, nil
}

// parseBounds converts the two optional dd-mm-yyyy query fields into filter
// bounds; blanks stay zero (unbounded).
func parseBounds(debut, fin string) (from, to time.Time, err error) {
	if debut != "" {
		if from, err = model.ParseDate(debut); err != nil {
			return from, to, err
		}
	}
	if fin != "" {
		if to, err = model.ParseDate(fin); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

func saleToResponse(index int, sale model.Sale) dto.VenteResponse {
	return dto.VenteResponse{
		Index:          index,
		Categorie:      sale.Categorie,
		SousCategorie:  sale.SousCategorie,
		Produit:        sale.Produit,
		PrixUnitaire:   sale.PrixUnitaire,
		QuantiteVendue: sale.QuantiteVendue,
		Date:           model.FormatDate(sale.Date),
		Total:          sale.Total,
	}
}
