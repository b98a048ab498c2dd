package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/storage"
)

// StockService exposes the stock table mutations and queries. Every
// successful mutation flushes both CSV files; a flush failure surfaces as a
// warning on the response, never as a failed mutation.
type StockService interface {
	List(ctx context.Context) *dto.StockListResponse
	AddOrIncrement(ctx context.Context, req dto.StockItemRequest) (*dto.StockMutationResponse, error)
	Replace(ctx context.Context, index int, req dto.StockItemRequest) (*dto.StockMutationResponse, error)
	Remove(ctx context.Context, index int) (*dto.StockMutationResponse, error)
	Choices(ctx context.Context, q dto.ChoicesQuery) *dto.ChoicesResponse
}

type stockService struct {
	store *storage.Store
	now   func() time.Time
}

func NewStockService(store *storage.Store) StockService {
	return &stockService{store: store, now: time.Now}
}

// flushWarning extracts the user-visible warning from a mutation error, or
// re-returns the error when it is a real (pre-mutation) failure.
func flushWarning(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	var fe *storage.FlushError
	if errors.As(err, &fe) {
		return fe.Error(), nil
	}
	return "", err
}

func (s *stockService) List(_ context.Context) *dto.StockListResponse {
	var items []model.StockItem
	s.store.View(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) {
		items = stock.Items()
	})
	data := make([]dto.StockItemResponse, 0, len(items))
	for i, it := range items {
		data = append(data, stockItemToResponse(i, it))
	}
	return &dto.StockListResponse{Data: data, Total: len(data)}
}

func (s *stockService) AddOrIncrement(_ context.Context, req dto.StockItemRequest) (*dto.StockMutationResponse, error) {
	var (
		item    model.StockItem
		index   int
		created bool
	)
	err := s.store.Update(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) error {
		var err error
		item, index, created, err = stock.AddOrIncrement(ledger.NewItemInput{
			Categorie:     req.Categorie,
			SousCategorie: req.SousCategorie,
			Produit:       req.Produit,
			PrixUnitaire:  req.PrixUnitaire,
			Quantite:      req.Quantite,
		}, s.now())
		return err
	})
	warning, err := flushWarning(err)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Produit %s ajouté au stock.", item.Produit)
	if !created {
		message = fmt.Sprintf("Quantité du produit %s mise à jour. Nouvelle quantité : %s", item.Produit, item.Quantite)
	}
	log.Info().Str("produit", item.Produit).Bool("created", created).Msg("stock ajouté")

	resp := stockItemToResponse(index, item)
	return &dto.StockMutationResponse{Message: message, Created: created, Item: &resp, Warning: warning}, nil
}

func (s *stockService) Replace(_ context.Context, index int, req dto.StockItemRequest) (*dto.StockMutationResponse, error) {
	var item model.StockItem
	err := s.store.Update(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) error {
		var err error
		item, err = stock.Replace(index, ledger.NewItemInput{
			Categorie:     req.Categorie,
			SousCategorie: req.SousCategorie,
			Produit:       req.Produit,
			PrixUnitaire:  req.PrixUnitaire,
			Quantite:      req.Quantite,
		}, s.now())
		return err
	})
	warning, err := flushWarning(err)
	if err != nil {
		return nil, err
	}

	log.Info().Str("produit", item.Produit).Int("index", index).Msg("stock modifié")
	resp := stockItemToResponse(index, item)
	return &dto.StockMutationResponse{
		Message: fmt.Sprintf("Produit %s modifié avec succès.", item.Produit),
		Item:    &resp,
		Warning: warning,
	}, nil
}

// Remove deletes the stock row only. Historical sales referencing the
// product stay in the ventes ledger; reporting joins simply stop matching.
func (s *stockService) Remove(_ context.Context, index int) (*dto.StockMutationResponse, error) {
	var removed model.StockItem
	err := s.store.Update(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) error {
		var err error
		removed, err = stock.Remove(index)
		return err
	})
	warning, err := flushWarning(err)
	if err != nil {
		return nil, err
	}

	log.Info().Str("produit", removed.Produit).Int("index", index).Msg("stock supprimé")
	resp := stockItemToResponse(index, removed)
	return &dto.StockMutationResponse{
		Message: fmt.Sprintf("Produit à l'index %d supprimé.", index),
		Item:    &resp,
		Warning: warning,
	}, nil
}

// Choices returns the three dependent dropdown lists in one call. "Tous" at
// any level behaves like no selection.
func (s *stockService) Choices(_ context.Context, q dto.ChoicesQuery) *dto.ChoicesResponse {
	categorie := normalizeTous(q.Categorie)
	sousCategorie := normalizeTous(q.SousCategorie)

	resp := &dto.ChoicesResponse{}
	s.store.View(func(stock *ledger.StockLedger, _ *ledger.SalesLedger) {
		resp.Categories = stock.Categories()
		resp.SousCategories = stock.SousCategories(categorie)
		resp.Produits = stock.Produits(categorie, sousCategorie)
	})
	return resp
}

// normalizeTous maps the UI's "Tous" sentinel onto the ledger's empty-string
// convention for "no restriction".
func normalizeTous(s string) string {
	if s == "Tous" {
		return ""
	}
	return s
}

func stockItemToResponse(index int, it model.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		Index:            index,
		Categorie:        it.Categorie,
		SousCategorie:    it.SousCategorie,
		Produit:          it.Produit,
		PrixUnitaire:     it.PrixUnitaire,
		Quantite:         it.Quantite,
		Date:             model.FormatDate(it.Date),
		QuantiteInitiale: it.QuantiteInitiale,
	}
}
