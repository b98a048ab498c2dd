// Package ledger owns the two in-memory tables of the application: the stock
// table and the ventes table. Rows are addressed by ordinal index; every
// insert or delete invalidates previously fetched indices. All business
// errors surfaced to users originate here and keep the original French
// wording.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingField: stock add/replace without categorie or produit.
	ErrMissingField = errors.New("Veuillez remplir les champs Catégorie et Produit.")
	// ErrNegativeValue: negative price or quantity on a stock input.
	ErrNegativeValue = errors.New("Le prix et la quantité doivent être positifs.")
	// ErrMissingSelection: sale without categorie or produit.
	ErrMissingSelection = errors.New("Veuillez sélectionner une catégorie et un produit.")
	// ErrNonPositiveQuantity: sale with quantity ≤ 0.
	ErrNonPositiveQuantity = errors.New("La quantité vendue doit être positive.")
	// ErrProductNotFound: sale referencing no stock row.
	ErrProductNotFound = errors.New("Produit non trouvé en stock.")
	// ErrIndexOutOfRange: positional delete/edit with a stale or bad index.
	ErrIndexOutOfRange = errors.New("index hors limites")
)

// InsufficientStockError is returned when a sale asks for more units than the
// matched stock row currently holds. Available is reported back to the user.
type InsufficientStockError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Quantité insuffisante. Stock disponible : %s", e.Available)
}
