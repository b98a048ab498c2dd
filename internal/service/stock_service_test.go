package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
)

func colaRequest(prix int64) dto.StockItemRequest {
	return dto.StockItemRequest{
		Categorie:     "Boissons",
		SousCategorie: "Soda",
		Produit:       "Cola",
		PrixUnitaire:  decimal.NewFromInt(prix),
		Quantite:      decimal.NewFromInt(5),
	}
}

// The index in a mutation response is the row's positional address for
// PUT/DELETE. With two rows sharing categorie+produit at different prices,
// incrementing the second must report the second row's index.
func TestAddOrIncrementReportsIndexOfPricedRow(t *testing.T) {
	ctx := context.Background()
	stockSvc, _, _ := newTestServices(t)

	resp, err := stockSvc.AddOrIncrement(ctx, colaRequest(500))
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, 0, resp.Item.Index)

	resp, err = stockSvc.AddOrIncrement(ctx, colaRequest(600))
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, 1, resp.Item.Index)

	resp, err = stockSvc.AddOrIncrement(ctx, colaRequest(600))
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, 1, resp.Item.Index)
	assert.True(t, resp.Item.Quantite.Equal(decimal.NewFromInt(10)))

	// Deleting via the reported index removes the priced row, not its
	// categorie+produit sibling.
	del, err := stockSvc.Remove(ctx, resp.Item.Index)
	require.NoError(t, err)
	assert.True(t, del.Item.PrixUnitaire.Equal(decimal.NewFromInt(600)))

	list := stockSvc.List(ctx)
	require.Equal(t, 1, list.Total)
	assert.True(t, list.Data[0].PrixUnitaire.Equal(decimal.NewFromInt(500)))
}
