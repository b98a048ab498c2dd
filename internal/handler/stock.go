package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/service"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// Lister returns the whole stock table in ledger order; the row index in
// each item is the positional address used by PUT/DELETE.
func (h *StockHandler) Lister(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// Ajouter adds a product, or increments the quantity of an existing row when
// categorie, sous-categorie, produit and price match exactly.
func (h *StockHandler) Ajouter(c *gin.Context) {
	var req dto.StockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddOrIncrement(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	setFlushWarning(c, resp.Warning)
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// Modifier fully replaces the row at :index, resetting its initial quantity.
func (h *StockHandler) Modifier(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.StockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Replace(c.Request.Context(), index, req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	setFlushWarning(c, resp.Warning)
	c.JSON(http.StatusOK, resp)
}

// Supprimer removes the row at :index. Historical sales are kept untouched.
func (h *StockHandler) Supprimer(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Remove(c.Request.Context(), index)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	setFlushWarning(c, resp.Warning)
	c.JSON(http.StatusOK, resp)
}

// Choices feeds the categorie → sous-categorie → produit dropdown cascade.
func (h *StockHandler) Choices(c *gin.Context) {
	var q dto.ChoicesQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Choices(c.Request.Context(), q))
}
