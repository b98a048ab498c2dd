package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/service"
)

type VentesHandler struct{ svc service.SalesService }

func NewVentesHandler(svc service.SalesService) *VentesHandler { return &VentesHandler{svc: svc} }

// Vendre records a sale: the stock quantity is decremented and the ventes
// row appended in one step. 409 carries the available quantity when stock is
// insufficient.
func (h *VentesHandler) Vendre(c *gin.Context) {
	var req dto.VenteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Sell(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	setFlushWarning(c, resp.Warning)
	c.JSON(http.StatusCreated, resp)
}

// Lister returns filtered sales with the remaining stock quantity joined in.
func (h *VentesHandler) Lister(c *gin.Context) {
	var filter dto.VenteFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Supprimer removes the sale at :index. Stock is NOT restored.
func (h *VentesHandler) Supprimer(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), index)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	setFlushWarning(c, resp.Warning)
	c.JSON(http.StatusOK, resp)
}
