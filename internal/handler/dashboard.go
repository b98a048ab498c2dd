package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/apierror"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/service"
)

type DashboardHandler struct{ svc service.AnalyticsService }

func NewDashboardHandler(svc service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Alertes lists critical (≤ 20 %) and low (21–40 %) stock rows.
func (h *DashboardHandler) Alertes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Alerts(c.Request.Context()))
}

// Statistiques returns sales totals, the top product and the per-categorie
// per-date breakdown for the filtered period.
func (h *DashboardHandler) Statistiques(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Statistics(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report returns the stock table joined with aggregated sales and percent
// remaining per row.
func (h *DashboardHandler) Report(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Report(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Periode resolves a date shortcut (aujourd-hui, cette-semaine, ce-mois,
// ce-trimestre, cette-annee, tout) against the current date.
func (h *DashboardHandler) Periode(c *gin.Context) {
	raccourci := c.Param("raccourci")
	period, ok := service.PeriodFor(raccourci, time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Raccourci de période inconnu: "+raccourci))
		return
	}
	c.JSON(http.StatusOK, dto.PeriodeResponse{
		Raccourci: raccourci,
		DateDebut: model.FormatDate(period.From),
		DateFin:   model.FormatDate(period.To),
	})
}
