package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/apierror"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/dto"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/service"
)

// ExportHandler streams the stock⋈ventes report as a spreadsheet or a
// printable PDF table. Export never mutates ledger state.
type ExportHandler struct {
	svc      service.AnalyticsService
	currency string
}

func NewExportHandler(svc service.AnalyticsService, currency string) *ExportHandler {
	return &ExportHandler{svc: svc, currency: currency}
}

func (h *ExportHandler) Export(c *gin.Context) {
	var q dto.ExportQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	var filter dto.DashboardFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	report, err := h.svc.Report(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	switch q.Format {
	case "pdf":
		h.exportPDF(c, report.Data)
	default:
		h.exportXLSX(c, report.Data)
	}
}

var exportHeaders = []string{
	"Catégorie", "Sous-catégorie", "Produit", "Prix unitaire",
	"Stock initial", "Stock restant", "Pourcentage restant",
	"Quantité vendue", "Total ventes",
}

func (h *ExportHandler) exportXLSX(c *gin.Context, rows []dto.ReportRow) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, r := range rows {
		values := []interface{}{
			r.Categorie, r.SousCategorie, r.Produit,
			r.PrixUnitaire.InexactFloat64(),
			r.StockInitial.InexactFloat64(),
			r.StockRestant.InexactFloat64(),
			r.PourcentageRestant.InexactFloat64(),
			r.QuantiteVendue.InexactFloat64(),
			r.TotalVentes.InexactFloat64(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=rapport_stock.xlsx")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Échec de génération du fichier"))
	}
}

func (h *ExportHandler) exportPDF(c *gin.Context, rows []dto.ReportRow) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Gestion de Stock et Ventes", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Tous les produits avec pourcentage de stock restant", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Column widths as fractions of the content width.
	fractions := []float64{0.13, 0.13, 0.16, 0.10, 0.10, 0.10, 0.09, 0.09, 0.10}

	pdf.SetFont("Helvetica", "B", 8)
	for i, header := range exportHeaders {
		pdf.CellFormat(contentW*fractions[i], 6, header, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		cells := []string{
			truncate(r.Categorie, 18),
			truncate(r.SousCategorie, 18),
			truncate(r.Produit, 22),
			r.PrixUnitaire.StringFixed(2),
			r.StockInitial.String(),
			r.StockRestant.String(),
			r.PourcentageRestant.String() + "%",
			r.QuantiteVendue.String(),
			fmt.Sprintf("%s %s", r.TotalVentes.StringFixed(2), h.currency),
		}
		for i, cell := range cells {
			pdf.CellFormat(contentW*fractions[i], 5, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=rapport_stock.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Échec de génération du fichier"))
	}
}

// truncate shortens s to max runes. Byte slicing would cut accented names
// ("Bière", "Crème") mid-rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
