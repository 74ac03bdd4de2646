package infra

// pdf.go — annual performance report rendered with go-pdf/fpdf: header with
// vendedor and year, KPI summary block, goal attainment lines and the
// month-by-month table. The file lands in storagePath/resumen_{anio}_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateResumenPDF renders the annual summary of one vendedor and returns
// the absolute path of the written file. storagePath is created if needed.
func GenerateResumenPDF(resumen *dto.ResumenAnualResponse, nombre string, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio de salida: %w", err)
	}

	fileName := fmt.Sprintf("resumen_%d_%s.pdf", resumen.Anio, resumen.UserID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, fmt.Sprintf("Resumen anual %d", resumen.Anio), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, nombre, "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── KPI block ────────────────────────────────────────────────────────────
	kpi := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW*0.55, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW*0.45, 6, value, "", 1, "R", false, 0, "")
	}
	kpi("Cierres", fmt.Sprintf("%d", resumen.TotalCierres))
	kpi("Puntas", fmt.Sprintf("%d", resumen.TotalPuntas))
	kpi("Valor cerrado", "$"+resumen.ValorCerrado.StringFixed(2))
	kpi("Honorarios totales", "$"+resumen.HonorariosTotal.StringFixed(2))
	kpi("Comisiones del agente", "$"+resumen.ComisionesTotal.StringFixed(2))
	kpi("Captaciones activas", fmt.Sprintf("%d de %d", resumen.Captaciones.Activas, resumen.Captaciones.Total))
	pdf.Ln(4)

	// ── Goal attainment ──────────────────────────────────────────────────────
	if obj := resumen.Objetivo; obj != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Avance de objetivos", "", 1, "L", false, 0, "")
		avance := func(label string, pct *decimal.Decimal) {
			texto := "sin objetivo"
			if pct != nil {
				texto = pct.StringFixed(2) + "%"
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(contentW*0.55, 6, label, "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.45, 6, texto, "", 1, "R", false, 0, "")
		}
		avance("Facturacion", obj.AvanceFacturacionPct)
		avance("Comisiones", obj.AvanceComisionesPct)
		avance("Puntas", obj.AvancePuntasPct)
		pdf.Ln(4)
	}

	// ── Monthly table ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Detalle mensual", "", 1, "L", false, 0, "")

	col1 := contentW * 0.22 // month
	col2 := contentW * 0.12 // cierres
	col3 := contentW * 0.12 // puntas
	col4 := contentW * 0.27 // honorarios
	col5 := contentW * 0.27 // comisiones

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Mes", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cierres", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Puntas", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Honorarios", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Comisiones", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, mes := range resumen.PorMes {
		pdf.CellFormat(col1, 6, mes.Nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("%d", mes.Cierres), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("%d", mes.Puntas), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+mes.Honorarios.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, "$"+mes.Comisiones.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: escribir %s: %w", filePath, err)
	}
	return filePath, nil
}
