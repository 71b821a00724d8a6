package infra

// pdf.go — Revision report PDF generation using go-pdf/fpdf.
// Produces an A4 landscape table with one row per expediente: código, nombre,
// fiscalía, técnico, estado actual and revision metadata. The bytes are
// streamed back to the client as a download, nothing touches disk.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
)

// GenerateReporteRevisionPDF renders the revision report rows as a PDF.
// subtitle describes the applied filters and is printed under the title.
func GenerateReporteRevisionPDF(rows []dto.ReporteRevisionExpediente, subtitle string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "DICRI - Reporte de Revisión de Expedientes", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if subtitle != "" {
		pdf.CellFormat(contentW, 5, subtitle, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Generado: "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ────────────────────────────────────────────────────────
	cols := []struct {
		title string
		width float64
	}{
		{"Código", 0.11},
		{"Nombre del caso", 0.21},
		{"Fiscalía", 0.15},
		{"Registrado", 0.08},
		{"Técnico", 0.13},
		{"Estado", 0.10},
		{"Revisado", 0.08},
		{"Coordinador", 0.14},
	}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range cols {
			pdf.CellFormat(contentW*c.width, 6, c.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	writeHeader()

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for _, row := range rows {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont("Helvetica", "", 7)
		}

		fechaRevision := ""
		if row.FechaRevision != nil {
			fechaRevision = row.FechaRevision.Format("02/01/2006")
		}
		coordinador := ""
		if row.CoordinadorRevision != nil {
			coordinador = *row.CoordinadorRevision
		}

		cells := []string{
			row.CodigoCaso,
			truncate(row.NombreCaso, 40),
			truncate(row.NombreFiscalia, 28),
			row.FechaRegistro.Format("02/01/2006"),
			truncate(row.TecnicoRegistra, 24),
			row.EstadoActual,
			fechaRevision,
			truncate(coordinador, 26),
		}
		for i, c := range cols {
			pdf.CellFormat(contentW*c.width, 5, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Total de expedientes: %d", len(rows)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
