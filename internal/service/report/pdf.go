// Package report renders aggregated punch history into the downloadable
// formats the admin screens offer.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"ponto/backend/internal/repository/postgres/punch"
)

type EmployeeInfo struct {
	EmployeeID string
	Name       string
	Email      string
}

var typeLabels = map[string]string{
	"entrada":       "Entrada",
	"inicio_almoco": "Início Almoço",
	"fim_almoco":    "Fim Almoço",
	"saida":         "Saída",
}

// PDFFilename builds the download name used by the report endpoint.
func PDFFilename(name string) string {
	return fmt.Sprintf("Relatorio_Ponto_%s.pdf", strings.ReplaceAll(name, " ", "_"))
}

// PDF renders the punch history report for one employee.
func PDF(employee EmployeeInfo, history punch.HistoryResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Ponto"), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Funcionário: %s", employee.Name)), "", 1, "L", false, 0, "")
	if employee.Email != "" {
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Email: %s", employee.Email)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, day := range history.Days {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		header := fmt.Sprintf("%s    Total do Dia: %s", day.Date.Format("02/01/2006"), day.DailyTotal)
		pdf.CellFormat(0, 8, tr(header), "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, rec := range day.Records {
			label, ok := typeLabels[rec.Type]
			if !ok {
				label = rec.Type
			}
			pdf.CellFormat(95, 7, tr(label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(95, 7, rec.Time, "1", 1, "C", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("Total de Horas no Período: %s", history.GrandTotal)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
