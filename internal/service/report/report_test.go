package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ponto/backend/internal/repository/postgres/punch"
	"ponto/backend/internal/service/report"
	"ponto/backend/internal/service/timeclock"
)

func sampleHistory() punch.HistoryResponse {
	day, _ := time.ParseInLocation("2006-01-02", "2025-03-10", timeclock.Location)
	records := []timeclock.Punch{
		{ID: 1, UserID: 7, Type: timeclock.Entry, Time: day.Add(9 * time.Hour)},
		{ID: 2, UserID: 7, Type: timeclock.LunchStart, Time: day.Add(12 * time.Hour)},
		{ID: 3, UserID: 7, Type: timeclock.LunchEnd, Time: day.Add(13 * time.Hour)},
		{ID: 4, UserID: 7, Type: timeclock.Exit, Time: day.Add(18 * time.Hour)},
	}
	return punch.BuildHistory(timeclock.GroupByDay(records))
}

// TestPDFFilename monta o nome de download com o nome do funcionário.
func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "Relatorio_Ponto_Maria_da_Silva.pdf", report.PDFFilename("Maria da Silva"))
	assert.Equal(t, "Relatorio_Ponto_Jose.pdf", report.PDFFilename("Jose"))
}

// TestPDF_GeraDocumento gera um PDF não vazio com o cabeçalho do formato.
func TestPDF_GeraDocumento(t *testing.T) {
	employee := report.EmployeeInfo{EmployeeID: "E001", Name: "Maria da Silva", Email: "maria@example.com"}

	out, err := report.PDF(employee, sampleHistory())

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

// TestExcel_GeraPlanilha gera um arquivo xlsx não vazio. O formato xlsx é um
// zip, então os primeiros bytes são a assinatura PK.
func TestExcel_GeraPlanilha(t *testing.T) {
	employee := report.EmployeeInfo{EmployeeID: "E001", Name: "Maria da Silva", Email: "maria@example.com"}

	out, err := report.Excel(employee, sampleHistory())

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("PK")))
}

// TestPDF_HistoricoVazio não falha com período sem batidas.
func TestPDF_HistoricoVazio(t *testing.T) {
	employee := report.EmployeeInfo{EmployeeID: "E001", Name: "Jose"}

	out, err := report.PDF(employee, punch.BuildHistory(nil))

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}
