package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ponto/backend/internal/repository/postgres/punch"
)

// Excel writes the same report as an xlsx workbook, one row per punch.
func Excel(employee EmployeeInfo, history punch.HistoryResponse) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Employee ID", "Name", "Date", "Type", "Time", "Daily Total"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	rowNum := 2
	for _, day := range history.Days {
		for i, rec := range day.Records {
			label, ok := typeLabels[rec.Type]
			if !ok {
				label = rec.Type
			}

			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), employee.EmployeeID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), employee.Name)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), day.Date.Format("02/01/2006"))
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), label)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), rec.Time)
			// Daily total only on the first row of each day.
			if i == 0 {
				f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), day.DailyTotal)
			}
			rowNum++
		}
	}

	f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum+1), "Total:")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum+1), history.GrandTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
