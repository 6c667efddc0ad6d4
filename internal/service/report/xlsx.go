package report

import (
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const wagesSheet = "Wages"

var wageHeaders = []string{"Name", "Role", "Shifts", "Hours", "Hourly Wage", "Pay"}

// WriteWagesXLSX renders the report as a single-sheet workbook: a title
// row, a header row, one row per staff member and a totals row.
func WriteWagesXLSX(wages report.WeeklyWageReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("Close workbook error", "error", err)
		}
	}()

	index, err := f.NewSheet(wagesSheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Wage report %s to %s", wages.WeekStart, wages.WeekEnd)
	if err := f.SetCellValue(wagesSheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(wagesSheet, "A1", "A1", boldStyle); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(wagesSheet, "A3", &wageHeaders); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(wagesSheet, "A3", "F3", boldStyle); err != nil {
		return nil, err
	}

	row := 4
	for _, w := range wages.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			w.Name,
			w.Role,
			w.Shifts,
			w.Hours,
			w.Wage.InexactFloat64(),
			w.Pay.InexactFloat64(),
		}
		if err := f.SetSheetRow(wagesSheet, cell, &values); err != nil {
			return nil, err
		}
		row++
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, row)
	totals := []interface{}{"Total", "", "", wages.TotalHours, "", wages.TotalPay.InexactFloat64()}
	if err := f.SetSheetRow(wagesSheet, totalCell, &totals); err != nil {
		return nil, err
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(wageHeaders), row)
	if err := f.SetCellStyle(wagesSheet, totalCell, lastCell, boldStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(wagesSheet, "E4", lastCell, moneyStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(wagesSheet, "A", "A", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
