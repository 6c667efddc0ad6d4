package report

import (
	"github.com/shopspring/decimal"
)

// WageRow is one staff member's line on the weekly wage report.
type WageRow struct {
	StaffID    string          `json:"staffId"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Shifts     int             `json:"shifts"`
	Hours      float64         `json:"hours"`
	Wage       decimal.Decimal `json:"wage"`
	Pay        decimal.Decimal `json:"pay"`
	PayDisplay string          `json:"payDisplay"`
}

// WeeklyWageReport covers the seven days starting at WeekStart.
type WeeklyWageReport struct {
	WeekStart       string          `json:"weekStart"`
	WeekEnd         string          `json:"weekEnd"`
	Days            []string        `json:"days"`
	Rows            []WageRow       `json:"rows"`
	TotalHours      float64         `json:"totalHours"`
	TotalPay        decimal.Decimal `json:"totalPay"`
	TotalPayDisplay string          `json:"totalPayDisplay"`
}

// ExportFile is a generated spreadsheet ready to be streamed to the client.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
