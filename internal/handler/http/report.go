package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Wages(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	now           func() time.Time
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService, now: time.Now}
}

// Wages serves the weekly wage report as JSON, or as a spreadsheet download
// with ?format=xlsx.
func (h *reportHandlerImpl) Wages(w http.ResponseWriter, r *http.Request) {
	weekStart, ok := weekStartParam(r, h.now())
	if !ok {
		response.HandleError(w, report.ErrInvalidWeek)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		file, err := h.reportService.ExportWeeklyWagesXLSX(r.Context(), weekStart)
		if err != nil {
			slog.Error("ExportWages service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.File(w, file.FileName, file.ContentType, file.Content)
		return
	}

	resp, err := h.reportService.WeeklyWages(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
