package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	dataService "github.com/cmlabs-hris/rota-backend-go/internal/service/data"
)

type DataHandler interface {
	Wipe(w http.ResponseWriter, r *http.Request)
}

type dataHandlerImpl struct {
	dataService dataService.DataService
}

func NewDataHandler(dataService dataService.DataService) DataHandler {
	return &dataHandlerImpl{dataService: dataService}
}

func (h *dataHandlerImpl) Wipe(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dataService.Wipe(r.Context())
	if err != nil {
		slog.Error("Wipe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
