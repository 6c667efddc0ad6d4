package http

import (
	"net/http"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/home"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
)

type HomeHandler interface {
	Widgets(w http.ResponseWriter, r *http.Request)
}

type homeHandlerImpl struct {
	homeService home.HomeService
}

func NewHomeHandler(homeService home.HomeService) HomeHandler {
	return &homeHandlerImpl{homeService: homeService}
}

func (h *homeHandlerImpl) Widgets(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	resp, err := h.homeService.Widgets(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
