package adaptor

import (
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type ExplorerHandler struct {
	service usecase.ExplorerService
	render  *Renderer
	log     *zap.Logger
}

func NewExplorerHandler(service usecase.ExplorerService, render *Renderer, log *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{
		service: service,
		render:  render,
		log:     log.With(zap.String("handler", "explorer")),
	}
}

// Tables handles GET /dbexplorer
func (h *ExplorerHandler) Tables(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Explore(r.Context(), nil)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "list tables")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplExplorer, page)
}

// Explore handles POST /dbexplorer
func (h *ExplorerHandler) Explore(w http.ResponseWriter, r *http.Request) {
	var req request.ExploreRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "explore tables")
		return
	}

	page, err := h.service.Explore(r.Context(), &req)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "explore tables")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplExplorer, page)
}
