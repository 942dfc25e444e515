package adaptor

import (
	"net/http"

	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type GraphHandler struct {
	service usecase.GraphService
	render  *Renderer
	log     *zap.Logger
}

func NewGraphHandler(service usecase.GraphService, render *Renderer, log *zap.Logger) *GraphHandler {
	return &GraphHandler{
		service: service,
		render:  render,
		log:     log.With(zap.String("handler", "graph")),
	}
}

// Visualize handles GET /db-visualization
func (h *GraphHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Build(r.Context())
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "build graph")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplGraph, page)
}
