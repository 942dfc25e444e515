package adaptor

import (
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	render  *Renderer
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, render *Renderer, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		render:  render,
		log:     log.With(zap.String("handler", "room")),
	}
}

// Overview handles GET /newroom
func (h *RoomHandler) Overview(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Overview(r.Context())
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "room overview")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplRooms, page)
}

// Save handles POST /newroom
func (h *RoomHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveRoomRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "save room")
		return
	}

	page, err := h.service.Save(r.Context(), &req)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "save room")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplRooms, page)
}
