package adaptor

import (
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	render  *Renderer
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, render *Renderer, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		render:  render,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Overview handles GET /booking
func (h *BookingHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	page, err := h.service.Overview(r.Context(), userID)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "booking overview")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplBooking, page)
}

// Book handles POST /booking. A conflict is a normal outcome shown on the page.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	var req request.CreateBookingRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "create booking")
		return
	}

	page, err := h.service.Book(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "create booking")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplBooking, page)
}

// CancelOverview handles GET /cancelation
func (h *BookingHandler) CancelOverview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	page, err := h.service.CancelOverview(r.Context(), userID)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "cancel overview")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplCancel, page)
}

// Cancel handles POST /cancelation
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	var req request.CancelBookingRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "cancel booking")
		return
	}

	page, err := h.service.Cancel(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "cancel booking")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplCancel, page)
}
