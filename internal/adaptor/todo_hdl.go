package adaptor

import (
	"errors"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type TodoHandler struct {
	service usecase.TodoService
	render  *Renderer
	log     *zap.Logger
}

func NewTodoHandler(service usecase.TodoService, render *Renderer, log *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		render:  render,
		log:     log.With(zap.String("handler", "todo")),
	}
}

// List handles GET /
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	page, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "list todos")
		return
	}

	h.render.Page(w, r, http.StatusOK, tplTodos, page)
}

// Create handles POST /
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	var req request.CreateTodoRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "create todo")
		return
	}

	todo, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.render, h.log, w, r, err, "create todo")
		return
	}

	h.render.SeeOther(w, r, "/", http.StatusCreated, h.render.Text(r, i18n.TodoCreated), todo)
}

// Complete handles POST /complete
func (h *TodoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.render.Error(w, r, http.StatusUnauthorized, h.render.Text(r, i18n.AuthRequired))
		return
	}

	var req request.CompleteTodoRequest
	if err := decodeRequest(r, &req); err != nil {
		badRequest(h.render, h.log, w, r, err, "complete todo")
		return
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		h.log.Warn("complete todo validation failed", zap.Any("errors", errs))
		h.render.Error(w, r, http.StatusBadRequest,
			h.render.Text(r, i18n.ValidationFailed, utils.FormatValidationErrors(errs)))
		return
	}

	err := h.service.Complete(r.Context(), userID, req.ID)
	switch {
	case errors.Is(err, usecase.ErrNotFound) && !utils.WantsJSON(r):
		// browsers just see the unchanged list
	case err != nil:
		handleServiceError(h.render, h.log, w, r, err, "complete todo")
		return
	}

	h.render.SeeOther(w, r, "/", http.StatusOK, h.render.Text(r, i18n.TodoCompleted), nil)
}
