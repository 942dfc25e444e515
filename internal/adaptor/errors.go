package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"room-booking/internal/usecase"
	"room-booking/pkg/i18n"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to responses. Unexpected errors
// are logged and reported without detail.
func handleServiceError(rd *Renderer, log *zap.Logger, w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		rd.Error(w, r, http.StatusBadRequest, rd.Text(r, i18n.ValidationFailed, validationDetail(err)))

	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrDemoLoginDisabled):
		log.Warn(operation+" failed - not found", zap.Error(err))
		rd.Error(w, r, http.StatusNotFound, rd.Text(r, i18n.NotFound))

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		rd.Error(w, r, http.StatusUnauthorized, rd.Text(r, i18n.LoginFailed))

	case errors.Is(err, usecase.ErrUsernameTaken):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		rd.Error(w, r, http.StatusConflict, rd.Text(r, i18n.UsernameTaken))

	case errors.Is(err, usecase.ErrInvalidSignature):
		log.Warn(operation+" failed - invalid signature")
		rd.Error(w, r, http.StatusUnauthorized, rd.Text(r, i18n.DeployUnauthorized))

	default:
		log.Error(operation+" failed", zap.Error(err))
		rd.Error(w, r, http.StatusInternalServerError, rd.Text(r, i18n.InternalError))
	}
}

func badRequest(rd *Renderer, log *zap.Logger, w http.ResponseWriter, r *http.Request, err error, operation string) {
	log.Warn(operation+" - malformed request", zap.Error(err))
	rd.Error(w, r, http.StatusBadRequest, rd.Text(r, i18n.ValidationFailed, "malformed request"))
}

func validationDetail(err error) string {
	_, detail, ok := strings.Cut(err.Error(), usecase.ErrValidation.Error()+": ")
	if !ok {
		return err.Error()
	}
	return detail
}
