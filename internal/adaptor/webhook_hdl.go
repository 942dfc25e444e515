package adaptor

import (
	"errors"
	"io"
	"net/http"

	"room-booking/internal/usecase"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	signatureHeader       = "X-Hub-Signature"
	signatureHeaderSHA256 = "X-Hub-Signature-256"
)

type WebhookHandler struct {
	service usecase.DeployService
	maxBody int64
	render  *Renderer
	log     *zap.Logger
}

func NewWebhookHandler(service usecase.DeployService, maxBody int64, render *Renderer, log *zap.Logger) *WebhookHandler {
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	return &WebhookHandler{
		service: service,
		maxBody: maxBody,
		render:  render,
		log:     log.With(zap.String("handler", "webhook")),
	}
}

// UpdateServer handles POST /update_server
func (h *WebhookHandler) UpdateServer(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get(signatureHeader)
	if header == "" {
		header = r.Header.Get(signatureHeaderSHA256)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseText(w, http.StatusRequestEntityTooLarge, "Payload too large")
			return
		}
		h.log.Warn("Failed to read webhook body", zap.Error(err))
		utils.ResponseText(w, http.StatusBadRequest, "Bad request")
		return
	}

	err = h.service.Deploy(r.Context(), header, body)
	switch {
	case errors.Is(err, usecase.ErrInvalidSignature):
		utils.ResponseText(w, http.StatusUnauthorized, h.render.MachineText(i18n.DeployUnauthorized))
	case err != nil:
		h.log.Error("Deployment failed", zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, h.render.MachineText(i18n.DeployFailed))
	default:
		utils.ResponseText(w, http.StatusOK, h.render.MachineText(i18n.DeploySucceeded))
	}
}
