package adaptor

import (
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Todo     *TodoHandler
	Room     *RoomHandler
	Booking  *BookingHandler
	Explorer *ExplorerHandler
	Graph    *GraphHandler
	Webhook  *WebhookHandler

	Render *Renderer
}

func NewHandler(service *usecase.Service, render *Renderer, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config, render, log),
		Todo:     NewTodoHandler(service.Todo, render, log),
		Room:     NewRoomHandler(service.Room, render, log),
		Booking:  NewBookingHandler(service.Booking, render, log),
		Explorer: NewExplorerHandler(service.Explorer, render, log),
		Graph:    NewGraphHandler(service.Graph, render, log),
		Webhook:  NewWebhookHandler(service.Deploy, config.Webhook.MaxBodyBytes, render, log),

		Render: render,
	}
}
