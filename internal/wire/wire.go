// internal/wire/wire.go
package wire

import (
	"fmt"
	"net/http"

	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/internal/usecase"
	"room-booking/pkg/i18n"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"
	"room-booking/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	puller usecase.Puller,
	translator *i18n.Translator,
	logger *zap.Logger,
) (*App, error) {
	render, err := adaptor.NewRenderer(web.Templates, web.Layout, translator, logger)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	service := usecase.NewService(repo, config, puller, logger)
	handler := adaptor.NewHandler(service, render, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireTodo(r, handler.Todo, repo, config, logger)
	wireRoom(r, handler.Room, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireExplorer(r, handler.Explorer, handler.Graph, handler.Render, repo, config, logger)
	wireWebhook(r, handler.Webhook)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
