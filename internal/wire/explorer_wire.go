package wire

import (
	"net/http"

	"room-booking/internal/adaptor"
	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/pkg/i18n"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireExplorer(
	r chi.Router,
	explorerHandler *adaptor.ExplorerHandler,
	graphHandler *adaptor.GraphHandler,
	render *adaptor.Renderer,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))
		if config.App.ExplorerStaffOnly {
			denied := func(req *http.Request) string { return render.Text(req, i18n.AccessDenied) }
			r.Use(middleware.RequireRole(entity.RoleStaff, denied, log))
		}

		r.Get("/dbexplorer", explorerHandler.Tables)
		r.Post("/dbexplorer", explorerHandler.Explore)
		r.Get("/db-visualization", graphHandler.Visualize)
	})
}
