package usecase

import (
	"time"

	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Todo     TodoService
	Room     RoomService
	Booking  BookingService
	Explorer ExplorerService
	Graph    GraphService
	Deploy   DeployService
}

func NewService(repo *repository.Repository, config *utils.Config, puller Puller, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Todo:     NewTodoService(repo.Todo, log),
		Room:     NewRoomService(repo.Room, log),
		Booking:  NewBookingService(repo, log),
		Explorer: NewExplorerService(repo.Explorer, log),
		Graph:    NewGraphService(repo, log),
		Deploy:   NewDeployService(config.Webhook.Secret, puller, log),
	}
}

// clock is swapped in tests.
type clock func() time.Time
