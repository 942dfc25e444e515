package usecase

import (
	"context"
	"fmt"
	"strings"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/response"

	"go.uber.org/zap"
)

type GraphService interface {
	// Build returns one node per user and per todo; every todo imports the
	// user its user_id references.
	Build(ctx context.Context) (*response.GraphPage, error)
}

type graphService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGraphService(repo *repository.Repository, log *zap.Logger) GraphService {
	return &graphService{
		repo: repo,
		log:  log.With(zap.String("service", "graph")),
	}
}

func UserNodeName(id int64) string { return fmt.Sprintf("db.users.user_%d", id) }

func TodoNodeName(id int64) string { return fmt.Sprintf("db.todos.todo_%d", id) }

func (s *graphService) Build(ctx context.Context) (*response.GraphPage, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	todos, err := s.repo.Todo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]response.GraphNode, 0, len(users)+len(todos))
	for _, u := range users {
		nodes = append(nodes, response.GraphNode{
			Name:    UserNodeName(u.ID),
			Label:   u.Username,
			Type:    "user",
			Imports: []string{},
		})
	}

	for _, t := range todos {
		label := strings.TrimSpace(t.Content)
		if label == "" {
			label = fmt.Sprintf("todo #%d", t.ID)
		}
		nodes = append(nodes, response.GraphNode{
			Name:    TodoNodeName(t.ID),
			Label:   label,
			Type:    "todo",
			Imports: []string{UserNodeName(t.UserID)},
		})
	}

	s.log.Debug("Graph built", zap.Int("users", len(users)), zap.Int("todos", len(todos)))
	return &response.GraphPage{Nodes: nodes}, nil
}
