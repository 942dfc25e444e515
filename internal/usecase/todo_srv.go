package usecase

import (
	"context"
	"fmt"
	"strings"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type TodoService interface {
	List(ctx context.Context, userID int64) (*response.TodoPage, error)
	Create(ctx context.Context, userID int64, req *request.CreateTodoRequest) (*response.TodoResponse, error)
	// Complete deletes the todo; another user's todo is reported as ErrNotFound.
	Complete(ctx context.Context, userID, todoID int64) error
}

type todoService struct {
	todos repository.TodoRepository
	log   *zap.Logger
}

func NewTodoService(todos repository.TodoRepository, log *zap.Logger) TodoService {
	return &todoService{
		todos: todos,
		log:   log.With(zap.String("service", "todo")),
	}
}

func (s *todoService) List(ctx context.Context, userID int64) (*response.TodoPage, error) {
	todos, err := s.todos.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := &response.TodoPage{Todos: make([]response.TodoResponse, 0, len(todos))}
	for _, todo := range todos {
		page.Todos = append(page.Todos, response.TodoToResponse(todo))
	}
	return page, nil
}

func (s *todoService) Create(ctx context.Context, userID int64, req *request.CreateTodoRequest) (*response.TodoResponse, error) {
	// blank content is rejected, but the text is stored as submitted
	check := *req
	check.Content = strings.TrimSpace(req.Content)
	if errs := utils.ValidateStruct(&check); len(errs) > 0 {
		return nil, validationError(errs)
	}

	due, err := utils.ParseDateTime(req.DueAt)
	if err != nil {
		return nil, invalidInput("due_at: %v", err)
	}

	todo := &entity.Todo{
		UserID:  userID,
		Content: req.Content,
		Due:     due,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.Info("Todo created", zap.Int64("todo_id", todo.ID), zap.Int64("user_id", userID))

	resp := response.TodoToResponse(todo)
	return &resp, nil
}

func (s *todoService) Complete(ctx context.Context, userID, todoID int64) error {
	deleted, err := s.todos.DeleteOwned(ctx, todoID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		s.log.Warn("Todo not completed: missing or foreign",
			zap.Int64("todo_id", todoID),
			zap.Int64("user_id", userID))
		return fmt.Errorf("todo %d: %w", todoID, ErrNotFound)
	}

	s.log.Info("Todo completed", zap.Int64("todo_id", todoID), zap.Int64("user_id", userID))
	return nil
}
