package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"go.uber.org/zap"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Todo, error)
	FindAll(ctx context.Context) ([]*entity.Todo, error)
	// DeleteOwned removes a todo only if it belongs to userID.
	DeleteOwned(ctx context.Context, id, userID int64) (bool, error)
}

type todoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTodoRepository(db database.PgxIface, log *zap.Logger) TodoRepository {
	return &todoRepository{
		db:  db,
		log: log.With(zap.String("repository", "todo")),
	}
}

func (r *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	query := `
		INSERT INTO todos (user_id, content, due)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, todo.UserID, todo.Content, todo.Due).Scan(&todo.ID)
	if err != nil {
		r.log.Error("Failed to create todo",
			zap.Error(err),
			zap.Int64("user_id", todo.UserID),
		)
		return fmt.Errorf("create todo for user %d: %w", todo.UserID, err)
	}

	return nil
}

func (r *todoRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Todo, error) {
	query := `
		SELECT id, user_id, content, due
		FROM todos
		WHERE user_id = $1
		ORDER BY due
	`

	todos, err := r.scanAll(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find todos by user ID", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find todos by user ID %d: %w", userID, err)
	}
	return todos, nil
}

func (r *todoRepository) FindAll(ctx context.Context) ([]*entity.Todo, error) {
	query := `
		SELECT id, user_id, content, due
		FROM todos
		ORDER BY user_id, id
	`

	todos, err := r.scanAll(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all todos", zap.Error(err))
		return nil, fmt.Errorf("find all todos: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) DeleteOwned(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM todos WHERE user_id = $1 AND id = $2`

	n, err := database.Write(ctx, r.db, query, userID, id)
	if err != nil {
		r.log.Error("Failed to delete todo",
			zap.Error(err),
			zap.Int64("todo_id", id),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("delete todo %d: %w", id, err)
	}

	return n > 0, nil
}

func (r *todoRepository) scanAll(ctx context.Context, query string, args ...any) ([]*entity.Todo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*entity.Todo
	for rows.Next() {
		var todo entity.Todo
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Content, &todo.Due); err != nil {
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		todos = append(todos, &todo)
	}

	return todos, rows.Err()
}
