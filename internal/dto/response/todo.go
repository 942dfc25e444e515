package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type TodoResponse struct {
	ID      int64     `json:"id"`
	Content string    `json:"content"`
	Due     time.Time `json:"due"`
}

type TodoPage struct {
	Notice
	Todos []TodoResponse `json:"todos"`
}

func TodoToResponse(todo *entity.Todo) TodoResponse {
	return TodoResponse{
		ID:      todo.ID,
		Content: todo.Content,
		Due:     todo.Due,
	}
}
