package request

type CreateTodoRequest struct {
	Content string `json:"contents" form:"contents" validate:"required,max=1000"`
	DueAt   string `json:"due_at" form:"due_at" validate:"required"`
}

type CompleteTodoRequest struct {
	ID int64 `json:"id" form:"id" validate:"required,gt=0"`
}
