package dto

import (
	"todoapi/internal/domains/todo/model"
)

type CreateTodoRequest struct {
	Content   string `json:"content"   validate:"required,min=1"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest carries a partial update. Pointer fields distinguish an
// absent field from an explicit zero value, so absent fields stay untouched.
type UpdateTodoRequest struct {
	Content   *string `db:"content"   json:"content"   validate:"omitempty,min=1"`
	Completed *bool   `db:"completed" json:"completed"`
}

type TodoResponse struct {
	TodoID    int64  `json:"todo_id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.TodoID = model.TodoID
	r.Content = model.Content
	r.Completed = model.Completed
}

func FromModels(models []model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
