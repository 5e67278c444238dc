package model

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "todo_id"
	FieldContent   = "content"
	FieldCompleted = "completed"
)

type Todo struct {
	TodoID    int64  `db:"todo_id"`
	Content   string `db:"content"`
	Completed bool   `db:"completed"`
}
