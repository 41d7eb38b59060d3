package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Колонки доски. Column — свободная строка, в группировку попадают
// только эти три значения.
const (
	ColumnTodo      = "todo"
	ColumnActive    = "active"
	ColumnCompleted = "completed"
)

type Task struct {
	ID     *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TaskID string              `bson:"taskId" json:"taskId"`
	Text   string              `bson:"text" json:"text"`
	Column string              `bson:"column" json:"column"`
}

// Board — ответ на GET /api/tasks: задачи, разложенные по колонкам.
type Board struct {
	Todo      []Task `json:"todo"`
	Active    []Task `json:"active"`
	Completed []Task `json:"completed"`
}

type CreateTaskRequest struct {
	Text string `json:"text"`
}

// UpdateTaskRequest — оба поля опциональны, nil значит "не трогать".
type UpdateTaskRequest struct {
	Text   *string `json:"text"`
	Column *string `json:"column"`
}
