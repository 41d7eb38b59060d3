package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BuzzLyutic/kanban-backend/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Insert(ctx context.Context, t model.Task) error
	ListAll(ctx context.Context) ([]model.Task, error)
	GetByTaskID(ctx context.Context, taskID string) (model.Task, error)
	UpdateFields(ctx context.Context, taskID string, fields bson.M) error
	Delete(ctx context.Context, taskID string) error
}
