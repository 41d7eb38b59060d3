package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-backend/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorVanished = errors.New("not found after update")
)

type TaskRepo struct { // Репозиторий для работы непосредственно с БД
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewTaskRepo(coll *mongo.Collection, logger *zap.Logger) *TaskRepo { // Конструктор
	return &TaskRepo{
		coll:   coll,
		logger: logger,
	}
}

func (r *TaskRepo) Insert(ctx context.Context, t model.Task) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

// ListAll вычитывает всю коллекцию без сортировки.
// Битые документы логируем и пропускаем, запрос не роняем.
func (r *TaskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]model.Task, 0)
	for cursor.Next(ctx) {
		var t model.Task
		if err := cursor.Decode(&t); err != nil {
			r.logger.Error("failed to decode task", zap.Error(err))
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, cursor.Err()
}

func (r *TaskRepo) GetByTaskID(ctx context.Context, taskID string) (model.Task, error) {
	var t model.Task
	err := r.coll.FindOne(ctx, bson.M{"taskId": taskID}).Decode(&t)

	if err == mongo.ErrNoDocuments {
		return t, ErrorNotFound
	}
	return t, err
}

// UpdateFields применяет $set только с переданными полями.
func (r *TaskRepo) UpdateFields(ctx context.Context, taskID string, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"taskId": taskID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, taskID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"taskId": taskID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrorNotFound
	}
	return nil
}
