package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BuzzLyutic/kanban-backend/internal/model"
	"github.com/BuzzLyutic/kanban-backend/internal/repo"
)

var (
	ErrNoFields = errors.New("no fields to update")
	ErrRefetch  = errors.New("failed to fetch updated task")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Board раскладывает все задачи по трем колонкам.
// Задачи с нераспознанной колонкой молча выпадают из всех трех списков.
func (s *TaskService) Board(ctx context.Context) (model.Board, error) {
	board := model.Board{
		Todo:      make([]model.Task, 0),
		Active:    make([]model.Task, 0),
		Completed: make([]model.Task, 0),
	}

	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		return board, err
	}

	for _, t := range tasks {
		switch t.Column {
		case model.ColumnTodo:
			board.Todo = append(board.Todo, t)
		case model.ColumnActive:
			board.Active = append(board.Active, t)
		case model.ColumnCompleted:
			board.Completed = append(board.Completed, t)
		}
	}

	return board, nil
}

func (s *TaskService) Create(ctx context.Context, text string) (model.Task, error) {
	t := model.Task{
		// Единственный механизм уникальности — текущее время в миллисекундах.
		// Две вставки в одну миллисекунду получат одинаковый id.
		TaskID: fmt.Sprintf("task-%d", time.Now().UnixMilli()),
		Text:   text,
		Column: model.ColumnTodo, // Колонка клиента игнорируется
	}

	if err := s.repo.Insert(ctx, t); err != nil {
		return t, err
	}
	return t, nil
}

// Update применяет частичный $set и перечитывает документ.
// Между двумя операциями возможен конкурентный delete — тогда ErrorVanished.
func (s *TaskService) Update(ctx context.Context, taskID string, req model.UpdateTaskRequest) (model.Task, error) {
	fields := bson.M{}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.Column != nil {
		fields["column"] = *req.Column
	}

	if len(fields) == 0 {
		return model.Task{}, ErrNoFields
	}

	if err := s.repo.UpdateFields(ctx, taskID, fields); err != nil {
		return model.Task{}, err
	}

	t, err := s.repo.GetByTaskID(ctx, taskID)
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		return t, repo.ErrorVanished
	case err != nil:
		return t, fmt.Errorf("%w: %w", ErrRefetch, err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	return s.repo.Delete(ctx, taskID)
}
