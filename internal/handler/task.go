package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-backend/internal/model"
	"github.com/BuzzLyutic/kanban-backend/internal/repo"
	"github.com/BuzzLyutic/kanban-backend/internal/service"
	"github.com/BuzzLyutic/kanban-backend/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context())
	if err != nil {
		h.handleErrors(w, r, err, "Failed to fetch tasks")
		return
	}

	respond.JSON(w, r, http.StatusOK, board)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Create(r.Context(), req.Text)
	if err != nil {
		h.handleErrors(w, r, err, "Failed to create task")
		return
	}

	respond.JSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	var req model.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := h.service.Update(r.Context(), taskID, req)
	if err != nil {
		h.handleErrors(w, r, err, "Failed to update task")
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	if err := h.service.Delete(r.Context(), taskID); err != nil {
		h.handleErrors(w, r, err, "Failed to delete task")
		return
	}

	respond.Message(w, r, http.StatusOK, "Task deleted successfully")
}

// handleErrors переводит ошибки нижних слоев в HTTP-статусы.
// Детали внутренних ошибок остаются в логе, клиенту уходит fallback.
func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNoFields):
		respond.Error(w, r, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, repo.ErrorVanished):
		respond.Error(w, r, http.StatusNotFound, "Task not found after update")
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "Task not found")
	case errors.Is(err, service.ErrRefetch):
		h.logger.Error("refetch after update failed", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Failed to fetch updated task")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, fallback)
	}
}
