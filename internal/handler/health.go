package handler

import (
	"net/http"

	"github.com/BuzzLyutic/kanban-backend/pkg/respond"
)

// Health не проверяет доступность БД — отвечает всегда.
func Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "kanban-backend",
	})
}
