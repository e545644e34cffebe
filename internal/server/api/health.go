package api

import (
	"errors"
	"net/http"

	"github.com/maono-vis/maono-api/internal/shared/models"
)

// Health — liveness-проверка, без авторизации.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}

// NotFound отвечает JSON-ошибкой на любой незарегистрированный маршрут.
// Используется и как NotFound, и как MethodNotAllowed хендлер роутера:
// снаружи оба случая выглядят одинаково — 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, errors.New("route not found"))
}
