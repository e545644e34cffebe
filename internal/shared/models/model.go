package models

import (
	"encoding/json"
	"time"
)

// ProjectSummary — элемент списка проектов пользователя.
//
// Используется в:
//
//	GET /projects
//
// Документ (kepler JSON) в списке не возвращается — только метаданные.
type ProjectSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListProjectsResponse — ответ эндпоинта получения всех проектов пользователя.
//
// Проекты отсортированы по updatedAt по убыванию (свежие сверху).
type ListProjectsResponse struct {
	Projects []ProjectSummary `json:"projects"`
}

// ProjectResponse — ответ эндпоинта получения одного проекта.
//
// Используется в:
//
//	GET /projects/{id}
//
// KeplerJSON — конфигурация визуализации как есть (или отфильтрованная,
// если в запросе был параметр ?city=...).
type ProjectResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	KeplerJSON json.RawMessage `json:"keplerJson"`
}

// SaveProjectRequest — запрос на создание или обновление проекта.
//
// Используется в:
//
//	POST /projects
//	PUT /projects/{id}
//
// Оба поля обязательны. KeplerJSON хранится сервером как есть,
// схема документа не валидируется.
type SaveProjectRequest struct {
	Name       string          `json:"name"`
	KeplerJSON json.RawMessage `json:"keplerJson"`
}

// CreateProjectResponse — ответ на создание проекта.
type CreateProjectResponse struct {
	ID string `json:"id"`
}

// TokenResponse — ответ signup/login с сессионным токеном.
type TokenResponse struct {
	Token string `json:"token"`
}

// StatusResponse — простой ответ вида {"status":"ok"}.
//
// Возвращается на PUT/DELETE проекта и на /health.
type StatusResponse struct {
	Status string `json:"status"`
}
