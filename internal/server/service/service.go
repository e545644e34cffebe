// Package service содержит бизнес-логику приложения (maono-api).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/maono-vis/maono-api/internal/server/config"
	"github.com/maono-vis/maono-api/internal/server/service/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Projects ProjectsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Projects *ProjectsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, cfg),
		Projects: NewProjectsService(repos.Projects),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
}

// ProjectsRepo — репозиторий проектов (owner-scoped CRUD).
type ProjectsRepo interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.ProjectSummary, error)
	Get(ctx context.Context, ownerID, projectID uuid.UUID) (models.ProjectDetail, error)
	Create(ctx context.Context, ownerID uuid.UUID, name string, jsonData json.RawMessage) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, projectID uuid.UUID, name string, jsonData json.RawMessage) error
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
}
