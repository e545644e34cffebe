package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/maono-vis/maono-api/internal/server/config"
	"github.com/maono-vis/maono-api/internal/server/keplerfilter"
	"github.com/maono-vis/maono-api/internal/server/service/models"
	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// ProjectsService реализует бизнес-логику работы с проектами.
//
// Ответственность:
//   - owner-scoped CRUD поверх ProjectsRepo
//   - валидация входных данных (имя и документ обязательны)
//   - применение фильтра по городу при чтении одного проекта
type ProjectsService struct {
	projects ProjectsRepo
}

// NewProjectsService создаёт ProjectsService.
func NewProjectsService(projects ProjectsRepo) *ProjectsService {
	return &ProjectsService{projects: projects}
}

// List возвращает проекты пользователя (свежие сверху).
func (s *ProjectsService) List(ctx context.Context, userID string) ([]models.ProjectSummary, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, serr.ErrUnauthorized
	}
	return s.projects.List(ctx, ownerID)
}

// Get возвращает один проект пользователя.
//
// Если city непустой, к документу применяется фильтр по полю field;
// пустой field заменяется дефолтным именем поля города ("cidade").
//
// Ошибки:
//   - ErrNotFound — проекта нет или он чужой
//   - ErrFieldNotFound — поле фильтра не найдено ни в одном датасете
func (s *ProjectsService) Get(ctx context.Context, userID, projectID, city, field string) (models.ProjectDetail, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return models.ProjectDetail{}, serr.ErrUnauthorized
	}
	id, err := uuid.Parse(projectID)
	if err != nil {
		return models.ProjectDetail{}, serr.ErrNotFound
	}

	p, err := s.projects.Get(ctx, ownerID, id)
	if err != nil {
		return models.ProjectDetail{}, err
	}

	if city != "" {
		if field == "" {
			field = config.DefaultCityField
		}
		filtered, err := keplerfilter.FilterJSON(p.JSONData, field, city)
		if err != nil {
			return models.ProjectDetail{}, err
		}
		p.JSONData = filtered
	}

	return p, nil
}

// Create сохраняет новый проект.
//
// Ошибки:
//   - ErrInvalidInput — пустое имя или пустой документ
func (s *ProjectsService) Create(ctx context.Context, userID, name string, jsonData json.RawMessage) (uuid.UUID, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, serr.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" || emptyDocument(jsonData) {
		return uuid.Nil, serr.ErrInvalidInput
	}

	return s.projects.Create(ctx, ownerID, name, jsonData)
}

// Update перезаписывает имя и документ проекта.
//
// Ошибки:
//   - ErrInvalidInput — пустое имя или пустой документ
//   - ErrNotFound — проекта нет или он чужой
func (s *ProjectsService) Update(ctx context.Context, userID, projectID, name string, jsonData json.RawMessage) error {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return serr.ErrUnauthorized
	}
	id, err := uuid.Parse(projectID)
	if err != nil {
		return serr.ErrNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" || emptyDocument(jsonData) {
		return serr.ErrInvalidInput
	}

	return s.projects.Update(ctx, ownerID, id, name, jsonData)
}

// Delete удаляет проект пользователя.
func (s *ProjectsService) Delete(ctx context.Context, userID, projectID string) error {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return serr.ErrUnauthorized
	}
	id, err := uuid.Parse(projectID)
	if err != nil {
		return serr.ErrNotFound
	}

	return s.projects.Delete(ctx, ownerID, id)
}

// emptyDocument — документ отсутствует, если поле не пришло вовсе
// или пришло как JSON null.
func emptyDocument(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
