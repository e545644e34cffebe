// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/maono-vis/maono-api/internal/server/service/models"
	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// ProjectsRepository реализует хранилище проектов (PostgreSQL).
//
// Все запросы фильтруют по user_id: проект другого пользователя
// снаружи неотличим от несуществующего (везде ErrNotFound).
type ProjectsRepository struct {
	db *sql.DB
}

// NewProjectsRepository создаёт новый экземпляр ProjectsRepository.
func NewProjectsRepository(db *sql.DB) *ProjectsRepository {
	return &ProjectsRepository{db: db}
}

// List возвращает проекты пользователя, отсортированные по updated_at
// по убыванию (недавно изменённые сверху).
//
// Если проектов нет — пустой срез без ошибки.
func (r *ProjectsRepository) List(ctx context.Context, ownerID uuid.UUID) ([]models.ProjectSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, ownerID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	projects := []models.ProjectSummary{}
	for rows.Next() {
		var p models.ProjectSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return projects, nil
}

// Get возвращает один проект пользователя вместе с kepler JSON.
//
// Ошибки:
//   - ErrNotFound — проекта нет либо он принадлежит другому пользователю
//   - ErrInternal — ошибка базы данных
func (r *ProjectsRepository) Get(ctx context.Context, ownerID, projectID uuid.UUID) (models.ProjectDetail, error) {
	var (
		p    models.ProjectDetail
		data []byte
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, json_data
		FROM projects
		WHERE id = $1 AND user_id = $2
	`, projectID, ownerID).Scan(&p.ID, &p.Name, &data)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.ProjectDetail{}, serr.ErrNotFound
		}
		return models.ProjectDetail{}, serr.ErrInternal
	}

	p.JSONData = json.RawMessage(data)
	return p, nil
}

// Create сохраняет новый проект пользователя.
//
// created_at и updated_at проставляет база, на вставке они равны.
func (r *ProjectsRepository) Create(ctx context.Context, ownerID uuid.UUID, name string, jsonData json.RawMessage) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO projects (user_id, name, json_data)
		VALUES ($1, $2, $3)
		RETURNING id
	`, ownerID, name, []byte(jsonData)).Scan(&id)

	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

// Update перезаписывает имя и документ проекта и обновляет updated_at.
//
// Обновление идёт одним UPDATE по паре (id, user_id): ноль затронутых
// строк означает "нет такого проекта у этого пользователя" — ErrNotFound.
// Конкурентные обновления работают по принципу last-write-wins.
func (r *ProjectsRepository) Update(ctx context.Context, ownerID, projectID uuid.UUID, name string, jsonData json.RawMessage) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET name = $1, json_data = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
	`, name, []byte(jsonData), projectID, ownerID)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}

	return nil
}

// Delete удаляет проект пользователя.
//
// Семантика как у Update: ноль затронутых строк — ErrNotFound.
func (r *ProjectsRepository) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM projects
		WHERE id = $1 AND user_id = $2
	`, projectID, ownerID)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}

	return nil
}
