package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/maono-vis/maono-api/internal/server/repository"
	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

func TestProjectsRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	owner := uuid.New()
	p1 := uuid.New()
	p2 := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, created_at, updated_at\s+FROM projects`).
		WithArgs(owner).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
				AddRow(p1, "newer", now.Add(-time.Hour), now).
				AddRow(p2, "older", now.Add(-2*time.Hour), now.Add(-time.Hour)),
		)

	got, err := repo.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	// порядок строк сохраняется как отдала база
	if got[0].ID != p1 || got[1].ID != p2 {
		t.Fatalf("unexpected order: %v", got)
	}
}

// нет проектов — пустой срез, не nil и не ошибка
func TestProjectsRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	owner := uuid.New()

	mock.ExpectQuery(`SELECT id, name, created_at, updated_at\s+FROM projects`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	got, err := repo.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 projects, got %d", len(got))
	}
}

func TestProjectsRepository_Get_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	owner := uuid.New()
	project := uuid.New()
	doc := []byte(`{"datasets":[]}`)

	mock.ExpectQuery(`SELECT id, name, json_data\s+FROM projects`).
		WithArgs(project, owner).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "json_data"}).
				AddRow(project, "mapa", doc),
		)

	got, err := repo.Get(context.Background(), owner, project)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != project || got.Name != "mapa" {
		t.Fatalf("unexpected project: %+v", got)
	}
	if string(got.JSONData) != string(doc) {
		t.Fatalf("unexpected json: %s", got.JSONData)
	}
}

// чужой или несуществующий проект
func TestProjectsRepository_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	mock.ExpectQuery(`SELECT id, name, json_data\s+FROM projects`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), uuid.New(), uuid.New())
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectsRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	owner := uuid.New()
	id := uuid.New()
	doc := json.RawMessage(`{"datasets":[]}`)

	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs(owner, "mapa", []byte(doc)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	got, err := repo.Create(context.Background(), owner, "mapa", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}
}

func TestProjectsRepository_Update_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	owner := uuid.New()
	project := uuid.New()
	doc := json.RawMessage(`{"datasets":[]}`)

	mock.ExpectExec(`UPDATE projects`).
		WithArgs("mapa v2", []byte(doc), project, owner).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), owner, project, "mapa v2", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProjectsRepository_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	mock.ExpectExec(`UPDATE projects`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), uuid.New(), "mapa", json.RawMessage(`{}`))
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectsRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	owner := uuid.New()
	project := uuid.New()

	mock.ExpectExec(`DELETE FROM projects`).
		WithArgs(project, owner).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), owner, project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProjectsRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	mock.ExpectExec(`DELETE FROM projects`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectsRepository_Delete_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewProjectsRepository(db)

	mock.ExpectExec(`DELETE FROM projects`).
		WillReturnError(sql.ErrConnDone)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
