package tests

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/maono-vis/maono-api/internal/server/service"
	svcmocks "github.com/maono-vis/maono-api/internal/server/service/mocks"
	"github.com/maono-vis/maono-api/internal/server/service/models"
	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

func newProjectsService(t *testing.T) (*service.ProjectsService, *svcmocks.MockProjectsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	projects := svcmocks.NewMockProjectsRepo(ctrl)
	return service.NewProjectsService(projects), projects
}

// документ с датасетом, у которого есть поле cidade
const cityDocJSON = `{
	"datasets": [
		{"data": {
			"fields": [{"name": "cidade"}, {"name": "valor"}],
			"rows": [["Recife", 10], ["Natal", 30]]
		}}
	]
}`

func TestProjectsService_List_OK(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()

	repo.EXPECT().
		List(gomock.Any(), owner).
		Return([]models.ProjectSummary{{ID: uuid.New(), Name: "mapa"}}, nil)

	got, err := svc.List(context.Background(), owner.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 project, got %d", len(got))
	}
}

func TestProjectsService_List_BadUserID(t *testing.T) {
	t.Parallel()

	svc, _ := newProjectsService(t)

	if _, err := svc.List(context.Background(), "not-a-uuid"); err != serr.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectsService_Get_NoFilter(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	project := uuid.New()

	repo.EXPECT().
		Get(gomock.Any(), owner, project).
		Return(models.ProjectDetail{ID: project, Name: "mapa", JSONData: json.RawMessage(cityDocJSON)}, nil)

	got, err := svc.Get(context.Background(), owner.String(), project.String(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// без city документ не трогаем
	if string(got.JSONData) != cityDocJSON {
		t.Fatalf("expected document unchanged, got %s", got.JSONData)
	}
}

// city без field фильтрует по дефолтному полю cidade
func TestProjectsService_Get_CityFilterDefaultField(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	project := uuid.New()

	repo.EXPECT().
		Get(gomock.Any(), owner, project).
		Return(models.ProjectDetail{ID: project, Name: "mapa", JSONData: json.RawMessage(cityDocJSON)}, nil)

	got, err := svc.Get(context.Background(), owner.String(), project.String(), "Recife", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(got.JSONData, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rows := doc["datasets"].([]any)[0].(map[string]any)["data"].(map[string]any)["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestProjectsService_Get_FilterFieldNotFound(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	project := uuid.New()

	repo.EXPECT().
		Get(gomock.Any(), owner, project).
		Return(models.ProjectDetail{ID: project, Name: "mapa", JSONData: json.RawMessage(cityDocJSON)}, nil)

	_, err := svc.Get(context.Background(), owner.String(), project.String(), "Recife", "municipio")
	if err != serr.ErrFieldNotFound {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

// некорректный id проекта неотличим от несуществующего
func TestProjectsService_Get_BadProjectID(t *testing.T) {
	t.Parallel()

	svc, _ := newProjectsService(t)

	_, err := svc.Get(context.Background(), uuid.New().String(), "not-a-uuid", "", "")
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectsService_Create_OK(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	id := uuid.New()
	doc := json.RawMessage(`{"datasets":[]}`)

	repo.EXPECT().
		Create(gomock.Any(), owner, "mapa", doc).
		Return(id, nil)

	got, err := svc.Create(context.Background(), owner.String(), " mapa ", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}
}

func TestProjectsService_Create_InvalidInput(t *testing.T) {
	t.Parallel()

	svc, _ := newProjectsService(t)

	owner := uuid.New().String()

	if _, err := svc.Create(context.Background(), owner, "  ", json.RawMessage(`{}`)); err != serr.ErrInvalidInput {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), owner, "mapa", nil); err != serr.ErrInvalidInput {
		t.Fatalf("nil document: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), owner, "mapa", json.RawMessage(`null`)); err != serr.ErrInvalidInput {
		t.Fatalf("null document: expected ErrInvalidInput, got %v", err)
	}
}

func TestProjectsService_Update_OK(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	project := uuid.New()
	doc := json.RawMessage(`{"datasets":[]}`)

	repo.EXPECT().
		Update(gomock.Any(), owner, project, "mapa v2", doc).
		Return(nil)

	if err := svc.Update(context.Background(), owner.String(), project.String(), "mapa v2", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProjectsService_Update_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	project := uuid.New()

	repo.EXPECT().
		Update(gomock.Any(), owner, project, "mapa", gomock.Any()).
		Return(serr.ErrNotFound)

	err := svc.Update(context.Background(), owner.String(), project.String(), "mapa", json.RawMessage(`{}`))
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectsService_Delete_OK(t *testing.T) {
	t.Parallel()

	svc, repo := newProjectsService(t)

	owner := uuid.New()
	project := uuid.New()

	repo.EXPECT().
		Delete(gomock.Any(), owner, project).
		Return(nil)

	if err := svc.Delete(context.Background(), owner.String(), project.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProjectsService_Delete_BadProjectID(t *testing.T) {
	t.Parallel()

	svc, _ := newProjectsService(t)

	if err := svc.Delete(context.Background(), uuid.New().String(), "42"); err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
