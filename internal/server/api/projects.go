package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maono-vis/maono-api/internal/server/middleware"
	"github.com/maono-vis/maono-api/internal/shared/models"

	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// ListProjects возвращает все проекты текущего пользователя.
//
// Пользователь определяется по сессионному токену (middleware).
// Документы в список не входят — только id, имя и таймстемпы,
// отсортированные по updatedAt по убыванию.
//
// ListProjects godoc
// @Summary      List projects
// @Description  Returns all projects belonging to the authenticated user,
// @Description  ordered by most recently updated first.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.ListProjectsResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}
	// вызываем сервис
	projects, err := h.Svc.Projects.List(r.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, serr.ErrUnauthorized) {
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
			return
		}
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	resp := models.ListProjectsResponse{
		Projects: make([]models.ProjectSummary, 0, len(projects)),
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, models.ProjectSummary{
			ID:        p.ID.String(),
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}

// GetProject возвращает один проект пользователя вместе с kepler JSON.
//
// Необязательные query-параметры:
//   - city: значение для фильтра строк датасетов;
//   - field: имя поля фильтра (по умолчанию "cidade").
//
// Ошибка фильтра наружу уходит обобщённой ("could not apply filter"),
// какое именно поле не нашлось — клиенту не сообщается.
//
// GetProject godoc
// @Summary      Get project
// @Description  Returns a single project with its kepler JSON document.
// @Description  Optional ?city=&field= apply a row filter to the document.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   string  true   "Project ID (UUID)"
// @Param        city   query  string  false  "City value to filter rows by"
// @Param        field  query  string  false  "Field name to filter on (default cidade)"
// @Success      200 {object} models.ProjectResponse
// @Failure      400 {object} api.ErrorResponse "Filter could not be applied"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects/{id} [get]
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	projectID := chi.URLParam(r, "id")
	city := r.URL.Query().Get("city")
	field := r.URL.Query().Get("field")

	p, err := h.Svc.Projects.Get(r.Context(), ident.UserID, projectID, city, field)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		case errors.Is(err, serr.ErrFieldNotFound), errors.Is(err, serr.ErrBadJSON):
			// детали фильтра не раскрываем
			WriteError(w, http.StatusBadRequest, serr.ErrFilterFailed)
		default:
			h.Log.Logger.Sugar().Errorw(
				"get project failed",
				"error", err,
				"user_id", ident.UserID,
				"project_id", projectID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.ProjectResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		KeplerJSON: p.JSONData,
	})
}

// CreateProject создаёт новый проект для аутентифицированного пользователя.
//
// Сервер хранит kepler JSON как есть и не валидирует его схему —
// только наличие.
//
// CreateProject godoc
// @Summary      Create project
// @Description  Creates a new project for the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.SaveProjectRequest true "Project name and kepler JSON"
// @Success      201 {object} models.CreateProjectResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id, err := h.Svc.Projects.Create(r.Context(), ident.UserID, req.Name, req.KeplerJSON)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		default:
			h.Log.Logger.Sugar().Errorw(
				"create project failed",
				"error", err,
				"user_id", ident.UserID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, models.CreateProjectResponse{ID: id.String()})
}

// UpdateProject обновляет существующий проект пользователя.
//
// Идентификатор проекта передаётся в URL-параметре {id}.
// Конкурентные обновления не сериализуются: побеждает последняя запись,
// optimistic locking здесь сознательно не делается.
//
// UpdateProject godoc
// @Summary      Update project
// @Description  Replaces name and kepler JSON of an existing project.
// @Description  Concurrent updates are last-write-wins.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                    true "Project ID (UUID)"
// @Param        request body  models.SaveProjectRequest true "Updated project data"
// @Success      200 {object} models.StatusResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects/{id} [put]
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	projectID := chi.URLParam(r, "id")

	err := h.Svc.Projects.Update(r.Context(), ident.UserID, projectID, req.Name, req.KeplerJSON)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update project failed",
				"error", err,
				"user_id", ident.UserID,
				"project_id", projectID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}

// DeleteProject удаляет проект пользователя.
//
// DeleteProject godoc
// @Summary      Delete project
// @Description  Deletes a project belonging to the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID (UUID)"
// @Success      200 {object} models.StatusResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects/{id} [delete]
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	projectID := chi.URLParam(r, "id")

	err := h.Svc.Projects.Delete(r.Context(), ident.UserID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete project failed",
				"error", err,
				"user_id", ident.UserID,
				"project_id", projectID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
