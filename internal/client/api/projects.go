package api

import (
	"net/url"

	sharedModels "github.com/maono-vis/maono-api/internal/shared/models"
)

// ListProjects возвращает список проектов текущего пользователя.
//
// Эндпоинт: GET /projects.
func (c *Client) ListProjects(accessToken string) (sharedModels.ListProjectsResponse, error) {
	var resp sharedModels.ListProjectsResponse
	if err := c.GetJSON("/projects", &resp, accessToken); err != nil {
		return sharedModels.ListProjectsResponse{}, err
	}
	return resp, nil
}

// GetProject возвращает проект по id.
//
// Эндпоинт: GET /projects/{id}.
//
// Параметры city и field опциональны: при непустом city сервер вернёт
// документ с отфильтрованными datasets, field задаёт имя поля для фильтра.
func (c *Client) GetProject(accessToken, id, city, field string) (sharedModels.ProjectResponse, error) {
	path := "/projects/" + url.PathEscape(id)

	q := url.Values{}
	if city != "" {
		q.Set("city", city)
	}
	if field != "" {
		q.Set("field", field)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp sharedModels.ProjectResponse
	if err := c.GetJSON(path, &resp, accessToken); err != nil {
		return sharedModels.ProjectResponse{}, err
	}
	return resp, nil
}

// CreateProject создаёт проект и возвращает его id.
//
// Эндпоинт: POST /projects.
func (c *Client) CreateProject(accessToken string, req sharedModels.SaveProjectRequest) (sharedModels.CreateProjectResponse, error) {
	var resp sharedModels.CreateProjectResponse
	if err := c.PostJSON("/projects", req, &resp, accessToken); err != nil {
		return sharedModels.CreateProjectResponse{}, err
	}
	return resp, nil
}

// UpdateProject перезаписывает имя и документ проекта.
//
// Эндпоинт: PUT /projects/{id}.
func (c *Client) UpdateProject(accessToken, id string, req sharedModels.SaveProjectRequest) (sharedModels.StatusResponse, error) {
	var resp sharedModels.StatusResponse
	if err := c.PutJSON("/projects/"+url.PathEscape(id), req, &resp, accessToken); err != nil {
		return sharedModels.StatusResponse{}, err
	}
	return resp, nil
}

// DeleteProject удаляет проект по id.
//
// Эндпоинт: DELETE /projects/{id}.
func (c *Client) DeleteProject(accessToken, id string) (sharedModels.StatusResponse, error) {
	var resp sharedModels.StatusResponse
	if err := c.DeleteJSON("/projects/"+url.PathEscape(id), &resp, accessToken); err != nil {
		return sharedModels.StatusResponse{}, err
	}
	return resp, nil
}
