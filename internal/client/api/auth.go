package api

import (
	sharedModels "github.com/maono-vis/maono-api/internal/shared/models"
)

// SignupRequest — тело запроса регистрации.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup регистрирует нового пользователя на сервере.
//
// Эндпоинт: POST /auth/signup.
//
// Возвращает токен доступа, выданный сервером сразу после регистрации.
func (c *Client) Signup(email, password string) (sharedModels.TokenResponse, error) {
	req := SignupRequest{Email: email, Password: password}

	var resp sharedModels.TokenResponse
	if err := c.PostJSON("/auth/signup", req, &resp, ""); err != nil {
		return sharedModels.TokenResponse{}, err
	}
	return resp, nil
}

// Login выполняет вход пользователя.
//
// Эндпоинт: POST /auth/login.
//
// Возвращает токен доступа для последующих запросов к /projects.
func (c *Client) Login(email, password string) (sharedModels.TokenResponse, error) {
	req := LoginRequest{Email: email, Password: password}

	var resp sharedModels.TokenResponse
	if err := c.PostJSON("/auth/login", req, &resp, ""); err != nil {
		return sharedModels.TokenResponse{}, err
	}
	return resp, nil
}
