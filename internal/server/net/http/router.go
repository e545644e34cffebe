// Package http реализует маршрутизацию HTTP-слоя сервера maono-api.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - CORS-заголовки на каждом ответе и обработку preflight (OPTIONS);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку сессионных токенов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/maono-vis/maono-api/internal/server/api"
	"github.com/maono-vis/maono-api/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования и CORS для всех запросов (в том числе 404);
//   - /health и swagger без авторизации;
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - группу защищённых токеном эндпоинтов /projects.
//
// corsOrigin — значение Access-Control-Allow-Origin из конфига.
func NewRouter(h *api.Handler, corsOrigin string) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// CORS на каждый ответ + 204 на OPTIONS
	r.Use(middleware.CORSMiddleware(corsOrigin))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", h.Health)
	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка сессионного токена
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для проектов
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)         // список проектов пользователя
			r.Post("/", h.CreateProject)       // создание проекта
			r.Get("/{id}", h.GetProject)       // один проект, опционально ?city=&field=
			r.Put("/{id}", h.UpdateProject)    // обновляем имя и документ по id
			r.Delete("/{id}", h.DeleteProject) // удаляем проект по id
		})
	})

	// всё остальное — 404 с JSON-телом, метод тоже не раскрываем
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
