// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден (чужой проект выглядит так же — не палим существование)
	ErrNotFound = errors.New("not found")
)

// только для токенов
var (
	// Заголовок Authorization пустой или без Bearer
	ErrMissingToken = errors.New("missing token")
	// Подпись/структура токена не прошли проверку
	ErrInvalidToken = errors.New("invalid token")
	// Срок действия токена истёк
	ErrTokenExpired = errors.New("token expired")
)

// только для фильтра датасетов
var (
	// Поле не найдено ни в одном датасете документа
	ErrFieldNotFound = errors.New("field not found in any dataset")
	// Обобщённый ответ клиенту при ошибке фильтра, детали не раскрываем
	ErrFilterFailed = errors.New("could not apply filter")
)
