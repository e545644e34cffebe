package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewProjectCmd создаёт родительскую команду для операций над проектами.
//
// Подкоманды работают с сохранённым картографическим документом пользователя
// и требуют предварительного логина (токен из локального конфига).
func NewProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Операции над проектами (list/get/create/update/delete)",
	}

	cmd.AddCommand(NewProjectListCmd(app))
	cmd.AddCommand(NewProjectGetCmd(app))
	cmd.AddCommand(NewProjectCreateCmd(app))
	cmd.AddCommand(NewProjectUpdateCmd(app))
	cmd.AddCommand(NewProjectDeleteCmd(app))

	return cmd
}

// requireToken возвращает сохранённый токен доступа.
//
// Если токен отсутствует (пользователь не залогинен), возвращает ошибку
// с подсказкой выполнить login.
func requireToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.Token == "" {
		return "", errors.New("not logged in; run: maono login --email <email>")
	}
	return app.Creds.Token, nil
}

// readDocument читает kepler-документ проекта из файла либо из STDIN ("-").
//
// Документ проверяется на синтаксическую корректность JSON до отправки,
// чтобы пользователь получил понятную ошибку локально, а не 400 от сервера.
func readDocument(cmd *cobra.Command, file string) (json.RawMessage, error) {
	var (
		raw []byte
		err error
	)
	if file == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	if !json.Valid(raw) {
		return nil, errors.New("document is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

// printJSON выводит значение в stdout в формате JSON с отступами.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
