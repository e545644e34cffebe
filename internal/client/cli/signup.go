package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maono-vis/maono-api/internal/client/config"
)

// NewSignupCmd создаёт CLI-команду регистрации нового пользователя.
//
// Команда регистрирует пользователя на сервере maono-api, получает токен
// доступа и сохраняет его в локальный конфигурационный файл.
//
// Пароль запрашивается интерактивно со скрытым вводом либо читается из STDIN
// при флаге --password-stdin.
//
// Пример использования:
//
//	maono signup --email user@example.com
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email         string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя.

Пример:
  maono signup --email user@example.com
  echo -n "pass" | maono signup --email user@example.com --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Signup(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = resp.Token

			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signup ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for signup")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
