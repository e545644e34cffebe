package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maono-vis/maono-api/internal/client/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере maono-api,
// получает токен доступа и сохраняет его в локальный конфигурационный файл.
//
// Пароль запрашивается интерактивно со скрытым вводом либо читается из STDIN
// при флаге --password-stdin.
//
// Пример использования:
//
//	maono login --email user@example.com
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email         string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить токен доступа)",
		Long: `Логин пользователя.

Пример:
  maono login --email user@example.com
  echo -n "pass" | maono login --email user@example.com --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			app.Creds.Token = resp.Token

			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
