package cli

import (
	"github.com/spf13/cobra"
)

// NewProjectListCmd создаёт команду вывода списка проектов пользователя.
//
// Список отсортирован сервером по времени последнего обновления (сначала новые).
//
// Пример использования:
//
//	maono project list
func NewProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список проектов пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListProjects(token)
			if err != nil {
				return err
			}

			return printJSON(cmd, resp)
		},
	}
}
