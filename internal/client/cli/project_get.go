package cli

import (
	"github.com/spf13/cobra"
)

// NewProjectGetCmd создаёт команду получения проекта по id.
//
// При непустом --city сервер вернёт документ, datasets которого отфильтрованы
// по значению города. Флаг --field задаёт имя поля для фильтра (по умолчанию
// сервер использует поле "cidade").
//
// Примеры использования:
//
//	maono project get --id 0b7e...c1
//	maono project get --id 0b7e...c1 --city Recife
//	maono project get --id 0b7e...c1 --city Natal --field municipio
func NewProjectGetCmd(app *App) *cobra.Command {
	var id, city, field string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Получить проект (опционально с фильтром по городу)",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.GetProject(token, id, city, field)
			if err != nil {
				return err
			}

			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "project id")
	cmd.Flags().StringVar(&city, "city", "", "filter datasets by city value")
	cmd.Flags().StringVar(&field, "field", "", "field name for the city filter")
	cmd.MarkFlagRequired("id")

	return cmd
}
