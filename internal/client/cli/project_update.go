package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/maono-vis/maono-api/internal/shared/models"
)

// NewProjectUpdateCmd создаёт команду обновления проекта.
//
// Имя и документ перезаписываются целиком.
//
// Пример использования:
//
//	maono project update --id 0b7e...c1 --name "Mapa Recife v2" --file map.json
func NewProjectUpdateCmd(app *App) *cobra.Command {
	var id, name, file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Обновить проект",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.UpdateProject(token, id, sharedModels.SaveProjectRequest{
				Name:       name,
				KeplerJSON: doc,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "update: %s\n", resp.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "project id")
	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&file, "file", "", `path to kepler.gl JSON document ("-" for stdin)`)
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("file")

	return cmd
}
