package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/maono-vis/maono-api/internal/shared/models"
)

// NewProjectCreateCmd создаёт команду создания проекта.
//
// Документ kepler.gl читается из файла, указанного флагом --file
// ("-" означает STDIN).
//
// Примеры использования:
//
//	maono project create --name "Mapa Recife" --file map.json
//	cat map.json | maono project create --name "Mapa Recife" --file -
func NewProjectCreateCmd(app *App) *cobra.Command {
	var name, file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать проект",
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
			resp, err := c.CreateProject(token, sharedModels.SaveProjectRequest{
				Name:       name,
				KeplerJSON: doc,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created: %s\n", resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&file, "file", "", `path to kepler.gl JSON document ("-" for stdin)`)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("file")

	return cmd
}
