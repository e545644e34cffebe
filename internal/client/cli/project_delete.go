package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProjectDeleteCmd создаёт команду удаления проекта по id.
//
// Пример использования:
//
//	maono project delete --id 0b7e...c1
func NewProjectDeleteCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить проект",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.DeleteProject(token, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "delete: %s\n", resp.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "project id")
	cmd.MarkFlagRequired("id")

	return cmd
}
