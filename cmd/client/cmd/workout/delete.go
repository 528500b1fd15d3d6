// cmd/client/cmd/workout/delete.go
package workout

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assumeYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a workout",
	Long: `Delete a workout record after confirmation.

The record is fetched first so the prompt can describe what is about to
be removed. Use --yes to skip the prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		app.Terminal().AssumeYes = assumeYes

		if err := app.Session().Remove(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}

		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
}
