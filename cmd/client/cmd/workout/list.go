// cmd/client/cmd/workout/list.go
package workout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listPage   int
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	Long: `Show one page of workout records, newest first.

The server decides the page actually returned: out-of-range page numbers
are clamped into the valid range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if listFormat == "json" {
			page, err := app.API().ListWorkouts(cmd.Context(), listPage)
			if err != nil {
				return fmt.Errorf("list workouts: %w", err)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(page)
		}

		if _, err := app.Session().LoadPage(cmd.Context(), listPage); err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}

		return nil
	},
}

func init() {
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number (1-based)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
}
