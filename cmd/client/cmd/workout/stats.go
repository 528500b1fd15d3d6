// cmd/client/cmd/workout/stats.go
package workout

import (
	"fmt"

	"github.com/spf13/cobra"
)

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout statistics",
	Long: `Aggregate statistics over the whole journal: total count, the most
frequent type, total duration and total weight lifted in Strength
workouts. Every page is fetched to build the snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.Session().ShowStats(cmd.Context()); err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		return nil
	},
}
