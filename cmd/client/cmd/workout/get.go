// cmd/client/cmd/workout/get.go
package workout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outputFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		w, err := app.API().GetWorkout(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get workout: %w", err)
		}

		if outputFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(w)
		}

		fmt.Printf("ID:        %s\n", w.ID)
		fmt.Printf("Date:      %s\n", w.Date)
		fmt.Printf("Exercise:  %s\n", w.Exercise)
		fmt.Printf("Type:      %s\n", w.Type)
		fmt.Printf("Duration:  %g\n", w.Duration)
		fmt.Printf("Sets:      %g\n", w.Sets)
		fmt.Printf("Reps:      %g\n", w.Reps)
		fmt.Printf("Weight:    %g\n", w.Weight)

		return nil
	},
}

func init() {
	GetCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json)")
}
