// cmd/client/cmd/workout/edit.go
package workout

import (
	"fmt"

	"github.com/spf13/cobra"

	"workoutlog/internal/domain/workout"
)

var (
	editDate     string
	editExercise string
	editType     string
	editDuration float64
	editSets     float64
	editReps     float64
	editWeight   float64
)

var EditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a workout",
	Long: `Update an existing workout record.

The full record is fetched first and flag values are applied on top of
it, so fields left out keep their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		// Загружаем полную запись в форму
		if err := app.Session().Edit(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("edit workout: %w", err)
		}

		candidate := app.Terminal().ReadForm()

		if cmd.Flags().Changed("date") {
			candidate.Date = editDate
		}
		if cmd.Flags().Changed("exercise") {
			candidate.Exercise = editExercise
		}
		if cmd.Flags().Changed("type") {
			candidate.Type = workout.WorkoutType(editType)
		}
		if cmd.Flags().Changed("duration") {
			candidate.Duration = editDuration
		}
		if cmd.Flags().Changed("sets") {
			candidate.Sets = editSets
		}
		if cmd.Flags().Changed("reps") {
			candidate.Reps = editReps
		}
		if cmd.Flags().Changed("weight") {
			candidate.Weight = editWeight
		}

		if err := app.Session().Save(cmd.Context(), candidate); err != nil {
			return fmt.Errorf("save workout: %w", err)
		}

		if msg := app.Terminal().FormError(); msg != "" {
			return fmt.Errorf("workout rejected: %s", msg)
		}

		fmt.Println("Workout updated")
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVar(&editDate, "date", "", "workout date (YYYY-MM-DD)")
	EditCmd.Flags().StringVar(&editExercise, "exercise", "", "exercise name")
	EditCmd.Flags().StringVarP(&editType, "type", "t", "", "workout type (Strength, Cardio, Endurance)")
	EditCmd.Flags().Float64Var(&editDuration, "duration", 0, "duration in minutes")
	EditCmd.Flags().Float64Var(&editSets, "sets", 0, "number of sets")
	EditCmd.Flags().Float64Var(&editReps, "reps", 0, "number of reps")
	EditCmd.Flags().Float64Var(&editWeight, "weight", 0, "weight in kg")
}
