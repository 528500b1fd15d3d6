// cmd/client/cmd/workout/add.go
package workout

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"workoutlog/internal/domain/workout"
)

var (
	addDate     string
	addExercise string
	addType     string
	addDuration float64
	addSets     float64
	addReps     float64
	addWeight   float64
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a workout",
	Long: `Create a new workout record.

Fields not given as flags are asked for interactively. The record is
validated locally before anything is sent to the server; validation
messages stay on the form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)

		if addDate == "" {
			addDate = promptLine(reader, "Date (YYYY-MM-DD): ")
		}

		if addExercise == "" {
			addExercise = promptLine(reader, "Exercise: ")
		}

		if addType == "" {
			fmt.Println("Workout type:")
			fmt.Println("1. Strength")
			fmt.Println("2. Cardio")
			fmt.Println("3. Endurance")
			choice := promptLine(reader, "Your choice [1-3]: ")

			switch choice {
			case "1":
				addType = string(workout.TypeStrength)
			case "2":
				addType = string(workout.TypeCardio)
			case "3":
				addType = string(workout.TypeEndurance)
			default:
				addType = choice
			}
		}

		// Числовые поля спрашиваем по смыслу типа
		if addType == string(workout.TypeStrength) {
			if !cmd.Flags().Changed("sets") {
				addSets = promptNumber(reader, "Sets: ")
			}
			if !cmd.Flags().Changed("reps") {
				addReps = promptNumber(reader, "Reps: ")
			}
			if !cmd.Flags().Changed("weight") {
				addWeight = promptNumber(reader, "Weight (kg): ")
			}
		} else if !cmd.Flags().Changed("duration") {
			addDuration = promptNumber(reader, "Duration (min): ")
		}

		candidate := workout.Workout{
			Date:     addDate,
			Exercise: addExercise,
			Type:     workout.WorkoutType(addType),
			Duration: addDuration,
			Sets:     addSets,
			Reps:     addReps,
			Weight:   addWeight,
		}

		if err := app.Session().Save(cmd.Context(), candidate); err != nil {
			return fmt.Errorf("save workout: %w", err)
		}

		// Ошибка валидации остается на форме и означает ненулевой код выхода
		if msg := app.Terminal().FormError(); msg != "" {
			return fmt.Errorf("workout rejected: %s", msg)
		}

		fmt.Println("Workout saved")
		return nil
	},
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line)
}

func promptNumber(reader *bufio.Reader, prompt string) float64 {
	raw := promptLine(reader, prompt)
	if raw == "" {
		return 0
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return n
}

func init() {
	AddCmd.Flags().StringVar(&addDate, "date", "", "workout date (YYYY-MM-DD)")
	AddCmd.Flags().StringVar(&addExercise, "exercise", "", "exercise name")
	AddCmd.Flags().StringVarP(&addType, "type", "t", "", "workout type (Strength, Cardio, Endurance)")
	AddCmd.Flags().Float64Var(&addDuration, "duration", 0, "duration in minutes")
	AddCmd.Flags().Float64Var(&addSets, "sets", 0, "number of sets")
	AddCmd.Flags().Float64Var(&addReps, "reps", 0, "number of reps")
	AddCmd.Flags().Float64Var(&addWeight, "weight", 0, "weight in kg")
}
