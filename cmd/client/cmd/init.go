// cmd/client/cmd/init.go
package cmd

import (
	"workoutlog/cmd/client/cmd/workout"
)

func init() {
	// Команды работы с тренировками
	rootCmd.AddCommand(workout.WorkoutCmd)
	workout.WorkoutCmd.AddCommand(workout.AddCmd)
	workout.WorkoutCmd.AddCommand(workout.GetCmd)
	workout.WorkoutCmd.AddCommand(workout.ListCmd)
	workout.WorkoutCmd.AddCommand(workout.EditCmd)
	workout.WorkoutCmd.AddCommand(workout.DeleteCmd)

	rootCmd.AddCommand(workout.StatsCmd)
	rootCmd.AddCommand(workout.BrowseCmd)
}
