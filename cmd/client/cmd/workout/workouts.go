package workout

import (
	"fmt"

	"github.com/spf13/cobra"

	"workoutlog/internal/app/client"
)

// WorkoutCmd - родительская команда для всех операций с тренировками
var WorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage workout records",
	Long:  `Create, list, edit and delete workout records on the remote journal.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(client.AppContextKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}
