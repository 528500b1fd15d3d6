//GET    /api/workouts?page=N  # Одна страница записей
//GET    /api/workouts/{id}    # Получить запись
//POST   /api/workouts         # Создать запись
//PUT    /api/workouts/{id}    # Обновить запись
//DELETE /api/workouts/{id}    # Удалить запись
//GET    /api/health           # Health check

package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "workoutlog/internal/app/server/api/http/health"
	"workoutlog/internal/app/server/api/http/middleware/logger"
	workoutAPI "workoutlog/internal/app/server/api/http/workout"
	"workoutlog/internal/domain/workout"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Workout *workoutAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(repo workout.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Workout Log API", "1.0.0")
	huma.NewError = newError

	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Workout.SetupRoutes(API)

	return mux
}

func handlers(repo workout.Repository, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	mws := huma.Middlewares{loggerMW.Middleware()}

	workoutService := workout.NewService(repo, log)

	return &Handlers{
		Health:  healthAPI.NewHandler(log, mws),
		Workout: workoutAPI.NewHandler(workoutService, log, mws),
	}
}

// errorResponse is the wire shape for every non-2xx response: either a list
// of validation messages or a single error string, never both.
type errorResponse struct {
	status  int
	Message string   `json:"error,omitempty"`
	Details []string `json:"errors,omitempty"`
}

func (e *errorResponse) Error() string {
	if len(e.Details) > 0 {
		return strings.Join(e.Details, " ")
	}
	return e.Message
}

func (e *errorResponse) GetStatus() int {
	return e.status
}

// newError replaces huma's problem+json model so error bodies match what
// clients of the old API expect.
func newError(status int, message string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}

	if len(details) > 0 {
		return &errorResponse{status: status, Details: details}
	}
	return &errorResponse{status: status, Message: message}
}
