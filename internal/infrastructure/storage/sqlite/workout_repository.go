package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"workoutlog/internal/domain/workout"
)

type WorkoutRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewWorkoutRepository(db *sql.DB, log *slog.Logger) *WorkoutRepository {
	return &WorkoutRepository{
		db:  db,
		log: log.With("component", "workout_repository"),
	}
}

// List returns every workout newest first. Ties on date break by id
// descending so a page walk never shows the same record twice.
func (r *WorkoutRepository) List(ctx context.Context) ([]workout.Workout, error) {
	const query = `
		SELECT id, date, exercise, type, duration, sets, reps, weight
		FROM workouts
		ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("failed to list workouts", "error", err)
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return r.scanWorkouts(rows)
}

func (r *WorkoutRepository) Get(ctx context.Context, id string) (*workout.Workout, error) {
	const query = `
		SELECT id, date, exercise, type, duration, sets, reps, weight
		FROM workouts
		WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)

	w, err := r.scanWorkout(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workout.ErrNotFound
		}
		r.log.Error("failed to get workout", "workout_id", id, "error", err)
		return nil, fmt.Errorf("get workout: %w", err)
	}

	return w, nil
}

func (r *WorkoutRepository) Create(ctx context.Context, w *workout.Workout) error {
	const query = `
		INSERT INTO workouts (id, date, exercise, type, duration, sets, reps, weight)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.Date, w.Exercise, string(w.Type), w.Duration, w.Sets, w.Reps, w.Weight)
	if err != nil {
		r.log.Error("failed to create workout",
			"workout_id", w.ID, "exercise", w.Exercise, "error", err)
		return fmt.Errorf("create workout: %w", err)
	}

	return nil
}

func (r *WorkoutRepository) Update(ctx context.Context, w *workout.Workout) error {
	const query = `
		UPDATE workouts
		SET date = ?, exercise = ?, type = ?, duration = ?, sets = ?, reps = ?, weight = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		w.Date, w.Exercise, string(w.Type), w.Duration, w.Sets, w.Reps, w.Weight, w.ID)
	if err != nil {
		r.log.Error("failed to update workout", "workout_id", w.ID, "error", err)
		return fmt.Errorf("update workout: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	if affected == 0 {
		return workout.ErrNotFound
	}

	return nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM workouts WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete workout", "workout_id", id, "error", err)
		return fmt.Errorf("delete workout: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if affected == 0 {
		return workout.ErrNotFound
	}

	return nil
}

func (r *WorkoutRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM workouts`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		r.log.Error("failed to count workouts", "error", err)
		return 0, fmt.Errorf("count workouts: %w", err)
	}

	return count, nil
}

// Вспомогательные методы
func (r *WorkoutRepository) scanWorkouts(rows *sql.Rows) ([]workout.Workout, error) {
	var workouts []workout.Workout

	for rows.Next() {
		w, err := r.scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}

	return workouts, rows.Err()
}

func (r *WorkoutRepository) scanWorkout(row interface {
	Scan(dest ...interface{}) error
}) (*workout.Workout, error) {
	var w workout.Workout
	var typ string

	err := row.Scan(
		&w.ID, &w.Date, &w.Exercise, &typ,
		&w.Duration, &w.Sets, &w.Reps, &w.Weight,
	)
	if err != nil {
		return nil, err
	}

	w.Type = workout.WorkoutType(typ)
	return &w, nil
}
