package workout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const seedCount = 30

var seedPatterns = []struct {
	exercise string
	typ      WorkoutType
	sets     float64
	reps     float64
	weight   float64
	duration float64
}{
	{"Bench Press", TypeStrength, 2, 6, 185, 20},
	{"Squat", TypeStrength, 2, 6, 225, 30},
	{"Deadlift", TypeStrength, 2, 4, 275, 30},
	{"Overhead Press", TypeStrength, 2, 5, 120, 20},
	{"Pull Ups", TypeStrength, 2, 4, 80, 15},
	{"Running", TypeCardio, 0, 0, 0, 35},
	{"Cycling", TypeCardio, 0, 0, 0, 45},
	{"Basketball", TypeCardio, 0, 0, 0, 30},
	{"Swimming", TypeCardio, 0, 0, 0, 35},
	{"Hiking", TypeEndurance, 0, 0, 0, 65},
	{"Cycling", TypeEndurance, 0, 0, 0, 75},
	{"Walking", TypeEndurance, 0, 0, 0, 45},
}

// EnsureSeeded populates the store with a demo data set of 30 records when
// it holds fewer than that, one per day going back from the base date.
func EnsureSeeded(ctx context.Context, repo Repository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count workouts: %w", err)
	}
	if count >= seedCount {
		return nil
	}

	baseDate := time.Date(2026, 1, 23, 0, 0, 0, 0, time.UTC)

	for i := 0; i < seedCount; i++ {
		p := seedPatterns[i%len(seedPatterns)]
		w := &Workout{
			ID:       uuid.NewString(),
			Date:     baseDate.AddDate(0, 0, -i).Format("2006-01-02"),
			Exercise: p.exercise,
			Type:     p.typ,
			Sets:     p.sets,
			Reps:     p.reps,
			Weight:   p.weight,
			Duration: p.duration,
		}
		if err := repo.Create(ctx, w); err != nil {
			return fmt.Errorf("seed workout: %w", err)
		}
	}

	return nil
}
