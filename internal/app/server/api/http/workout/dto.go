package workout

import (
	"workoutlog/internal/domain/workout"
)

type listInput struct {
	Page int `query:"page" default:"1" example:"1" doc:"1-based page number; out-of-range values are clamped"`
}

type listOutput struct {
	Body workout.Page
}

type findInput struct {
	ID string `path:"id" example:"c1a9e2f0" doc:"Workout id"`
}

type createInput struct {
	Body request
}

type updateInput struct {
	ID   string `path:"id" example:"c1a9e2f0" doc:"Workout id"`
	Body request
}

// request mirrors the workout record without an id; the server assigns ids.
// Field constraints are deliberately loose here: validation lives in the
// domain so rejected candidates produce the legacy {errors: [...]} body
// instead of a schema error.
type request struct {
	Date     string  `json:"date,omitempty" doc:"Calendar date, YYYY-MM-DD"`
	Exercise string  `json:"exercise,omitempty" doc:"Exercise label"`
	Type     string  `json:"type,omitempty" doc:"One of Strength, Cardio, Endurance"`
	Duration float64 `json:"duration,omitempty" doc:"Minutes"`
	Sets     float64 `json:"sets,omitempty"`
	Reps     float64 `json:"reps,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

func (r request) toWorkout() workout.Workout {
	return workout.Workout{
		Date:     r.Date,
		Exercise: r.Exercise,
		Type:     workout.WorkoutType(r.Type),
		Duration: r.Duration,
		Sets:     r.Sets,
		Reps:     r.Reps,
		Weight:   r.Weight,
	}
}

type workoutOutput struct {
	Body workout.Workout
}

type createdOutput struct {
	Body workout.Workout
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	OK bool `json:"ok"`
}
