package workout

import (
	"math"
	"regexp"
	"strings"
	"time"
)

const MaxExerciseLen = 40

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validation messages shared by the client preflight check and the server.
const (
	MsgDateRequired     = "Date is required."
	MsgExerciseRequired = "Exercise is required."
	MsgTypeRequired     = "Type is required."
	MsgDateFormat       = "Date must be in YYYY-MM-DD format."
	MsgDateInvalid      = "Date is invalid."
	MsgExerciseTooLong  = "Exercise must be 40 characters or fewer."
	MsgTypeUnknown      = "Type must be Strength, Cardio, or Endurance."
	MsgNumericNegative  = "Numeric values must be 0 or higher."
	MsgNoActivity       = "Enter duration or sets/reps/weight."
)

// ToNumber coerces a numeric field to a safe value: NaN and ±Inf become 0.
func ToNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Normalize trims string fields and coerces numeric fields in place.
func Normalize(w *Workout) {
	w.Date = strings.TrimSpace(w.Date)
	w.Exercise = strings.TrimSpace(w.Exercise)
	w.Type = WorkoutType(strings.TrimSpace(string(w.Type)))
	w.Duration = ToNumber(w.Duration)
	w.Sets = ToNumber(w.Sets)
	w.Reps = ToNumber(w.Reps)
	w.Weight = ToNumber(w.Weight)
}

// Validate runs the client-side preflight checks. Every failing rule appends
// its message; nothing short-circuits. An empty result means the candidate
// may be submitted, though the server remains the authority.
func Validate(w Workout) []string {
	var errs []string

	if strings.TrimSpace(w.Date) == "" {
		errs = append(errs, MsgDateRequired)
	}
	if strings.TrimSpace(w.Exercise) == "" {
		errs = append(errs, MsgExerciseRequired)
	}
	if strings.TrimSpace(string(w.Type)) == "" {
		errs = append(errs, MsgTypeRequired)
	}

	if w.Duration < 0 || w.Sets < 0 || w.Reps < 0 || w.Weight < 0 {
		errs = append(errs, MsgNumericNegative)
	}

	hasStrength := w.Sets > 0 || w.Reps > 0 || w.Weight > 0
	hasDuration := w.Duration > 0
	if !hasStrength && !hasDuration {
		errs = append(errs, MsgNoActivity)
	}

	return errs
}

// ValidateStrict runs the full server-side rule set over an already
// normalized record: the preflight rules plus date format, a real calendar
// date, the exercise length cap and the type whitelist.
func ValidateStrict(w Workout) []string {
	var errs []string

	if w.Date == "" {
		errs = append(errs, MsgDateRequired)
	}
	if w.Exercise == "" {
		errs = append(errs, MsgExerciseRequired)
	}
	if w.Type == "" {
		errs = append(errs, MsgTypeRequired)
	}

	if w.Date != "" {
		if !dateRe.MatchString(w.Date) {
			errs = append(errs, MsgDateFormat)
		} else if _, err := time.Parse("2006-01-02", w.Date); err != nil {
			errs = append(errs, MsgDateInvalid)
		}
	}

	if len(w.Exercise) > MaxExerciseLen {
		errs = append(errs, MsgExerciseTooLong)
	}

	if w.Type != "" && !w.Type.Valid() {
		errs = append(errs, MsgTypeUnknown)
	}

	if w.Duration < 0 || w.Sets < 0 || w.Reps < 0 || w.Weight < 0 {
		errs = append(errs, MsgNumericNegative)
	}

	hasStrength := w.Sets > 0 || w.Reps > 0 || w.Weight > 0
	hasDuration := w.Duration > 0
	if !hasStrength && !hasDuration {
		errs = append(errs, MsgNoActivity)
	}

	return errs
}
