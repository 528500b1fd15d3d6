package workout

// PageSize is fixed server-side; clients cannot request a different size.
const PageSize = 10

// WorkoutType - категория тренировки
type WorkoutType string

const (
	TypeStrength  WorkoutType = "Strength"
	TypeCardio    WorkoutType = "Cardio"
	TypeEndurance WorkoutType = "Endurance"
)

// AllowedTypes перечисляет допустимые категории тренировок
var AllowedTypes = []WorkoutType{TypeStrength, TypeCardio, TypeEndurance}

func (t WorkoutType) Valid() bool {
	for _, allowed := range AllowedTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// Workout represents a single workout record. The canonical copy lives on
// the server; clients only hold transient copies.
type Workout struct {
	ID       string      `json:"id,omitempty"`
	Date     string      `json:"date"`
	Exercise string      `json:"exercise"`
	Type     WorkoutType `json:"type"`
	Duration float64     `json:"duration"`
	Sets     float64     `json:"sets"`
	Reps     float64     `json:"reps"`
	Weight   float64     `json:"weight"`
}

// Page is one server-sorted slice of records. The item order is
// authoritative and must not be re-sorted on the client.
type Page struct {
	Items      []Workout `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

// Stats - агрегаты по всему набору записей
type Stats struct {
	Total         int
	MostFrequent  WorkoutType
	TotalDuration float64
	TotalWeight   float64
}

// Summarize builds aggregate stats over a full snapshot of records.
// TotalWeight only counts Strength workouts. When two types are tied for
// most frequent, the first one encountered wins; with map iteration that
// choice is not deterministic, which callers accept.
func Summarize(items []Workout) Stats {
	stats := Stats{Total: len(items)}

	counts := make(map[WorkoutType]int)
	for _, w := range items {
		counts[w.Type]++
		stats.TotalDuration += w.Duration
		if w.Type == TypeStrength {
			stats.TotalWeight += w.Weight
		}
	}

	best := 0
	for typ, n := range counts {
		if n > best {
			best = n
			stats.MostFrequent = typ
		}
	}

	return stats
}
