package routines

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/2beens/gymroutines/internal/catalog"
)

var (
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrDayNotFound      = errors.New("workout day not found")
	ErrExerciseNotFound = errors.New("routine exercise not found")
	ErrLogNotFound      = errors.New("workout log not found")
)

// ProgressionTag marks progressed routines. It is appended to the name only once.
const ProgressionTag = "(Progresión)"

// RoutineExercise is one exercise prescription within a day.
type RoutineExercise struct {
	Exercise      catalog.Exercise `json:"exercise"`
	Sets          int              `json:"sets"`
	Reps          int              `json:"reps"`
	Weight        float64          `json:"weight"`
	Rest          int              `json:"rest"`
	Completed     bool             `json:"completed"`
	RemainingSets int              `json:"remainingSets"`
}

type WorkoutDay struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	FocusMuscles []catalog.Muscle  `json:"focusMuscles"`
	Exercises    []RoutineExercise `json:"exercises"`
	// set by hand when the session is finished, never derived from the exercises
	Completed bool `json:"completed"`
}

type Routine struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	CreatedAt         time.Time    `json:"createdAt"`
	Days              []WorkoutDay `json:"days"`
	DaysPerWeek       int          `json:"daysPerWeek"`
	MinutesPerSession int          `json:"minutesPerSession"`
}

func (r *Routine) Clone() *Routine {
	if r == nil {
		return nil
	}
	c := *r
	c.Days = make([]WorkoutDay, len(r.Days))
	for i, day := range r.Days {
		c.Days[i] = day.Clone()
	}
	return &c
}

func (r *Routine) Day(dayID string) (*WorkoutDay, error) {
	for i := range r.Days {
		if r.Days[i].ID == dayID {
			return &r.Days[i], nil
		}
	}
	return nil, ErrDayNotFound
}

func (r *Routine) IsProgression() bool {
	return strings.Contains(r.Name, ProgressionTag)
}

func (d WorkoutDay) Clone() WorkoutDay {
	c := d
	c.FocusMuscles = slices.Clone(d.FocusMuscles)
	c.Exercises = make([]RoutineExercise, len(d.Exercises))
	for i, ex := range d.Exercises {
		c.Exercises[i] = ex.Clone()
	}
	return c
}

func (e RoutineExercise) Clone() RoutineExercise {
	c := e
	c.Exercise = e.Exercise.Clone()
	return c
}

type LoggedSet struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

type LoggedExercise struct {
	ExerciseID string      `json:"exerciseId"`
	Sets       []LoggedSet `json:"sets"`
}

// WorkoutLog records one finished session. Logs are never edited once stored.
type WorkoutLog struct {
	ID        string           `json:"id"`
	RoutineID string           `json:"routineId"`
	DayID     string           `json:"dayId"`
	Date      time.Time        `json:"date"`
	Exercises []LoggedExercise `json:"exercises"`
}

func (l WorkoutLog) Clone() WorkoutLog {
	c := l
	c.Exercises = make([]LoggedExercise, len(l.Exercises))
	for i, ex := range l.Exercises {
		c.Exercises[i] = LoggedExercise{
			ExerciseID: ex.ExerciseID,
			Sets:       slices.Clone(ex.Sets),
		}
	}
	return c
}
