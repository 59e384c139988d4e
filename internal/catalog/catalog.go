package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("duplicate exercise id")
)

// Catalog is the read-only exercise collection. Every query returns copies,
// so callers can never alter what was loaded.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
}

func New(exercises []Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: make([]Exercise, 0, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}
	for _, ex := range exercises {
		if ex.ID == "" {
			return nil, errors.New("exercise id empty")
		}
		if _, ok := c.byID[ex.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateExercise, ex.ID)
		}
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex.Clone())
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

// All returns the whole catalog in insertion order.
func (c *Catalog) All() []Exercise {
	return c.filter(func(Exercise) bool { return true })
}

func (c *Catalog) Lookup(id string) (Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, ErrExerciseNotFound
	}
	return c.exercises[i].Clone(), nil
}

// FilterByMuscle matches the primary or any of the secondary muscles.
func (c *Catalog) FilterByMuscle(m Muscle) []Exercise {
	return c.filter(func(ex Exercise) bool {
		return ex.Targets(m)
	})
}

func (c *Catalog) FilterByDifficulty(d Difficulty) []Exercise {
	return c.filter(func(ex Exercise) bool {
		return ex.Difficulty == d
	})
}

// FilterSafe drops every exercise contraindicated for one of the active injuries.
// No active injuries means no exclusions at all.
func (c *Catalog) FilterSafe(activeInjuries []string) []Exercise {
	if len(activeInjuries) == 0 {
		return c.All()
	}
	return c.filter(func(ex Exercise) bool {
		return !ex.ContraindicatedFor(activeInjuries)
	})
}

func (c *Catalog) filter(keep func(Exercise) bool) []Exercise {
	res := make([]Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		if keep(ex) {
			res = append(res, ex.Clone())
		}
	}
	return res
}
