package routines

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/gymroutines/internal/catalog"
	"github.com/2beens/gymroutines/internal/profile"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type routineSaver interface {
	// Save assigns the routine id in place.
	Save(ctx context.Context, routine *Routine) error
}

// Generator builds new routines out of the catalog for a given profile.
// It keeps no state of its own; every generated routine is saved to the repo.
type Generator struct {
	catalog *catalog.Catalog
	repo    routineSaver
	metrics *metrics.Manager
	now     func() time.Time
}

func NewGenerator(catalog *catalog.Catalog, repo routineSaver, metrics *metrics.Manager) *Generator {
	return &Generator{
		catalog: catalog,
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

func (g *Generator) Generate(
	ctx context.Context,
	daysPerWeek, minutesPerSession int,
	p profile.UserProfile,
) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.generator.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("daysPerWeek", daysPerWeek))
	span.SetAttributes(attribute.Int("minutesPerSession", minutesPerSession))

	start := time.Now()
	routine := g.Build(daysPerWeek, minutesPerSession, p)
	g.metrics.HistGenerateDuration.Observe(time.Since(start).Seconds())

	if err := g.repo.Save(ctx, routine); err != nil {
		return nil, fmt.Errorf("save generated routine: %w", err)
	}
	g.metrics.CounterRoutinesGenerated.Inc()

	log.Debugf("routine generated: %s [%s], %d days", routine.ID, routine.Name, len(routine.Days))
	return routine, nil
}

// Build assembles the routine without saving it. The id is left empty.
func (g *Generator) Build(daysPerWeek, minutesPerSession int, p profile.UserProfile) *Routine {
	safe := g.catalog.FilterSafe(p.ActiveInjuries())
	exercisesCount := ExercisesPerSession(minutesPerSession)

	routine := &Routine{
		Name:              "Rutina " + p.Goal.DisplayName(),
		CreatedAt:         g.now(),
		DaysPerWeek:       daysPerWeek,
		MinutesPerSession: minutesPerSession,
	}

	for i, muscles := range MuscleGroupSplit(daysPerWeek) {
		perMuscle := max(1, exercisesCount/len(muscles))

		exercises := []RoutineExercise{}
		labels := make([]string, 0, len(muscles))
		for _, muscle := range muscles {
			labels = append(labels, catalog.TranslateMuscle(muscle))
			for _, ex := range selectForMuscle(safe, muscle, p.Level, perMuscle) {
				exercises = append(exercises, newAssignment(p, ex))
			}
		}

		dayID := fmt.Sprintf("Día %d", i+1)
		routine.Days = append(routine.Days, WorkoutDay{
			ID:           dayID,
			Name:         fmt.Sprintf("%s: %s", dayID, strings.Join(labels, " y ")),
			FocusMuscles: muscles,
			Exercises:    exercises,
		})
	}

	return routine
}

// selectForMuscle picks up to limit exercises working the muscle, closest
// difficulty to the level first. Equal distances keep catalog order.
func selectForMuscle(exercises []catalog.Exercise, muscle catalog.Muscle, level profile.Level, limit int) []catalog.Exercise {
	var matching []catalog.Exercise
	for _, ex := range exercises {
		if ex.Targets(muscle) {
			matching = append(matching, ex)
		}
	}

	distance := func(ex catalog.Exercise) int {
		return abs(ex.Difficulty.Rank() - level.Rank())
	}
	slices.SortStableFunc(matching, func(a, b catalog.Exercise) int {
		return distance(a) - distance(b)
	})

	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching
}

func newAssignment(p profile.UserProfile, ex catalog.Exercise) RoutineExercise {
	sets := profile.SetRange(p.Goal).Min
	return RoutineExercise{
		Exercise:      ex.Clone(),
		Sets:          sets,
		Reps:          profile.RepRange(p.Goal).Min,
		Weight:        profile.StartingWeight(p, ex),
		Rest:          profile.RestRange(p.Goal).Min,
		RemainingSets: sets,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
