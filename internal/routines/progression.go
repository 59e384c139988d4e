package routines

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymroutines/internal/profile"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type routineStore interface {
	routineSaver
	FindByID(id string) (*Routine, error)
}

var levelProgressPercent = map[profile.Level]float64{
	profile.LevelBeginner:     0.025,
	profile.LevelIntermediate: 0.035,
	profile.LevelAdvanced:     0.05,
}

// Progressor derives the next training cycle from a stored routine.
type Progressor struct {
	repo    routineStore
	metrics *metrics.Manager
	now     func() time.Time
}

func NewProgressor(repo routineStore, metrics *metrics.Manager) *Progressor {
	return &Progressor{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// Progress saves and returns a heavier copy of the routine. The stored
// original is left as it was.
func (pr *Progressor) Progress(ctx context.Context, routineID string, p profile.UserProfile) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.progressor.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))

	original, err := pr.repo.FindByID(routineID)
	if err != nil {
		return nil, err
	}

	next := NextCycle(original, p, pr.now())
	if err := pr.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save progressed routine: %w", err)
	}
	pr.metrics.CounterRoutinesProgressed.Inc()

	log.Debugf("routine %s progressed into %s", routineID, next.ID)
	return next, nil
}

// NextCycle applies one step of linear progression to a copy of the routine.
// The copy gets no id, the repo assigns one on save.
func NextCycle(routine *Routine, p profile.UserProfile, now time.Time) *Routine {
	next := routine.Clone()
	next.ID = ""
	next.CreatedAt = now
	if !next.IsProgression() {
		next.Name = next.Name + " " + ProgressionTag
	}

	pct, ok := levelProgressPercent[p.Level]
	if !ok {
		pct = levelProgressPercent[profile.LevelAdvanced]
	}

	repsIncrement, maxReps := 2, 15
	if p.Goal == profile.GoalStrength || p.Goal == profile.GoalHypertrophy {
		repsIncrement, maxReps = 1, 12
	}
	if goalMax := profile.RepRange(p.Goal).Max; goalMax > 0 {
		maxReps = goalMax
	}

	for i := range next.Days {
		day := &next.Days[i]
		day.Completed = false
		for j := range day.Exercises {
			ex := &day.Exercises[j]
			ex.Weight = profile.RoundToStep(ex.Weight*(1+pct), profile.LoadStep)
			ex.Reps = min(ex.Reps+repsIncrement, maxReps)
			ex.Completed = false
			ex.RemainingSets = ex.Sets
		}
	}

	return next
}
