package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/gymroutines/internal/kvstore"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// Repo owns the routines and the workout logs. Every mutation rewrites both
// collections to the durable mirror before returning; concurrent writers
// follow last-writer-wins.
type Repo struct {
	mutex    sync.RWMutex
	routines []*Routine
	logs     []WorkoutLog

	kv      kvstore.Store
	metrics *metrics.Manager
	now     func() time.Time
}

func NewRepo(kv kvstore.Store, metrics *metrics.Manager) *Repo {
	return &Repo{
		routines: []*Routine{},
		logs:     []WorkoutLog{},
		kv:       kv,
		metrics:  metrics,
		now:      time.Now,
	}
}

// LoadAll replaces both collections with the mirrored ones. Missing or
// corrupt blobs leave the corresponding collection empty.
func (r *Repo) LoadAll(ctx context.Context) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.loadAll")
	defer span.End()

	var routines []*Routine
	if !r.loadKey(ctx, kvstore.KeyRoutines, &routines) || routines == nil {
		routines = []*Routine{}
	}
	var logs []WorkoutLog
	if !r.loadKey(ctx, kvstore.KeyWorkoutLogs, &logs) || logs == nil {
		logs = []WorkoutLog{}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.routines = slices.DeleteFunc(routines, func(rt *Routine) bool { return rt == nil })
	r.logs = logs
	r.metrics.GaugeRoutines.Set(float64(len(r.routines)))

	span.SetAttributes(attribute.Int("routines", len(r.routines)))
	span.SetAttributes(attribute.Int("logs", len(r.logs)))
	log.Debugf("routines repo loaded: %d routines, %d workout logs", len(r.routines), len(r.logs))
}

func (r *Repo) loadKey(ctx context.Context, key string, dest any) bool {
	data, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			log.Errorf("routines repo, load [%s]: %s", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Errorf("routines repo, corrupt [%s] blob: %s", key, err)
		return false
	}
	return true
}

// NextID returns a millisecond timestamp id not used by any stored routine.
func (r *Repo) NextID(now time.Time) string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.nextIDLocked(now)
}

func (r *Repo) nextIDLocked(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if r.indexLocked(id) < 0 {
			return id
		}
		ms++
	}
}

func (r *Repo) indexLocked(id string) int {
	return slices.IndexFunc(r.routines, func(rt *Routine) bool {
		return rt.ID == id
	})
}

// Save upserts the routine by id. When the id is empty, a fresh id (and a
// createdAt, if unset) is written back into the passed routine, so callers
// read the assigned id from it after Save returns. The stored value is a
// copy; the in-memory collection is updated even if persisting fails.
func (r *Repo) Save(ctx context.Context, routine *Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if routine == nil {
		return errors.New("routine is nil")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if routine.ID == "" {
		if routine.CreatedAt.IsZero() {
			routine.CreatedAt = r.now()
		}
		routine.ID = r.nextIDLocked(routine.CreatedAt)
	}
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	stored := routine.Clone()
	if i := r.indexLocked(routine.ID); i >= 0 {
		r.routines[i] = stored
	} else {
		r.routines = append(r.routines, stored)
	}
	r.metrics.GaugeRoutines.Set(float64(len(r.routines)))

	return r.persistLocked(ctx)
}

// Delete removes the routine if present. Unknown ids are ignored and
// nothing is written. Logs that reference the routine are kept.
func (r *Repo) Delete(ctx context.Context, id string) (deleted bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	r.routines = slices.Delete(r.routines, i, i+1)
	r.metrics.GaugeRoutines.Set(float64(len(r.routines)))

	return true, r.persistLocked(ctx)
}

func (r *Repo) FindByID(id string) (*Routine, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, ErrRoutineNotFound
	}
	return r.routines[i].Clone(), nil
}

// List returns copies of all routines in insertion order.
func (r *Repo) List() []*Routine {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make([]*Routine, 0, len(r.routines))
	for _, rt := range r.routines {
		res = append(res, rt.Clone())
	}
	return res
}

// LogWorkout appends a log. Id and date are filled in when missing.
func (r *Repo) LogWorkout(ctx context.Context, workoutLog WorkoutLog) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.logWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := r.appendLogLocked(workoutLog)
	span.SetAttributes(attribute.String("log.id", stored.ID))

	return stored.Clone(), r.persistLocked(ctx)
}

func (r *Repo) appendLogLocked(workoutLog WorkoutLog) WorkoutLog {
	stored := workoutLog.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Date.IsZero() {
		stored.Date = r.now()
	}
	r.logs = append(r.logs, stored)
	return stored
}

// LogsForRoutine returns the logs of a routine in the order they were recorded.
func (r *Repo) LogsForRoutine(routineID string) []WorkoutLog {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := []WorkoutLog{}
	for _, l := range r.logs {
		if l.RoutineID == routineID {
			res = append(res, l.Clone())
		}
	}
	return res
}

func (r *Repo) DeleteLog(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.deleteLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := slices.IndexFunc(r.logs, func(l WorkoutLog) bool {
		return l.ID == id
	})
	if i < 0 {
		return ErrLogNotFound
	}
	r.logs = slices.Delete(r.logs, i, i+1)

	return r.persistLocked(ctx)
}

// CompleteSet ticks off one set of the exercise at exerciseIdx. The exercise
// is marked completed once no sets remain.
func (r *Repo) CompleteSet(ctx context.Context, routineID, dayID string, exerciseIdx int) (_ RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.completeSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexLocked(routineID)
	if i < 0 {
		return RoutineExercise{}, ErrRoutineNotFound
	}
	day, err := r.routines[i].Day(dayID)
	if err != nil {
		return RoutineExercise{}, err
	}
	if exerciseIdx < 0 || exerciseIdx >= len(day.Exercises) {
		return RoutineExercise{}, ErrExerciseNotFound
	}

	ex := &day.Exercises[exerciseIdx]
	if ex.RemainingSets > 0 {
		ex.RemainingSets--
	}
	if ex.RemainingSets == 0 {
		ex.Completed = true
	}

	return ex.Clone(), r.persistLocked(ctx)
}

// FinishDay marks the day as completed and records the session log.
func (r *Repo) FinishDay(ctx context.Context, routineID, dayID string, workoutLog WorkoutLog) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.finishDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexLocked(routineID)
	if i < 0 {
		return WorkoutLog{}, ErrRoutineNotFound
	}
	day, err := r.routines[i].Day(dayID)
	if err != nil {
		return WorkoutLog{}, err
	}
	day.Completed = true

	workoutLog.RoutineID = routineID
	workoutLog.DayID = dayID
	stored := r.appendLogLocked(workoutLog)

	return stored.Clone(), r.persistLocked(ctx)
}

// persistLocked writes both collections. Both writes are attempted even
// when the first one fails.
func (r *Repo) persistLocked(ctx context.Context) error {
	var err error
	if werr := r.writeKey(ctx, kvstore.KeyRoutines, r.routines); werr != nil {
		err = multierr.Append(err, werr)
	}
	if werr := r.writeKey(ctx, kvstore.KeyWorkoutLogs, r.logs); werr != nil {
		err = multierr.Append(err, werr)
	}
	return err
}

func (r *Repo) writeKey(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, data); err != nil {
		r.metrics.CounterStoreErrors.WithLabelValues(key).Inc()
		return fmt.Errorf("persist [%s]: %w", key, err)
	}
	return nil
}
