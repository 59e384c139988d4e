package routines

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/gymroutines/internal/profile"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	Save(ctx context.Context, routine *Routine) error
	Delete(ctx context.Context, id string) (bool, error)
	FindByID(id string) (*Routine, error)
	List() []*Routine
	LogWorkout(ctx context.Context, workoutLog WorkoutLog) (WorkoutLog, error)
	LogsForRoutine(routineID string) []WorkoutLog
	CompleteSet(ctx context.Context, routineID, dayID string, exerciseIdx int) (RoutineExercise, error)
	FinishDay(ctx context.Context, routineID, dayID string, workoutLog WorkoutLog) (WorkoutLog, error)
}

type routineGenerator interface {
	Generate(ctx context.Context, daysPerWeek, minutesPerSession int, p profile.UserProfile) (*Routine, error)
}

type routineProgressor interface {
	Progress(ctx context.Context, routineID string, p profile.UserProfile) (*Routine, error)
}

type profileProvider interface {
	Get() profile.UserProfile
}

type GenerateRequest struct {
	DaysPerWeek       int `json:"daysPerWeek"`
	MinutesPerSession int `json:"minutesPerSession"`
}

type ListResponse struct {
	Routines []*Routine `json:"routines"`
	Total    int        `json:"total"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
	Deleted   bool   `json:"deleted"`
}

type Handler struct {
	repo       routinesRepo
	generator  routineGenerator
	progressor routineProgressor
	profiles   profileProvider
	metrics    *metrics.Manager
}

func NewHandler(
	repo routinesRepo,
	generator routineGenerator,
	progressor routineProgressor,
	profiles profileProvider,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		repo:       repo,
		generator:  generator,
		progressor: progressor,
		profiles:   profiles,
		metrics:    metrics,
	}
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.generate")
	defer span.End()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("generate routine, unmarshal json params: %s", err)
		http.Error(w, "invalid generate request", http.StatusBadRequest)
		return
	}
	// out of range values fall back inside the generator
	routine, err := handler.generator.Generate(ctx, req.DaysPerWeek, req.MinutesPerSession, handler.profiles.Get())
	if err != nil {
		log.Errorf("generate routine [%d days, %d min]: %s", req.DaysPerWeek, req.MinutesPerSession, err)
		http.Error(w, "error, failed to generate routine", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	routines := handler.repo.List()
	pkg.WriteJSON(w, ListResponse{
		Routines: routines,
		Total:    len(routines),
	}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	routine, err := handler.repo.FindByID(id)
	if err != nil {
		writeRepoError(w, "get routine", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

// HandleSave stores an edited routine, replacing the one with the same id.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.save")
	defer span.End()

	var routine Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		log.Tracef("save routine, unmarshal json: %s", err)
		http.Error(w, "invalid routine", http.StatusBadRequest)
		return
	}
	if routine.Name == "" {
		http.Error(w, "error, routine name empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Save(ctx, &routine); err != nil {
		log.Errorf("save routine %s: %s", routine.ID, err)
		http.Error(w, "error, routine not persisted", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.Delete(r.Context(), id)
	if err != nil {
		log.Errorf("delete routine %s: %s", id, err)
		http.Error(w, "error, routine delete not persisted", http.StatusInternalServerError)
		return
	}
	if deleted {
		handler.metrics.CounterRoutinesDeleted.Inc()
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.progress")
	defer span.End()

	id := mux.Vars(r)["id"]
	routine, err := handler.progressor.Progress(ctx, id, handler.profiles.Get())
	if err != nil {
		writeRepoError(w, "progress routine", err)
		return
	}

	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	pkg.WriteJSON(w, handler.repo.LogsForRoutine(id), http.StatusOK)
}

func (handler *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id := mux.Vars(r)["id"]
	if _, err := handler.repo.FindByID(id); err != nil {
		writeRepoError(w, "log workout", err)
		return
	}

	var workoutLog WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Tracef("log workout, unmarshal json: %s", err)
		http.Error(w, "invalid workout log", http.StatusBadRequest)
		return
	}
	workoutLog.RoutineID = id

	stored, err := handler.repo.LogWorkout(r.Context(), workoutLog)
	if err != nil {
		log.Errorf("log workout for routine %s: %s", id, err)
		http.Error(w, "error, workout log not persisted", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterWorkoutsLogged.Inc()

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (handler *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	idx, err := strconv.Atoi(vars["idx"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}

	ex, err := handler.repo.CompleteSet(r.Context(), vars["id"], vars["dayId"], idx)
	if err != nil {
		writeRepoError(w, "complete set", err)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleFinishDay(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)

	var workoutLog WorkoutLog
	// the session log body is optional
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("finish day, unmarshal json: %s", err)
			http.Error(w, "invalid workout log", http.StatusBadRequest)
			return
		}
	}

	stored, err := handler.repo.FinishDay(r.Context(), vars["id"], vars["dayId"], workoutLog)
	if err != nil {
		writeRepoError(w, "finish day", err)
		return
	}
	handler.metrics.CounterWorkoutsLogged.Inc()

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func writeRepoError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrRoutineNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
