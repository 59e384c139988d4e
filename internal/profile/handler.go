package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileStore interface {
	Get() UserProfile
	Save(ctx context.Context, p UserProfile) error
}

// MetricsResponse carries the values derived from the current profile.
type MetricsResponse struct {
	BMI         float64     `json:"bmi"`
	BMICategory BMICategory `json:"bmiCategory"`
	RepRange    Range       `json:"repRange"`
	SetRange    Range       `json:"setRange"`
	RestRange   Range       `json:"restRange"`
	Complete    bool        `json:"complete"`
}

func NewMetricsResponse(p UserProfile) MetricsResponse {
	bmi := BMI(p)
	return MetricsResponse{
		BMI:         bmi,
		BMICategory: CategoryForBMI(bmi),
		RepRange:    RepRange(p.Goal),
		SetRange:    SetRange(p.Goal),
		RestRange:   RestRange(p.Goal),
		Complete:    p.IsComplete(),
	}
}

type Handler struct {
	store   profileStore
	metrics *metrics.Manager
}

func NewHandler(store profileStore, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metrics,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, handler.store.Get(), http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	p := Default()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("update profile, unmarshal json: %s", err)
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}

	if p.Weight < 0 || p.Height < 0 || p.Age < 0 {
		http.Error(w, "error, negative body values", http.StatusBadRequest)
		return
	}

	if err := handler.store.Save(ctx, p); err != nil {
		log.Errorf("save profile: %s", err)
		http.Error(w, "error, profile not persisted", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterProfileUpdates.Inc()
	log.Debugf("profile updated: %s [%s/%s]", p.Name, p.Level, p.Goal)

	pkg.WriteJSON(w, handler.store.Get(), http.StatusOK)
}

func (handler *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, NewMetricsResponse(handler.store.Get()), http.StatusOK)
}
