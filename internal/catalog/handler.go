package catalog

import (
	"errors"
	"net/http"

	"github.com/2beens/gymroutines/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type injuriesProvider interface {
	ActiveInjuries() []string
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct {
	catalog  *Catalog
	injuries injuriesProvider
}

func NewHandler(catalog *Catalog, injuries injuriesProvider) *Handler {
	return &Handler{
		catalog:  catalog,
		injuries: injuries,
	}
}

// HandleList serves the library, optionally narrowed by muscle, difficulty
// and, with safe=true, by the injuries of the current profile.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var exercises []Exercise
	if query.Get("safe") == "true" {
		exercises = handler.catalog.FilterSafe(handler.injuries.ActiveInjuries())
	} else {
		exercises = handler.catalog.All()
	}

	muscle := Muscle(query.Get("muscle"))
	difficulty := Difficulty(query.Get("difficulty"))
	if difficulty != "" && !difficulty.IsValid() {
		http.Error(w, "error, invalid difficulty", http.StatusBadRequest)
		return
	}

	filtered := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if muscle != "" && !ex.Targets(muscle) {
			continue
		}
		if difficulty != "" && ex.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, ex)
	}

	pkg.WriteJSON(w, ListResponse{
		Exercises: filtered,
		Total:     len(filtered),
	}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	ex, err := handler.catalog.Lookup(id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("lookup exercise %s: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, MuscleGroups(), http.StatusOK)
}
