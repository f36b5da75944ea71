package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

type workoutsRepo interface {
	Add(ctx context.Context, workout *Workout) (*Workout, error)
	Get(ctx context.Context, userID, id int64) (*Workout, error)
	List(ctx context.Context, params ListParams) (_ []Workout, total int, err error)
	Delete(ctx context.Context, userID, id int64) error
	Stats(ctx context.Context, userID int64) (Stats, error)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Type == "" {
		http.Error(w, "error, workout type empty", http.StatusBadRequest)
		return
	}
	if workout.DurationMinutes <= 0 {
		http.Error(w, "error, duration must be positive", http.StatusBadRequest)
		return
	}

	workout.UserID = userID
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	addedWorkout, err := handler.repo.Add(ctx, &workout)
	if err != nil {
		log.Errorf("failed to add workout [%s] for [%d]: %s", workout.Type, userID, err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: [%s] [%d min]: %d", addedWorkout.Type, addedWorkout.DurationMinutes, addedWorkout.ID)

	workoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("marshal added workout: %s", err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "error, workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout [%d]: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, fmt.Sprintf("error, invalid page: %s", vars["page"]), http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		http.Error(w, fmt.Sprintf("error, invalid size: %s", vars["size"]), http.StatusBadRequest)
		return
	}

	workouts, total, err := handler.repo.List(ctx, ListParams{
		UserID: userID,
		Type:   r.URL.Query().Get("type"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Errorf("list workouts [%d]: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}
	if len(workouts) == 0 {
		workouts = []Workout{}
	}

	respJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "error, workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout [%d]: %s", id, err)
		http.Error(w, "error, workout not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(
		w, pkg.ContentType.JSON,
		[]byte(fmt.Sprintf(`{"deletedId":%d}`, id)),
	)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := handler.repo.Stats(ctx, userID)
	if err != nil {
		log.Errorf("workout stats [%d]: %s", userID, err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("marshal workout stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}
