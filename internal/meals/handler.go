package meals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/profile"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

var dayRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type mealsRepo interface {
	Add(ctx context.Context, meal *Meal) (*Meal, error)
	ListDay(ctx context.Context, userID int64, day string) ([]Meal, error)
	Delete(ctx context.Context, userID, id int64) error
	SetReaction(ctx context.Context, userID, id int64, liked bool) error
	DayTotals(ctx context.Context, userID int64, day string) (scoring.DailyTotals, error)
}

type profileSource interface {
	Get(ctx context.Context, userID int64) (*profile.Profile, error)
}

type DayResponse struct {
	Meals  []Meal                  `json:"meals"`
	Totals scoring.DailyTotals     `json:"totals"`
	Score  *scoring.NutritionScore `json:"score,omitempty"`
}

type Handler struct {
	repo     mealsRepo
	profiles profileSource
	metrics  *metrics.Manager
}

func NewHandler(repo mealsRepo, profiles profileSource, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		profiles: profiles,
		metrics:  metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var meal Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		log.Errorf("add meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	if meal.Name == "" {
		http.Error(w, "error, meal name empty", http.StatusBadRequest)
		return
	}
	if !validMealTypes[meal.MealType] {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}
	if meal.Calories < 0 || meal.Protein < 0 || meal.Carbs < 0 || meal.Fat < 0 {
		http.Error(w, "error, negative nutrition values", http.StatusBadRequest)
		return
	}
	if meal.EatenOn == "" {
		meal.EatenOn = time.Now().UTC().Format("2006-01-02")
	} else if !dayRegex.MatchString(meal.EatenOn) {
		http.Error(w, "error, invalid eatenOn date", http.StatusBadRequest)
		return
	}

	meal.UserID = userID
	meal.CreatedAt = time.Now()
	meal.Liked = nil

	addedMeal, err := handler.repo.Add(ctx, &meal)
	if err != nil {
		log.Errorf("failed to add meal [%s] for [%d]: %s", meal.Name, userID, err)
		http.Error(w, "error, failed to add meal", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMealsLogged.Inc()
	log.Debugf("new meal added: [%s] [%s]: %d", addedMeal.Name, addedMeal.EatenOn, addedMeal.ID)

	mealJson, err := json.Marshal(addedMeal)
	if err != nil {
		log.Errorf("marshal added meal: %s", err)
		http.Error(w, "error, failed to add meal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mealJson, http.StatusCreated)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.day")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day := mux.Vars(r)["date"]
	if !dayRegex.MatchString(day) {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	dayMeals, err := handler.repo.ListDay(ctx, userID, day)
	if err != nil {
		log.Errorf("list meals [%d] [%s]: %s", userID, day, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}
	if len(dayMeals) == 0 {
		dayMeals = []Meal{}
	}

	totals, err := handler.repo.DayTotals(ctx, userID, day)
	if err != nil {
		log.Errorf("day totals [%d] [%s]: %s", userID, day, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	resp := DayResponse{
		Meals:  dayMeals,
		Totals: totals,
	}

	// score is best effort, an incomplete profile just leaves it out
	if p, err := handler.profiles.Get(ctx, userID); err == nil {
		if targets, err := scoring.ComputeNutritionTargets(p.Metrics()); err == nil {
			score := scoring.ComputeNutritionScore(totals, targets)
			resp.Score = &score
		}
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal day meals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
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
		if errors.Is(err, ErrMealNotFound) {
			http.Error(w, "error, meal not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete meal [%d]: %s", id, err)
		http.Error(w, "error, meal not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(
		w, pkg.ContentType.JSON,
		[]byte(fmt.Sprintf(`{"deletedId":%d}`, id)),
	)
}

func (handler *Handler) HandleReaction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.reaction")
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

	var params struct {
		Liked *bool `json:"liked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil || params.Liked == nil {
		http.Error(w, "error, liked flag missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetReaction(ctx, userID, id, *params.Liked); err != nil {
		if errors.Is(err, ErrMealNotFound) {
			http.Error(w, "error, meal not found", http.StatusNotFound)
			return
		}
		log.Errorf("meal reaction [%d]: %s", id, err)
		http.Error(w, "error, failed to save reaction", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(
		w, pkg.ContentType.JSON,
		[]byte(fmt.Sprintf(`{"updatedId":%d}`, id)),
	)
}
