package mealgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/profile"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

type generator interface {
	Generate(ctx context.Context, mealType string, targets scoring.NutritionTargets) (Suggestion, error)
}

type profileSource interface {
	Get(ctx context.Context, userID int64) (*profile.Profile, error)
}

type GenerateBody struct {
	MealType string `json:"mealType"`
}

type Handler struct {
	generator generator
	profiles  profileSource
	metrics   *metrics.Manager
}

func NewHandler(generator generator, profiles profileSource, metrics *metrics.Manager) *Handler {
	return &Handler{
		generator: generator,
		profiles:  profiles,
		metrics:   metrics,
	}
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mealgen.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var body GenerateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Warnf("generate meal [%d], decode request: %s", userID, err)
		http.Error(w, "error, failed to decode request", http.StatusBadRequest)
		return
	}
	if _, ok := mealRatios[body.MealType]; !ok {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}

	p, err := handler.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusBadRequest)
			return
		}
		log.Errorf("generate meal [%d], get profile: %s", userID, err)
		http.Error(w, "failed to generate meal", http.StatusInternalServerError)
		return
	}

	targets, err := scoring.ComputeNutritionTargets(p.Metrics())
	if err != nil {
		http.Error(w, "profile incomplete", http.StatusBadRequest)
		return
	}

	suggestion, err := handler.generator.Generate(ctx, body.MealType, targets)
	if err != nil {
		switch {
		case errors.Is(err, ErrRateLimited),
			errors.Is(err, ErrUnavailable),
			errors.Is(err, ErrInvalidResponse):
			log.Warnf("generate meal [%d], falling back: %s", userID, err)
			suggestion = FallbackSuggestion(body.MealType, targets)
			handler.metrics.CounterMealGenFallbacks.Inc()
		default:
			log.Errorf("generate meal [%d]: %s", userID, err)
			http.Error(w, "failed to generate meal", http.StatusInternalServerError)
			return
		}
	}

	suggestionJson, err := json.Marshal(suggestion)
	if err != nil {
		log.Errorf("marshal meal suggestion: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, suggestionJson)
}
