package challenges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

type challengesService interface {
	Start(ctx context.Context, userID int64, templateID string, now time.Time) (scoring.Challenge, error)
	Current(ctx context.Context, userID int64, now time.Time) ([]scoring.Challenge, error)
	Claim(ctx context.Context, userID int64, challengeID string, now time.Time) (scoring.AwardResult, error)
}

type StartRequest struct {
	TemplateID string `json:"templateId"`
}

type CurrentResponse struct {
	Challenges []scoring.Challenge `json:"challenges"`
	Total      int                 `json:"total"`
}

type Handler struct {
	service challengesService
}

func NewHandler(service challengesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.current")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weekChallenges, err := handler.service.Current(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("get current challenges [%d]: %s", userID, err)
		http.Error(w, "failed to get current challenges", http.StatusInternalServerError)
		return
	}
	if weekChallenges == nil {
		weekChallenges = []scoring.Challenge{}
	}

	resp := CurrentResponse{
		Challenges: weekChallenges,
		Total:      len(weekChallenges),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal current challenges: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var startReq StartRequest
	if err := json.NewDecoder(r.Body).Decode(&startReq); err != nil {
		log.Warnf("start challenge [%d], decode request: %s", userID, err)
		http.Error(w, "error, failed to decode request", http.StatusBadRequest)
		return
	}
	if startReq.TemplateID == "" {
		http.Error(w, "error, template id empty", http.StatusBadRequest)
		return
	}

	started, err := handler.service.Start(ctx, userID, startReq.TemplateID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrUnknownChallengeTemplate):
			http.Error(w, "unknown challenge template", http.StatusNotFound)
		case errors.Is(err, scoring.ErrAlreadyActiveOrCompleted):
			http.Error(w, "challenge already started this week", http.StatusConflict)
		default:
			log.Errorf("start challenge [%d] [%s]: %s", userID, startReq.TemplateID, err)
			http.Error(w, "failed to start challenge", http.StatusInternalServerError)
		}
		return
	}

	startedJson, err := json.Marshal(started)
	if err != nil {
		log.Errorf("marshal started challenge: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, startedJson, http.StatusCreated)
}

func (handler *Handler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.claim")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	challengeID := vars["id"]
	if challengeID == "" {
		http.Error(w, "error, challenge id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Claim(ctx, userID, challengeID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrChallengeNotFound):
			http.Error(w, "challenge not found", http.StatusNotFound)
		case errors.Is(err, scoring.ErrNotCompleted):
			http.Error(w, "challenge not completed", http.StatusConflict)
		case errors.Is(err, scoring.ErrChallengeAlreadyClaimed):
			http.Error(w, "challenge reward already claimed", http.StatusConflict)
		default:
			log.Errorf("claim challenge [%d] [%s]: %s", userID, challengeID, err)
			http.Error(w, "failed to claim challenge", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal claim result: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}
