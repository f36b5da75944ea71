package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

type progressionService interface {
	Summarize(ctx context.Context, userID int64, now time.Time) (*Summary, error)
	Level(ctx context.Context, userID int64) (scoring.LevelInfo, error)
	Streak(ctx context.Context, userID int64, now time.Time) (int, error)
	AwardXP(ctx context.Context, userID int64, action string, now time.Time) (scoring.AwardResult, error)
	XPHistory(ctx context.Context, userID int64, limit int) ([]XPEvent, error)
	Badges(ctx context.Context, userID int64, section string, now time.Time) ([]scoring.BadgeProgress, error)
	ClaimBadge(ctx context.Context, userID int64, section, badgeID string, now time.Time) (scoring.AwardResult, error)
}

type BadgesResponse struct {
	Badges []scoring.BadgeProgress `json:"badges"`
	Total  int                     `json:"total"`
}

type Handler struct {
	service progressionService
}

func NewHandler(service progressionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.summary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	summary, err := handler.service.Summarize(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("progression summary [%d]: %s", userID, err)
		http.Error(w, "failed to get progression summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal progression summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.level")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	levelInfo, err := handler.service.Level(ctx, userID)
	if err != nil {
		log.Errorf("get level [%d]: %s", userID, err)
		http.Error(w, "failed to get level", http.StatusInternalServerError)
		return
	}

	levelJson, err := json.Marshal(levelInfo)
	if err != nil {
		log.Errorf("marshal level: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, levelJson)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.streak")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	streak, err := handler.service.Streak(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("get streak [%d]: %s", userID, err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}

	resp := struct {
		Streak int `json:"streak"`
	}{Streak: streak}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal streak: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAwardXP(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.awardXP")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("award xp, unmarshal json params: %s", err)
		http.Error(w, "award xp failed", http.StatusBadRequest)
		return
	}
	if params.Action == "" {
		http.Error(w, "error, action empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.AwardXP(ctx, userID, params.Action, time.Now())
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidAction) {
			http.Error(w, "error, unknown action", http.StatusBadRequest)
			return
		}
		log.Errorf("award xp [%d] [%s]: %s", userID, params.Action, err)
		http.Error(w, "error, failed to award xp", http.StatusInternalServerError)
		return
	}

	log.Debugf("xp awarded: [%d] [%s]: +%d", userID, result.Action, result.EarnedXP)

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal award result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}

type XPHistoryResponse struct {
	Events []XPEvent `json:"events"`
	Total  int       `json:"total"`
}

func (handler *Handler) HandleXPHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.xpHistory")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var limit int
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsedLimit, err := strconv.Atoi(limitParam)
		if err != nil || parsedLimit <= 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	events, err := handler.service.XPHistory(ctx, userID, limit)
	if err != nil {
		log.Errorf("xp history [%d]: %s", userID, err)
		http.Error(w, "failed to get xp history", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []XPEvent{}
	}

	historyJson, err := json.Marshal(XPHistoryResponse{
		Events: events,
		Total:  len(events),
	})
	if err != nil {
		log.Errorf("marshal xp history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (handler *Handler) HandleBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.badges")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	section := mux.Vars(r)["section"]
	badges, err := handler.service.Badges(ctx, userID, section, time.Now())
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			http.Error(w, "error, unknown badge section", http.StatusBadRequest)
			return
		}
		log.Errorf("get badges [%d] [%s]: %s", userID, section, err)
		http.Error(w, "failed to get badges", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(BadgesResponse{
		Badges: badges,
		Total:  len(badges),
	})
	if err != nil {
		log.Errorf("marshal badges: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleClaimBadge(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.claimBadge")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	section, badgeID := vars["section"], vars["id"]

	result, err := handler.service.ClaimBadge(ctx, userID, section, badgeID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSection), errors.Is(err, scoring.ErrUnknownBadge):
			http.Error(w, "error, unknown badge", http.StatusNotFound)
		case errors.Is(err, scoring.ErrNotYetUnlocked):
			http.Error(w, "error, badge not yet unlocked", http.StatusConflict)
		case errors.Is(err, scoring.ErrAlreadyClaimed), errors.Is(err, ErrBadgeAlreadyClaimed):
			http.Error(w, "error, badge already claimed", http.StatusConflict)
		default:
			log.Errorf("claim badge [%d] [%s/%s]: %s", userID, section, badgeID, err)
			http.Error(w, "error, failed to claim badge", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("badge claimed: [%d] [%s/%s]: +%d xp", userID, section, badgeID, result.EarnedXP)

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal claim result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}
