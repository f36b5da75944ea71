package trackers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

var dayRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type trackersRepo interface {
	AddGlass(ctx context.Context, userID int64, day string) (int, error)
	RemoveGlass(ctx context.Context, userID int64, day string) (int, error)
	Hydration(ctx context.Context, userID int64, day string) (int, error)
	SetSteps(ctx context.Context, userID int64, day string, steps int) error
	Steps(ctx context.Context, userID int64, day string) (int, error)
	AddSleep(ctx context.Context, userID int64, sleepLog *SleepLog) (*SleepLog, error)
	SleepHistory(ctx context.Context, userID int64, limit int) ([]SleepLog, error)
}

type Handler struct {
	repo trackersRepo
}

func NewHandler(repo trackersRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func requestDay(r *http.Request) (string, error) {
	day := mux.Vars(r)["date"]
	if day == "" {
		return time.Now().UTC().Format("2006-01-02"), nil
	}
	if !dayRegex.MatchString(day) {
		return "", fmt.Errorf("invalid date [%s]", day)
	}
	return day, nil
}

func (handler *Handler) HandleAddGlass(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.addGlass")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day, err := requestDay(r)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	glasses, err := handler.repo.AddGlass(ctx, userID, day)
	if err != nil {
		log.Errorf("add glass [%d] [%s]: %s", userID, day, err)
		http.Error(w, "error, failed to add glass", http.StatusInternalServerError)
		return
	}

	handler.writeHydrationDay(w, day, glasses)
}

func (handler *Handler) HandleRemoveGlass(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.removeGlass")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day, err := requestDay(r)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	glasses, err := handler.repo.RemoveGlass(ctx, userID, day)
	if err != nil {
		log.Errorf("remove glass [%d] [%s]: %s", userID, day, err)
		http.Error(w, "error, failed to remove glass", http.StatusInternalServerError)
		return
	}

	handler.writeHydrationDay(w, day, glasses)
}

func (handler *Handler) HandleHydration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.hydration")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day, err := requestDay(r)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	glasses, err := handler.repo.Hydration(ctx, userID, day)
	if err != nil {
		log.Errorf("get hydration [%d] [%s]: %s", userID, day, err)
		http.Error(w, "failed to get hydration", http.StatusInternalServerError)
		return
	}

	handler.writeHydrationDay(w, day, glasses)
}

func (handler *Handler) writeHydrationDay(w http.ResponseWriter, day string, glasses int) {
	respJson, err := json.Marshal(HydrationDay{
		Day:     day,
		Glasses: glasses,
		Target:  DefaultHydrationTarget,
	})
	if err != nil {
		log.Errorf("marshal hydration day: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSetSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.setSteps")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params StepsDay
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("set steps, unmarshal json params: %s", err)
		http.Error(w, "set steps failed", http.StatusBadRequest)
		return
	}
	if params.Steps < 0 {
		http.Error(w, "error, steps must not be negative", http.StatusBadRequest)
		return
	}
	if params.Day == "" {
		params.Day = time.Now().UTC().Format("2006-01-02")
	} else if !dayRegex.MatchString(params.Day) {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetSteps(ctx, userID, params.Day, params.Steps); err != nil {
		log.Errorf("set steps [%d] [%s]: %s", userID, params.Day, err)
		http.Error(w, "error, failed to set steps", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(params)
	if err != nil {
		log.Errorf("marshal steps day: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.steps")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day, err := requestDay(r)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	steps, err := handler.repo.Steps(ctx, userID, day)
	if err != nil {
		log.Errorf("get steps [%d] [%s]: %s", userID, day, err)
		http.Error(w, "failed to get steps", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(StepsDay{Day: day, Steps: steps})
	if err != nil {
		log.Errorf("marshal steps day: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.addSleep")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var sleepLog SleepLog
	if err := json.NewDecoder(r.Body).Decode(&sleepLog); err != nil {
		log.Errorf("add sleep, unmarshal json params: %s", err)
		http.Error(w, "add sleep failed", http.StatusBadRequest)
		return
	}
	if sleepLog.Hours <= 0 || sleepLog.Hours > 24 {
		http.Error(w, "error, invalid sleep hours", http.StatusBadRequest)
		return
	}
	if sleepLog.Day == "" {
		sleepLog.Day = time.Now().UTC().Format("2006-01-02")
	} else if !dayRegex.MatchString(sleepLog.Day) {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	addedLog, err := handler.repo.AddSleep(ctx, userID, &sleepLog)
	if err != nil {
		log.Errorf("add sleep [%d] [%s]: %s", userID, sleepLog.Day, err)
		http.Error(w, "error, failed to add sleep log", http.StatusInternalServerError)
		return
	}

	logJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("marshal sleep log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusCreated)
}

func (handler *Handler) HandleSleepHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trackers.sleepHistory")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sleepLogs, err := handler.repo.SleepHistory(ctx, userID, 30)
	if err != nil {
		log.Errorf("sleep history [%d]: %s", userID, err)
		http.Error(w, "failed to get sleep history", http.StatusInternalServerError)
		return
	}
	if len(sleepLogs) == 0 {
		sleepLogs = []SleepLog{}
	}

	logsJson, err := json.Marshal(sleepLogs)
	if err != nil {
		log.Errorf("marshal sleep history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, logsJson)
}
