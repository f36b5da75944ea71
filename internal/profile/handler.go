package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

type profileRepo interface {
	AddUser(ctx context.Context, username, passwordHash string) (int64, error)
	Get(ctx context.Context, userID int64) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	AddWeightEntry(ctx context.Context, userID int64, weightKg float64, createdAt time.Time) (*WeightEntry, error)
	WeightHistory(ctx context.Context, userID int64, limit int) ([]WeightEntry, error)
}

type loginService interface {
	Login(ctx context.Context, credentials auth.Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type TargetsResponse struct {
	Targets scoring.NutritionTargets `json:"targets"`
	BMI     scoring.BMIResult        `json:"bmi"`
}

type Handler struct {
	repo         profileRepo
	loginService loginService
}

func NewHandler(repo profileRepo, loginService loginService) *Handler {
	return &Handler{
		repo:         repo,
		loginService: loginService,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.register")
	defer span.End()

	var credentials auth.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if len(credentials.Username) < 3 {
		http.Error(w, "error, username too short", http.StatusBadRequest)
		return
	}
	if len(credentials.Password) < 8 {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(credentials.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	userID, err := handler.repo.AddUser(ctx, credentials.Username, passwordHash)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "error, username taken", http.StatusConflict)
			return
		}
		log.Errorf("register, add user [%s]: %s", credentials.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: [%s]: %d", credentials.Username, userID)

	pkg.WriteResponseBytes(
		w, pkg.ContentType.JSON,
		[]byte(`{"userId":`+strconv.FormatInt(userID, 10)+`}`),
		http.StatusCreated,
	)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.login")
	defer span.End()

	var credentials auth.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	token, err := handler.loginService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrWrongPassword) {
			log.Tracef("login failed for [%s]: %s", credentials.Username, err)
			http.Error(w, "error, wrong username or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login [%s]: %s", credentials.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"token":"`+token+`"}`)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.logout")
	defer span.End()

	token := r.Header.Get("X-FITQUEST-TOKEN")
	if token == "" {
		http.Error(w, "error, token empty", http.StatusBadRequest)
		return
	}

	loggedOut, err := handler.loginService.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "error, session not found", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "error, profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile [%d]: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}
	if p.WeightKg < 0 || p.HeightCm < 0 || p.Age < 0 {
		http.Error(w, "error, negative profile values", http.StatusBadRequest)
		return
	}

	p.UserID = userID
	if err := handler.repo.Update(ctx, &p); err != nil {
		log.Errorf("update profile [%d]: %s", userID, err)
		http.Error(w, "error, failed to update profile", http.StatusInternalServerError)
		return
	}

	// targets follow the profile, recomputed on every change
	targets, err := scoring.ComputeNutritionTargets(p.Metrics())
	if err != nil && !errors.Is(err, scoring.ErrInvalidProfile) {
		log.Errorf("update profile [%d], compute targets: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := struct {
		Updated bool                     `json:"updated"`
		Targets scoring.NutritionTargets `json:"targets"`
		BMI     scoring.BMIResult        `json:"bmi"`
	}{
		Updated: true,
		Targets: targets,
		BMI:     scoring.ComputeBMI(p.WeightKg, p.HeightCm),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal update profile response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.targets")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "error, profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get targets [%d]: %s", userID, err)
		http.Error(w, "failed to get targets", http.StatusInternalServerError)
		return
	}

	targets, err := scoring.ComputeNutritionTargets(p.Metrics())
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidProfile) {
			http.Error(w, "error, profile incomplete", http.StatusBadRequest)
			return
		}
		log.Errorf("compute targets [%d]: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(TargetsResponse{
		Targets: targets,
		BMI:     scoring.ComputeBMI(p.WeightKg, p.HeightCm),
	})
	if err != nil {
		log.Errorf("marshal targets response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddWeightEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.addWeight")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params struct {
		WeightKg float64 `json:"weight"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("add weight entry, unmarshal json params: %s", err)
		http.Error(w, "add weight entry failed", http.StatusBadRequest)
		return
	}
	if params.WeightKg <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.AddWeightEntry(ctx, userID, params.WeightKg, time.Now())
	if err != nil {
		log.Errorf("add weight entry [%d]: %s", userID, err)
		http.Error(w, "error, failed to add weight entry", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal weight entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleWeightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.weightHistory")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := handler.repo.WeightHistory(ctx, userID, limit)
	if err != nil {
		log.Errorf("weight history [%d]: %s", userID, err)
		http.Error(w, "failed to get weight history", http.StatusInternalServerError)
		return
	}
	if len(entries) == 0 {
		entries = []WeightEntry{}
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal weight history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}
