package mealgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"
	"github.com/coocood/freecache"
)

var (
	ErrRateLimited     = errors.New("meal generation rate limited")
	ErrUnavailable     = errors.New("meal generation unavailable")
	ErrInvalidResponse = errors.New("meal generation returned an invalid response")
)

// share of the daily targets expected from each meal
var mealRatios = map[string]float64{
	"breakfast": 0.25,
	"lunch":     0.35,
	"snack":     0.10,
	"dinner":    0.30,
}

func mealRatio(mealType string) float64 {
	if ratio, ok := mealRatios[mealType]; ok {
		return ratio
	}
	return 0.25
}

type Suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MealType    string `json:"mealType"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`
	Carbs       int    `json:"carbs"`
	Fat         int    `json:"fat"`
	Source      string `json:"source"` // "ai" or "fallback"
}

type generateRequest struct {
	MealType       string `json:"mealType"`
	TargetCalories int    `json:"targetCalories"`
	TargetProtein  int    `json:"targetProtein"`
}

type Client struct {
	baseURL    string
	cache      *freecache.Cache
	cacheTTL   int // seconds
	httpClient *http.Client
}

func NewClient(baseURL string, cacheTTLSecs int, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		baseURL:    baseURL,
		cache:      freecache.NewCache(cacheSize),
		cacheTTL:   cacheTTLSecs,
		httpClient: httpClient,
	}
}

// Generate asks the remote generator for a meal suggestion matching the
// per-meal share of the daily targets. The remote body is treated as
// opaque except for the nutrition fields checked below.
func (c *Client) Generate(ctx context.Context, mealType string, targets scoring.NutritionTargets) (suggestion Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mealGenClient.generate")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("meal suggestion generated for: %s", mealType))
		}
	}()

	ratio := mealRatio(mealType)
	genReq := generateRequest{
		MealType:       mealType,
		TargetCalories: int(float64(targets.DailyCalories) * ratio),
		TargetProtein:  int(float64(targets.TargetProtein) * ratio),
	}

	cacheKey := fmt.Sprintf("%s::%d::%d", genReq.MealType, genReq.TargetCalories, genReq.TargetProtein)
	if suggestionBytes, err := c.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found meal suggestion for %s in cache", mealType)
		if err = json.Unmarshal(suggestionBytes, &suggestion); err == nil {
			return suggestion, nil
		}
		log.Errorf("failed to unmarshal cached meal suggestion for %s: %s", mealType, err)
	}

	reqBytes, err := json.Marshal(genReq)
	if err != nil {
		return Suggestion{}, fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(reqBytes))
	if err != nil {
		return Suggestion{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return Suggestion{}, ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return Suggestion{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return Suggestion{}, fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: read body: %s", ErrInvalidResponse, err)
	}

	if err := json.Unmarshal(respBytes, &suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %s", ErrInvalidResponse, err)
	}
	if suggestion.Name == "" || suggestion.Calories <= 0 {
		return Suggestion{}, fmt.Errorf("%w: missing name or calories", ErrInvalidResponse)
	}

	suggestion.MealType = mealType
	suggestion.Source = "ai"

	cachedBytes, err := json.Marshal(suggestion)
	if err == nil {
		if err := c.cache.Set([]byte(cacheKey), cachedBytes, c.cacheTTL); err != nil {
			log.Errorf("failed to cache meal suggestion for %s: %s", mealType, err)
		}
	}

	return suggestion, nil
}
