package workouts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
)

type repoMock struct {
	workouts []Workout
	nextID   int64
}

func (m *repoMock) Add(_ context.Context, workout *Workout) (*Workout, error) {
	m.nextID++
	workout.ID = m.nextID
	m.workouts = append(m.workouts, *workout)
	return workout, nil
}

func (m *repoMock) Get(_ context.Context, userID, id int64) (*Workout, error) {
	for _, w := range m.workouts {
		if w.ID == id && w.UserID == userID {
			return &w, nil
		}
	}
	return nil, ErrWorkoutNotFound
}

func (m *repoMock) List(_ context.Context, params ListParams) ([]Workout, int, error) {
	var all []Workout
	for _, w := range m.workouts {
		if w.UserID == params.UserID && (params.Type == "" || w.Type == params.Type) {
			all = append(all, w)
		}
	}
	total := len(all)
	from := (params.Page - 1) * params.Size
	if from > total {
		from = total
	}
	to := from + params.Size
	if to > total {
		to = total
	}
	return all[from:to], total, nil
}

func (m *repoMock) Delete(_ context.Context, userID, id int64) error {
	for i, w := range m.workouts {
		if w.ID == id && w.UserID == userID {
			m.workouts = append(m.workouts[:i], m.workouts[i+1:]...)
			return nil
		}
	}
	return ErrWorkoutNotFound
}

func (m *repoMock) Stats(_ context.Context, userID int64) (Stats, error) {
	var stats Stats
	for _, w := range m.workouts {
		if w.UserID == userID {
			stats.TotalWorkouts++
			stats.TotalMinutes += w.DurationMinutes
			stats.TotalCalories += w.Calories
		}
	}
	return stats, nil
}

func authedRequest(method, path string, body []byte, userID int64, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), userID))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestHandler_Add(t *testing.T) {
	repo := &repoMock{}
	handler := NewHandler(repo)

	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, authedRequest("POST", "/workouts", []byte(
		`{"type":"strength","name":"Push day","durationMinutes":45,"calories":320}`,
	), 1, nil))

	require.Equal(t, http.StatusCreated, rr.Code)

	var added Workout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, int64(1), added.ID)
	assert.Equal(t, "strength", added.Type)
	assert.False(t, added.CreatedAt.IsZero())
	require.Len(t, repo.workouts, 1)
	assert.Equal(t, int64(1), repo.workouts[0].UserID)
}

func TestHandler_Add_invalid(t *testing.T) {
	handler := NewHandler(&repoMock{})

	for name, body := range map[string]string{
		"missing type":  `{"durationMinutes":45}`,
		"zero duration": `{"type":"cardio","durationMinutes":0}`,
		"broken json":   `{"type":`,
	} {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.HandleAdd(rr, authedRequest("POST", "/workouts", []byte(body), 1, nil))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandler_List(t *testing.T) {
	repo := &repoMock{}
	handler := NewHandler(repo)

	now := time.Now()
	for i := 0; i < 5; i++ {
		_, err := repo.Add(context.Background(), &Workout{
			UserID: 1, Type: "cardio", Name: gofakeit.Sentence(2),
			DurationMinutes: gofakeit.Number(10, 90), CreatedAt: now,
		})
		require.NoError(t, err)
	}
	// another user's workout must not leak into the list
	_, err := repo.Add(context.Background(), &Workout{
		UserID: 2, Type: "cardio", DurationMinutes: 30, CreatedAt: now,
	})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.HandleList(rr, authedRequest("GET", "/workouts/page/1/size/3", nil, 1, map[string]string{
		"page": "1", "size": "3",
	}))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Len(t, resp.Workouts, 3)
}

func TestHandler_List_invalidPage(t *testing.T) {
	handler := NewHandler(&repoMock{})

	rr := httptest.NewRecorder()
	handler.HandleList(rr, authedRequest("GET", "/workouts/page/x/size/3", nil, 1, map[string]string{
		"page": "x", "size": "3",
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_GetAndDelete(t *testing.T) {
	repo := &repoMock{}
	handler := NewHandler(repo)

	added, err := repo.Add(context.Background(), &Workout{
		UserID: 1, Type: "strength", DurationMinutes: 60, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	getRR := httptest.NewRecorder()
	handler.HandleGet(getRR, authedRequest("GET", "/workouts/1", nil, 1, map[string]string{"id": "1"}))
	require.Equal(t, http.StatusOK, getRR.Code)

	var got Workout
	require.NoError(t, json.Unmarshal(getRR.Body.Bytes(), &got))
	assert.Equal(t, added.ID, got.ID)

	// other user must not see or delete it
	otherRR := httptest.NewRecorder()
	handler.HandleGet(otherRR, authedRequest("GET", "/workouts/1", nil, 2, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusNotFound, otherRR.Code)

	delRR := httptest.NewRecorder()
	handler.HandleDelete(delRR, authedRequest("DELETE", "/workouts/1", nil, 1, map[string]string{"id": "1"}))
	require.Equal(t, http.StatusOK, delRR.Code)
	assert.Equal(t, `{"deletedId":1}`, delRR.Body.String())
	assert.Empty(t, repo.workouts)
}

func TestHandler_Stats(t *testing.T) {
	repo := &repoMock{}
	handler := NewHandler(repo)

	for _, w := range []Workout{
		{UserID: 1, Type: "cardio", DurationMinutes: 30, Calories: 250},
		{UserID: 1, Type: "strength", DurationMinutes: 45, Calories: 300},
		{UserID: 2, Type: "cardio", DurationMinutes: 90, Calories: 700},
	} {
		workout := w
		workout.CreatedAt = time.Now()
		_, err := repo.Add(context.Background(), &workout)
		require.NoError(t, err)
	}

	rr := httptest.NewRecorder()
	handler.HandleStats(rr, authedRequest("GET", "/workouts/stats", nil, 1, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var stats Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, Stats{TotalWorkouts: 2, TotalMinutes: 75, TotalCalories: 550}, stats)
}
