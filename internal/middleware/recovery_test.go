package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPanicRecovery(t *testing.T) {
	m := metrics.NewTestManager()

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("oh no")
	})

	req := httptest.NewRequest("GET", "/progression/xp", nil)
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		PanicRecovery(m)(panicky).ServeHTTP(rr, req)
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterHandleRequestPanic))
}

func TestPanicRecovery_nilManager(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("oh no")
	})

	req := httptest.NewRequest("GET", "/progression/xp", nil)
	assert.NotPanics(t, func() {
		PanicRecovery(nil)(panicky).ServeHTTP(httptest.NewRecorder(), req)
	})
}
