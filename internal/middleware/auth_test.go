package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
		mockUserID         int64
		mockUserIDErr      error
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/a/login",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "AllowedPrefixWithoutToken",
			path:               "/catalog/trophies",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "NotAllowedPathWithoutToken",
			path:               "/progression/xp",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/secure/resource",
			method:             "GET",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockUserID:         42,
		},
		{
			name:               "InvalidToken",
			path:               "/secure/resource",
			method:             "GET",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
			mockUserIDErr:      auth.ErrNoSession,
		},
		{
			name:               "OptionsAlwaysAllowed",
			path:               "/progression/xp",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-FITQUEST-TOKEN", tc.token)
			}

			if tc.path == "/secure/resource" {
				mockLoginChecker.EXPECT().
					UserIDByToken(gomock.Any(), tc.token).
					Return(tc.mockUserID, tc.mockUserIDErr).AnyTimes()
			}

			var gotUserID int64
			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = auth.UserIDFromContext(r.Context())
			})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			if tc.name == "ValidToken" {
				assert.Equal(t, tc.mockUserID, gotUserID)
			}
		})
	}
}
