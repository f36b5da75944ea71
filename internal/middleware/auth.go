package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	UserIDByToken(ctx context.Context, token string) (int64, error)
}

type AuthMiddlewareHandler struct {
	loginChecker         loginChecker
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
			"/health":  true,

			// login-logout-register:
			"/a/login":    true,
			"/a/logout":   true,
			"/a/register": true,
		},
		allowedPathsPrefixes: []string{
			"/catalog/", // badge and challenge catalogs are public
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get("X-FITQUEST-TOKEN")
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.loginChecker.UserIDByToken(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNoSession) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "not-logged")
					return
				}
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(ctx, userID)))
		})
	}
}
