package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cinevault/internal/common"
	"cinevault/internal/logging"
	"cinevault/internal/server/models"
)

type contextKey int

const (
	ctxKeyUserID contextKey = iota
	ctxKeyUserEmail
	ctxKeyUser
)

// tokenFromRequest extracts the session token from the Authorization header
// ("Bearer <token>") or, failing that, from the session cookie.
func tokenFromRequest(r *http.Request) string {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(common.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// requireAuth guards a route group. The token check is delegated entirely to
// the user service; on success the user's id and email are placed in the
// request context.
func requireAuth(users UserProvider, l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeError(w, r, l, common.ErrorInvalidToken)
				return
			}

			user, err := users.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, r, l, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, user.ID)
			ctx = context.WithValue(ctx, ctxKeyUserEmail, user.Email)
			ctx = context.WithValue(ctx, ctxKeyUser, user.Public())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext returns the authenticated user's id. Handlers behind
// requireAuth can rely on it being set.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}

func userFromContext(ctx context.Context) *models.PublicUser {
	u, _ := ctx.Value(ctxKeyUser).(*models.PublicUser)
	return u
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per completed request.
func logRequests(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			l.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
