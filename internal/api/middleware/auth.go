package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

const (
	headerUserID   = "X-User-Id"
	headerUsername = "X-Username"
	headerScopes   = "X-User-Scopes"
)

type userKey struct{}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth resolves the caller from the trusted identity headers set by the API
// gateway. Requests without a valid X-User-Id are rejected.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(headerUserID)
			if rawID == "" {
				handlers.RespondUnauthorized(w, "missing identity headers")
				return
			}
			userID, err := uuid.Parse(rawID)
			if err != nil {
				logger.Warn("[Auth] invalid %s header: %v", headerUserID, err)
				handlers.RespondUnauthorized(w, "invalid user id")
				return
			}

			// The gateway percent-encodes usernames to keep headers ASCII.
			username := r.Header.Get(headerUsername)
			if decoded, err := url.QueryUnescape(username); err == nil {
				username = decoded
			}

			user := domain.CurrentUser{
				ID:       userID,
				Username: username,
				Scopes:   domain.ParseScopes(r.Header.Get(headerScopes)),
			}

			ctx := context.WithValue(r.Context(), userKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCurrentUser returns the caller stored by Auth.
func GetCurrentUser(ctx context.Context) (domain.CurrentUser, bool) {
	user, ok := ctx.Value(userKey{}).(domain.CurrentUser)
	return user, ok
}
