package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func runAuth(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, domain.CurrentUser, bool) {
	t.Helper()

	var (
		captured domain.CurrentUser
		reached  bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, reached = GetCurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	Auth(nopLogger{})(next).ServeHTTP(rec, req)
	return rec, captured, reached
}

func TestAuthResolvesUser(t *testing.T) {
	userID := uuid.New()
	rec, user, reached := runAuth(t, map[string]string{
		"X-User-Id":     userID.String(),
		"X-Username":    "ivan",
		"X-User-Scopes": "bookings:read bookings:write",
	})

	require.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "ivan", user.Username)
	assert.True(t, user.Scopes.Has(domain.ScopeRead))
	assert.True(t, user.Scopes.Has(domain.ScopeWrite))
	assert.False(t, user.Scopes.Has(domain.ScopeCancel))
}

func TestAuthDecodesPercentEncodedUsername(t *testing.T) {
	_, user, reached := runAuth(t, map[string]string{
		"X-User-Id":  uuid.NewString(),
		"X-Username": "%D0%B8%D0%B2%D0%B0%D0%BD",
	})

	require.True(t, reached)
	assert.Equal(t, "иван", user.Username)
}

func TestAuthMissingUserID(t *testing.T) {
	rec, _, reached := runAuth(t, nil)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInvalidUserID(t *testing.T) {
	rec, _, reached := runAuth(t, map[string]string{"X-User-Id": "not-a-uuid"})
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthEmptyScopes(t *testing.T) {
	_, user, reached := runAuth(t, map[string]string{"X-User-Id": uuid.NewString()})
	require.True(t, reached)
	assert.Empty(t, user.Scopes)
}

func TestGetCurrentUserWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetCurrentUser(req.Context())
	assert.False(t, ok)
}
