package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScopes(t *testing.T) {
	set := ParseScopes("bookings:read bookings:write  bookings:cancel")
	assert.Len(t, set, 3)
	assert.True(t, set.Has(ScopeRead))
	assert.True(t, set.Has(ScopeWrite))
	assert.True(t, set.Has(ScopeCancel))
	assert.False(t, set.Has(ScopeManage))

	assert.Empty(t, ParseScopes(""))
	assert.Empty(t, ParseScopes("   "))
}

func TestScopeSetString(t *testing.T) {
	set := NewScopeSet(ScopeRead, ScopeWrite)
	parts := strings.Fields(set.String())
	assert.ElementsMatch(t, []string{"bookings:read", "bookings:write"}, parts)
}

func TestCurrentUserAdminChecks(t *testing.T) {
	tests := []struct {
		name      string
		scopes    []Scope
		canRead   bool
		canWrite  bool
		canDelete bool
	}{
		{
			name:   "plain customer",
			scopes: []Scope{ScopeRead, ScopeWrite, ScopeCancel},
		},
		{
			name:   "venue owner",
			scopes: []Scope{ScopeManage},
		},
		{
			name:    "admin read only",
			scopes:  []Scope{ScopeAdminRead},
			canRead: true,
		},
		{
			name:     "admin write only",
			scopes:   []Scope{ScopeAdminWrite},
			canWrite: true,
		},
		{
			name:      "admin delete only",
			scopes:    []Scope{ScopeAdminDelete},
			canDelete: true,
		},
		{
			name:     "broad bookings admin",
			scopes:   []Scope{ScopeAdmin},
			canRead:  true,
			canWrite: true,
		},
		{
			name:      "super admin",
			scopes:    []Scope{ScopeAdminAll},
			canRead:   true,
			canWrite:  true,
			canDelete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := CurrentUser{Scopes: NewScopeSet(tt.scopes...)}
			assert.Equal(t, tt.canRead, u.CanAdminRead())
			assert.Equal(t, tt.canWrite, u.CanAdminWrite())
			assert.Equal(t, tt.canDelete, u.CanAdminDelete())
		})
	}
}
