package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Scope is a permission string granted to a caller by the upstream
// gateway. The gateway has already verified the credential; this service
// only checks membership.
type Scope string

const (
	// Customer scopes
	ScopeRead   Scope = "bookings:read"   // view own bookings
	ScopeWrite  Scope = "bookings:write"  // create a booking
	ScopeCancel Scope = "bookings:cancel" // cancel own booking

	// Venue owner scopes
	ScopeManage Scope = "bookings:manage" // confirm / complete / no_show / refuse for own venue's bookings

	// Admin scopes
	ScopeAdmin       Scope = "admin:bookings"
	ScopeAdminRead   Scope = "admin:bookings:read"
	ScopeAdminWrite  Scope = "admin:bookings:write"
	ScopeAdminDelete Scope = "admin:bookings:delete"
	ScopeAdminAll    Scope = "admin:scopes"
)

// ScopeDescriptions documents the booking scopes for gateway registration.
var ScopeDescriptions = map[Scope]string{
	ScopeRead:        "View your own bookings.",
	ScopeWrite:       "Create a new booking at a venue.",
	ScopeCancel:      "Cancel your own pending or confirmed booking.",
	ScopeManage:      "Confirm, complete, or mark no-show on your venue bookings.",
	ScopeAdminRead:   "Read any booking regardless of owner (admin).",
	ScopeAdminWrite:  "Modify any booking status (admin).",
	ScopeAdminDelete: "Hard-delete any booking (admin).",
}

// ScopeSet is the set of scopes attached to a request.
type ScopeSet map[Scope]struct{}

// NewScopeSet builds a set from the given scopes.
func NewScopeSet(scopes ...Scope) ScopeSet {
	set := make(ScopeSet, len(scopes))
	for _, s := range scopes {
		set[s] = struct{}{}
	}
	return set
}

// ParseScopes parses the space-separated scope list forwarded by the
// gateway in the X-User-Scopes header.
func ParseScopes(raw string) ScopeSet {
	set := make(ScopeSet)
	for _, s := range strings.Fields(raw) {
		set[Scope(s)] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the scope.
func (s ScopeSet) Has(scope Scope) bool {
	_, ok := s[scope]
	return ok
}

// HasAny reports whether the set contains at least one of the scopes.
func (s ScopeSet) HasAny(scopes ...Scope) bool {
	for _, scope := range scopes {
		if s.Has(scope) {
			return true
		}
	}
	return false
}

// String returns the set as a space-separated list, in the header format
// used when forwarding the caller's identity to other services.
func (s ScopeSet) String() string {
	parts := make([]string, 0, len(s))
	for scope := range s {
		parts = append(parts, string(scope))
	}
	return strings.Join(parts, " ")
}

// CurrentUser is the pre-verified caller identity injected by the
// gateway. It is threaded explicitly through every operation; there is
// no ambient request-scoped identity anywhere in the service.
type CurrentUser struct {
	ID       uuid.UUID
	Username string
	Scopes   ScopeSet
}

// IsAdmin reports whether the caller holds the global admin scope.
func (u CurrentUser) IsAdmin() bool {
	return u.Scopes.Has(ScopeAdminAll)
}

// CanAdminRead reports whether the caller may read any booking.
func (u CurrentUser) CanAdminRead() bool {
	return u.IsAdmin() || u.Scopes.HasAny(ScopeAdmin, ScopeAdminRead)
}

// CanAdminWrite reports whether the caller may modify any booking status.
func (u CurrentUser) CanAdminWrite() bool {
	return u.IsAdmin() || u.Scopes.HasAny(ScopeAdmin, ScopeAdminWrite)
}

// CanAdminDelete reports whether the caller may hard-delete bookings.
func (u CurrentUser) CanAdminDelete() bool {
	return u.IsAdmin() || u.Scopes.Has(ScopeAdminDelete)
}
