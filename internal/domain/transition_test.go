package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	requesterID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	ownerID     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	strangerID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func userWith(id uuid.UUID, scopes ...Scope) CurrentUser {
	return CurrentUser{ID: id, Username: "someone", Scopes: NewScopeSet(scopes...)}
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t, []BookingStatus{StatusConfirmed, StatusCancelled}, AllowedTransitions(StatusPending))
	assert.ElementsMatch(t, []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow}, AllowedTransitions(StatusConfirmed))
	assert.Empty(t, AllowedTransitions(StatusCompleted))
	assert.Empty(t, AllowedTransitions(StatusCancelled))
	assert.Empty(t, AllowedTransitions(StatusNoShow))
}

func TestCheckTransitionInvalidEdges(t *testing.T) {
	// Even an admin cannot walk an edge the table does not contain.
	admin := userWith(strangerID, ScopeAdminAll)

	invalid := []struct {
		from BookingStatus
		to   BookingStatus
	}{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusNoShow},
		{StatusPending, StatusPending},
		{StatusConfirmed, StatusPending},
		{StatusConfirmed, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCompleted, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusConfirmed},
		{StatusNoShow, StatusCancelled},
	}

	for _, tt := range invalid {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to, requesterID, ownerID, admin)
			var invalidErr *InvalidTransitionError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tt.from, invalidErr.From)
			assert.Equal(t, tt.to, invalidErr.To)
			assert.Equal(t, AllowedTransitions(tt.from), invalidErr.Allowed)
		})
	}
}

func TestCheckTransitionAuthorization(t *testing.T) {
	tests := []struct {
		name      string
		from      BookingStatus
		to        BookingStatus
		user      CurrentUser
		wantError bool
	}{
		{
			name: "owner confirms pending",
			from: StatusPending, to: StatusConfirmed,
			user: userWith(ownerID, ScopeManage),
		},
		{
			name: "requester cannot confirm own booking",
			from: StatusPending, to: StatusConfirmed,
			user:      userWith(requesterID, ScopeRead, ScopeWrite, ScopeCancel),
			wantError: true,
		},
		{
			name: "requester cancels own pending booking",
			from: StatusPending, to: StatusCancelled,
			user: userWith(requesterID, ScopeCancel),
		},
		{
			name: "requester without cancel scope cannot cancel",
			from: StatusPending, to: StatusCancelled,
			user:      userWith(requesterID, ScopeRead),
			wantError: true,
		},
		{
			name: "owner refuses pending booking",
			from: StatusPending, to: StatusCancelled,
			user: userWith(ownerID, ScopeManage),
		},
		{
			name: "requester cancels confirmed booking",
			from: StatusConfirmed, to: StatusCancelled,
			user: userWith(requesterID, ScopeCancel),
		},
		{
			name: "owner cancels confirmed booking",
			from: StatusConfirmed, to: StatusCancelled,
			user: userWith(ownerID, ScopeManage),
		},
		{
			name: "owner completes confirmed booking",
			from: StatusConfirmed, to: StatusCompleted,
			user: userWith(ownerID, ScopeManage),
		},
		{
			name: "owner marks no-show",
			from: StatusConfirmed, to: StatusNoShow,
			user: userWith(ownerID, ScopeManage),
		},
		{
			name: "requester cannot mark no-show",
			from: StatusConfirmed, to: StatusNoShow,
			user:      userWith(requesterID, ScopeCancel),
			wantError: true,
		},
		{
			name: "stranger with cancel scope cannot cancel",
			from: StatusConfirmed, to: StatusCancelled,
			user:      userWith(strangerID, ScopeCancel),
			wantError: true,
		},
		{
			name: "stranger with manage scope is not this venue's owner",
			from: StatusPending, to: StatusConfirmed,
			user:      userWith(strangerID, ScopeManage),
			wantError: true,
		},
		{
			name: "owner without manage scope cannot confirm",
			from: StatusPending, to: StatusConfirmed,
			user:      userWith(ownerID, ScopeRead),
			wantError: true,
		},
		{
			name: "admin write confirms anything",
			from: StatusPending, to: StatusConfirmed,
			user: userWith(strangerID, ScopeAdminWrite),
		},
		{
			name: "broad admin scope cancels",
			from: StatusConfirmed, to: StatusCancelled,
			user: userWith(strangerID, ScopeAdmin),
		},
		{
			name: "admin:scopes marks no-show",
			from: StatusConfirmed, to: StatusNoShow,
			user: userWith(strangerID, ScopeAdminAll),
		},
		{
			name: "admin read-only scope cannot write",
			from: StatusPending, to: StatusConfirmed,
			user:      userWith(strangerID, ScopeAdminRead),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to, requesterID, ownerID, tt.user)
			if tt.wantError {
				var forbiddenErr *ForbiddenError
				require.ErrorAs(t, err, &forbiddenErr)
				assert.Equal(t, tt.to, forbiddenErr.To)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckTransitionRequesterIsAlsoOwner(t *testing.T) {
	// A venue owner booking their own venue holds both roles.
	err := CheckTransition(StatusPending, StatusConfirmed, ownerID, ownerID, userWith(ownerID, ScopeManage))
	assert.NoError(t, err)

	err = CheckTransition(StatusPending, StatusCancelled, ownerID, ownerID, userWith(ownerID, ScopeManage))
	assert.NoError(t, err)
}
