package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// transitionTable lists the allowed status edges. Everything not listed
// here is structurally impossible, regardless of who asks.
var transitionTable = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// AllowedTransitions returns the valid target statuses for the given
// current status. The returned slice must not be modified.
func AllowedTransitions(from BookingStatus) []BookingStatus {
	return transitionTable[from]
}

// InvalidTransitionError is returned when the requested edge is not in
// the transition table. Allowed carries the valid targets so the caller
// can retry intelligently.
type InvalidTransitionError struct {
	From    BookingStatus
	To      BookingStatus
	Allowed []BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %q to %q, allowed: %v", e.From, e.To, e.Allowed)
}

// ForbiddenError is returned when the edge exists but the caller lacks
// the required authorization. Deliberately distinct from
// InvalidTransitionError: callers must be able to tell "structurally
// impossible" from "you specifically may not".
type ForbiddenError struct {
	To     BookingStatus
	Reason string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("transition to %q forbidden: %s", e.To, e.Reason)
}

// CheckTransition decides whether user may move a booking with the given
// requester and venue owner from one status to another.
//
// Rules:
//
//	pending   → confirmed : venue owner + bookings:manage, OR admin
//	pending   → cancelled : requester + bookings:cancel,
//	                        OR venue owner + bookings:manage (owner refuses), OR admin
//	confirmed → completed : venue owner + bookings:manage, OR admin
//	confirmed → cancelled : requester + bookings:cancel,
//	                        OR venue owner + bookings:manage, OR admin
//	confirmed → no_show   : venue owner + bookings:manage, OR admin
//
// The guard never touches storage; it is a pure function of its inputs.
func CheckTransition(from, to BookingStatus, requesterID, venueOwnerID uuid.UUID, user CurrentUser) error {
	if from.Terminal() || !containsStatus(transitionTable[from], to) {
		return &InvalidTransitionError{From: from, To: to, Allowed: AllowedTransitions(from)}
	}

	if user.CanAdminWrite() {
		return nil
	}

	isOwner := user.ID == venueOwnerID && user.Scopes.Has(ScopeManage)

	switch to {
	case StatusConfirmed, StatusCompleted, StatusNoShow:
		if !isOwner {
			return &ForbiddenError{
				To:     to,
				Reason: fmt.Sprintf("requires %q scope and being the venue owner", ScopeManage),
			}
		}
	case StatusCancelled:
		isRequester := user.ID == requesterID && user.Scopes.Has(ScopeCancel)
		if !isRequester && !isOwner {
			return &ForbiddenError{
				To: to,
				Reason: fmt.Sprintf("requires %q scope and being the booking requester, or %q scope and being the venue owner",
					ScopeCancel, ScopeManage),
			}
		}
	}

	return nil
}

func containsStatus(list []BookingStatus, s BookingStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
