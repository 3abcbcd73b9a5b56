package get_occupied_slots

import "errors"

var (
	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("get_occupied_slots: internal error")
)
