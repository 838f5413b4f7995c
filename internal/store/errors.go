package store

import "errors"

// Domain error taxonomy. All of these are recoverable: the operation is
// refused, state is unchanged, and the caller surfaces a message.
var (
	// ErrNotFound reports that the addressed page or plan does not exist.
	ErrNotFound = errors.New("store: entity not found")
	// ErrProtectedEntity reports an attempted deletion of the system
	// home page.
	ErrProtectedEntity = errors.New("store: entity is protected and cannot be deleted")
	// ErrInvariantViolation reports a mutation that would break an
	// entity invariant, such as deactivating the popular plan.
	ErrInvariantViolation = errors.New("store: mutation violates an entity invariant")
	// ErrCapacityExceeded reports a capped create attempted beyond its
	// limit, as when the free tier is already at its page budget.
	ErrCapacityExceeded = errors.New("store: capacity limit exceeded")
)
