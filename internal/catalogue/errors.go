package catalogue

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, one per spec.md §7 taxonomy entry. Grounded on the
// errors.New + errors.Is idiom used throughout
// AntonStoeckl-dynamic-streams-eventstore-go (eventstore/common.go's
// ErrEmptyTableNameSupplied / ErrConcurrencyConflict, matched with
// errors.Is in example/shared/shell/retry.go) — the only error-handling
// approach present anywhere in the retrieved corpus.
var (
	ErrNullInput        = errors.New("catalogue: null input")
	ErrInvalidISBN       = errors.New("catalogue: invalid isbn")
	ErrInvalidBookFields = errors.New("catalogue: invalid book fields")
	ErrDuplicateISBN     = errors.New("catalogue: duplicate isbn")
	ErrISBNNotPresent    = errors.New("catalogue: isbn not present")
	ErrInvalidCopyCount  = errors.New("catalogue: invalid copy count")
	ErrInvalidRating     = errors.New("catalogue: invalid rating")
	ErrOutOfStock        = errors.New("catalogue: out of stock")
	ErrInvalidArgument   = errors.New("catalogue: invalid argument")
)

// ValidationError wraps one of the sentinels above with the offending
// ISBN (or 0 when the error is not ISBN-scoped) and a human-readable
// detail, so callers can both errors.Is-match the kind and report the
// specific input that failed.
type ValidationError struct {
	Kind error
	ISBN int
	msg  string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return e.Kind }

func newValidationError(kind error, isbn int, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind: kind,
		ISBN: isbn,
		msg:  fmt.Sprintf(format, args...),
	}
}
