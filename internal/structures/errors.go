package structures

import "errors"

// User-facing errors. All are recovered at the call boundary: the operation
// reports through the notifier and aborts before any mutation.
var (
	// ErrIndexRange indicates a position outside the structure.
	ErrIndexRange = errors.New("structures: index out of range")

	// ErrEmptyValue indicates a missing key or value.
	ErrEmptyValue = errors.New("structures: empty value")

	// ErrSizeRange indicates a requested size outside the allowed bounds.
	ErrSizeRange = errors.New("structures: size out of range")

	// ErrEmpty indicates an operation on an empty structure.
	ErrEmpty = errors.New("structures: structure is empty")

	// ErrNotFound indicates a search that reached the end without a match.
	ErrNotFound = errors.New("structures: value not found")

	// ErrDuplicate indicates an insert of a value already present.
	ErrDuplicate = errors.New("structures: value already present")

	// ErrTooShort indicates a sort request on fewer than two elements.
	ErrTooShort = errors.New("structures: need at least two elements to sort")
)
