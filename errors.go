package gridpath

import "errors"

var (
	// ErrInvalidInput is returned for bad grid dimensions, out-of-bounds
	// endpoints and malformed edge costs. Grid and endpoint problems are
	// reported before searching; a bad edge cost when it is first relaxed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrImpassableEndpoint is returned when start or goal is blocked.
	ErrImpassableEndpoint = errors.New("impassable endpoint")

	// ErrNotFound is returned when the frontier is exhausted before reaching the goal.
	ErrNotFound = errors.New("no path found")

	// ErrInternalInconsistency signals broken search bookkeeping, e.g. a missing
	// predecessor while rebuilding the path.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
