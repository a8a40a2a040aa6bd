package assembler

import "errors"

var (
	// ErrUnresolvedAdjacency marks a surface whose declared partner was
	// never recorded.
	ErrUnresolvedAdjacency = errors.New("unresolved adjacency")
	// ErrUnsupportedHVACSystem marks an HVAC group whose system index has no
	// implementation.
	ErrUnsupportedHVACSystem = errors.New("unsupported HVAC system")
	// ErrHVACGroupConflict marks a zone whose system index differs from the
	// one its HVAC group was created with.
	ErrHVACGroupConflict = errors.New("conflicting HVAC system in group")
	// ErrMissingRequiredInput aborts assembly before any object is created.
	ErrMissingRequiredInput = errors.New("missing required input")
)
