package builder

import "errors"

var (
	// ErrUnsupportedType marks a definition whose tag has no parser.
	ErrUnsupportedType = errors.New("unsupported definition type")
	// ErrDefinitionNotFound marks a name missing from the library.
	ErrDefinitionNotFound = errors.New("definition not found")
	// ErrMalformedDefinition marks a definition whose required fields are
	// missing or do not parse.
	ErrMalformedDefinition = errors.New("malformed definition")
)
