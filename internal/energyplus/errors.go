package energyplus

import "errors"

// ErrEngineFailure is returned when the simulation engine exits unsuccessfully
// or reports a fatal error.
var ErrEngineFailure = errors.New("simulation engine failed")
