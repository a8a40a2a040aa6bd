// Package energyplus is the output boundary of an assembly run. It turns the
// assembled object graph into exchange-format rows, saves them as the model
// file, writes snappy-compressed checkpoints, and drives the external
// simulation engine on the result.
//
// The package never changes the graph it is given. A failed engine run is
// reported through RunResult and ErrEngineFailure; the model on disk stays
// valid.
package energyplus
