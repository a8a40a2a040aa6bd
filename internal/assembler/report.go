package assembler

import (
	"errors"
	"time"
)

// Report summarizes one assembly run.
type Report struct {
	Zones          int
	Surfaces       int
	SubSurfaces    int
	AdjacencyLinks int
	HVACSystems    int
	DesignDays     int
	// Warnings holds every non-fatal problem in the order it was found.
	Warnings []error
	Duration time.Duration
}

// WarningsOf returns the warnings matching target with errors.Is.
func (r *Report) WarningsOf(target error) []error {
	var out []error
	for _, w := range r.Warnings {
		if errors.Is(w, target) {
			out = append(out, w)
		}
	}
	return out
}
