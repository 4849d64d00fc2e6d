package sury

import (
	"fmt"
	"strings"
)

// MissingFacetParameterError reports a per-facet property triad that
// was only partially supplied. A triad drives the facet-area-weighted
// average and needs all of roof, wall and road.
type MissingFacetParameterError struct {
	Property string   // "Cv", "lam", "alb" or "emi"
	Missing  []string // facet names not supplied
}

func (e *MissingFacetParameterError) Error() string {
	return fmt.Sprintf("per-facet %s values are incomplete: missing %s",
		e.Property, strings.Join(e.Missing, ", "))
}

// InvalidFractionError reports a fraction parameter outside [0..1].
type InvalidFractionError struct {
	Name  string
	Value float64
}

func (e *InvalidFractionError) Error() string {
	return fmt.Sprintf("%s = %v is outside [0..1]", e.Name, e.Value)
}
