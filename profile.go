package sury

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Vertical profile of a bulk thermal property.

	Args:
	    depths: depths of the ground layers, m, [d]
	    h: building height, m
	    prop_bulk_s: surface-level bulk value of the property
	    prop_soil: value of the property for the soil below

	Returns:
	    bulk property per ground layer, [d]

	Notes:
	    Linear blending from the full urban-surface value at depth 0 to
	    the pure soil value at the building height; the blending weight
	    is clamped at the building height, so layers below it take the
	    soil value exactly.
*/
func get_bulk_profile(depths mat.Vector, h, prop_bulk_s, prop_soil float64) []float64 {
	prop_bulk := make([]float64, depths.Len())
	for i := 0; i < depths.Len(); i++ {
		w := math.Min(depths.AtVec(i), h) / h
		prop_bulk[i] = (1.0-w)*prop_bulk_s + w*prop_soil
	}
	return prop_bulk
}
