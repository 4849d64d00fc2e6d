package sury

// FacetTriad carries an optional per-facet value for the roof, wall
// and road facets of the canyon. A nil member means "not supplied"; a
// triad with any member set must have all three set.
type FacetTriad struct {
	Roof *float64
	Wall *float64
	Road *float64
}

// NewFacetTriad returns a fully specified triad.
func NewFacetTriad(roof, wall, road float64) FacetTriad {
	return FacetTriad{Roof: &roof, Wall: &wall, Road: &road}
}

func (t FacetTriad) isSet() bool {
	return t.Roof != nil || t.Wall != nil || t.Road != nil
}

func (t FacetTriad) complete() bool {
	return t.Roof != nil && t.Wall != nil && t.Road != nil
}

func (t FacetTriad) missing() []string {
	m := make([]string, 0, 3)
	if t.Roof == nil {
		m = append(m, "roof")
	}
	if t.Wall == nil {
		m = append(m, "wall")
	}
	if t.Road == nil {
		m = append(m, "road")
	}
	return m
}

/*
Facet-area-weighted substrate property.

	Args:
	    t: per-facet property values; when not supplied, fallback is returned
	    fallback: scalar substrate property used without per-facet values
	    h_t_w: canyon height-to-width ratio, -
	    roof_f: roof fraction, -

	Returns:
	    substrate property averaged over the facet areas

	Notes:
	    The wall area scales with 2 * HtW (two canyon walls of height H
	    per unit canyon width); roof and road areas scale with the roof
	    fraction and its complement. The denominator is the surface
	    area index of the canyon.
*/
func get_facet_weighted(t FacetTriad, fallback, h_t_w, roof_f float64) float64 {
	if !t.isSet() {
		return fallback
	}
	return (*t.Roof*roof_f + (*t.Wall*2.0*h_t_w+*t.Road)*(1.0-roof_f)) /
		(roof_f + (2.0*h_t_w+1.0)*(1.0-roof_f))
}
