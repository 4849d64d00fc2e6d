package sury

import "math"

/*
Fraction of the canyon floor and wall radiation that escapes the canyon
without being trapped by multiple reflection (a view-factor
approximation).

	Args:
	    h_t_w: canyon height-to-width ratio, -

	Returns:
	    canyon escape fraction, -
*/
func get_psi_canyon(h_t_w float64) float64 {
	return math.Exp(-0.6 * h_t_w)
}

/*
Escape fraction of the whole urban surface, combining the roofs (which
do not trap radiation) with the canyons.

	Args:
	    roof_f: roof fraction, -
	    psi_canyon: canyon escape fraction, -

	Returns:
	    bulk escape fraction, -
*/
func get_psi_bulk(roof_f, psi_canyon float64) float64 {
	return roof_f + (1.0-roof_f)*psi_canyon
}

/*
Bulk albedo of the urban surface.

	Args:
	    alb_facet: per-facet albedo values (optional), -
	    alb_s: substrate albedo, -
	    alb_snow: albedo of snow, -
	    snow_f: snow fraction, -
	    h_t_w: canyon height-to-width ratio, -
	    roof_f: roof fraction, -

	Returns:
	    bulk albedo, -

	Notes:
	    Without per-facet values the snow-blended substrate albedo is
	    scaled by the bulk escape fraction. With per-facet values each
	    facet is snow-blended first; the road and wall contributions are
	    combined in proportion to their canyon areas and scaled by the
	    canyon escape fraction, the roof contribution is added with the
	    roof fraction.
*/
func get_alb_bulk(alb_facet FacetTriad, alb_s, alb_snow, snow_f, h_t_w, roof_f float64) float64 {
	psi_canyon := get_psi_canyon(h_t_w)
	if !alb_facet.isSet() {
		psi_bulk := get_psi_bulk(roof_f, psi_canyon)
		return ((1.0-snow_f)*alb_s + snow_f*alb_snow) * psi_bulk
	}

	alb_roof := _snow_blend(*alb_facet.Roof, alb_snow, snow_f)
	alb_wall := _snow_blend(*alb_facet.Wall, alb_snow, snow_f)
	alb_road := _snow_blend(*alb_facet.Road, alb_snow, snow_f)

	return (alb_road+2.0*h_t_w*alb_wall)/(1.0+2.0*h_t_w)*psi_canyon*(1.0-roof_f) +
		alb_roof*roof_f
}

/*
Bulk emissivity of the urban surface.

	Args:
	    emi_facet: per-facet emissivity values (optional), -
	    emi_s: substrate emissivity, -
	    emi_snow: emissivity of snow, -
	    snow_f: snow fraction, -
	    h_t_w: canyon height-to-width ratio, -
	    roof_f: roof fraction, -

	Returns:
	    bulk emissivity, -

	Notes:
	    Same two branches as the bulk albedo, applied to the thermal
	    absorptivity complement 1 - emi. The branch without per-facet
	    values uses the bulk escape fraction directly while the
	    per-facet branch re-derives the roof/canyon split from the
	    canyon escape fraction and the roof fraction; both expressions
	    are kept as in the reference formulation.
*/
func get_emi_bulk(emi_facet FacetTriad, emi_s, emi_snow, snow_f, h_t_w, roof_f float64) float64 {
	psi_canyon := get_psi_canyon(h_t_w)
	if !emi_facet.isSet() {
		psi_bulk := get_psi_bulk(roof_f, psi_canyon)
		return 1.0 - psi_bulk*(1.0-((1.0-snow_f)*emi_s+snow_f*emi_snow))
	}

	abs_roof := 1.0 - _snow_blend(*emi_facet.Roof, emi_snow, snow_f)
	abs_wall := 1.0 - _snow_blend(*emi_facet.Wall, emi_snow, snow_f)
	abs_road := 1.0 - _snow_blend(*emi_facet.Road, emi_snow, snow_f)

	return 1.0 - ((abs_road+2.0*h_t_w*abs_wall)/(1.0+2.0*h_t_w)*psi_canyon*(1.0-roof_f) +
		abs_roof*roof_f)
}

// snow-covered fraction takes the snow value, the rest keeps the facet value
func _snow_blend(v, v_snow, snow_f float64) float64 {
	return v*(1.0-snow_f) + v_snow*snow_f
}
