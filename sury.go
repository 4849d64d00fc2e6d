/*
Package sury derives bulk land-surface parameters from urban-canopy
parameters according to the Semi-Empirical URban canopY parametrization
(SURY).

The bulk parameters replace a full three-dimensional canopy description
so that a flat-surface land-surface module can represent an urban tile:
bulk albedo, bulk emissivity, vertical profiles of bulk heat
conductivity and heat capacity, the aerodynamic roughness length and
kB⁻¹ = ln(z_0/z_0H).

Reference:

	Wouters, H., Demuzere, M., Blahak, U., Fortuniak, K., Maiheu, B.,
	Camps, J., Tielemans, D., and van Lipzig, N. P. M.: The efficient
	urban canopy dependency parametrization (SURY) v1.0 for atmospheric
	modelling: description and application with the COSMO-CLM model for
	a Belgian summer, Geosci. Model Dev., 9, 3027-3054, 2016.
*/
package sury

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"
)

// Params holds the urban-canopy parameters. The zero value is not
// usable; obtain defaults with NewParams and override as needed.
type Params struct {
	Alb     float64   // substrate albedo, -
	Emi     float64   // substrate emissivity, -
	LamS    float64   // substrate heat conductivity, W/m K
	CvS     float64   // substrate heat capacity, J/m3 K
	H       float64   // building height, m
	HtW     float64   // canyon height-to-width ratio, -; validity range [0..2]
	RoofF   float64   // roof fraction, -, [0..1]
	Depths  []float64 // depths of the ground layers in the vertical column of the bulk land-surface module, m, [d]
	LamSoil float64   // heat conductivity of the soil below, W/m K
	CvSoil  float64   // heat capacity of the soil below, J/m3 K
	AlbSnow float64   // albedo of snow, -
	EmiSnow float64   // emissivity of snow, -
	SnowF   float64   // snow fraction, -, [0..1]
	Ustar   float64   // friction velocity, m/s

	// Optional per-facet (roof/wall/road) values. When any member of a
	// triad is set, all three must be set and the corresponding
	// substrate scalar is replaced by the facet-area-weighted average.
	CvFacet  FacetTriad // heat capacity per facet, J/m3 K
	LamFacet FacetTriad // heat conductivity per facet, W/m K
	AlbFacet FacetTriad // albedo per facet, -
	EmiFacet FacetTriad // emissivity per facet, -
}

// BulkResult holds the derived bulk parameters.
type BulkResult struct {
	AlbBulk  float64   // bulk albedo, -
	EmiBulk  float64   // bulk emissivity, -
	LamBulk  []float64 // vertical profile of bulk heat conductivity, W/m K, [d]
	CvBulk   []float64 // vertical profile of bulk heat capacity, J/m3 K, [d]
	Z0       float64   // aerodynamic roughness length, m
	KBm1     float64   // kB^-1 = ln(z_0/z_0H), -
	Warnings []string  // advisory messages; the computation proceeded regardless
}

// NewParams returns the reference urban-canopy parameter set.
func NewParams() *Params {
	return &Params{
		Alb:     0.101,
		Emi:     0.86,
		LamS:    0.777,
		CvS:     1.25e6,
		H:       15.0,
		HtW:     1.5,
		RoofF:   0.667,
		Depths:  DefaultDepths(),
		LamSoil: 0.28,
		CvSoil:  1.35e6,
		AlbSnow: 0.70,
		EmiSnow: 0.997,
		SnowF:   0.0,
		Ustar:   0.25,
	}
}

// DefaultDepths returns the reference 11-layer ground column, m.
func DefaultDepths() []float64 {
	return []float64{0.0, 0.01, 0.035, 0.08, 0.17, 0.35, 0.71, 1.43, 2.87, 5.75, 11.51}
}

/*
Derive the bulk parameters from the urban-canopy parameters.

	Returns:
	    bulk parameters (see BulkResult)

	Notes:
	    Pure and deterministic. A canyon height-to-width ratio above the
	    validity range is reported on BulkResult.Warnings, not as an
	    error. Incomplete facet triads and fractions outside [0..1] are
	    rejected before any stage runs.
*/
func (p *Params) Calc() (*BulkResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if p.HtW > 2.0 {
		msg := fmt.Sprintf("canyon height-to-width ratio %v falls outside of the validity range [0..2]", p.HtW)
		log.Printf("Warning: %s", msg)
		warnings = append(warnings, msg)
	}

	// surface area index of a perfect canyon: parallel canyons and flat roofs
	sai := get_sai(p.HtW, p.RoofF)

	// substrate properties, facet-area weighted when per-facet values are given
	cv_s := get_facet_weighted(p.CvFacet, p.CvS, p.HtW, p.RoofF)
	lam_s := get_facet_weighted(p.LamFacet, p.LamS, p.HtW, p.RoofF)

	// surface-level bulk thermal properties
	cv_bulk_s := sai * cv_s
	lam_bulk_s := sai * lam_s

	// vertical profiles for bulk heat conductivity and heat capacity
	cv_bulk := make([]float64, 0)
	lam_bulk := make([]float64, 0)
	if len(p.Depths) > 0 {
		depths := mat.NewVecDense(len(p.Depths), p.Depths)
		cv_bulk = get_bulk_profile(depths, p.H, cv_bulk_s, p.CvSoil)
		lam_bulk = get_bulk_profile(depths, p.H, lam_bulk_s, p.LamSoil)
	}

	// bulk radiative properties
	alb_bulk := get_alb_bulk(p.AlbFacet, p.Alb, p.AlbSnow, p.SnowF, p.HtW, p.RoofF)
	emi_bulk := get_emi_bulk(p.EmiFacet, p.Emi, p.EmiSnow, p.SnowF, p.HtW, p.RoofF)

	// surface-layer turbulence properties
	z_0 := get_z_0(p.H)
	kbm1 := get_kbm1(p.Ustar, z_0)

	return &BulkResult{
		AlbBulk:  alb_bulk,
		EmiBulk:  emi_bulk,
		LamBulk:  lam_bulk,
		CvBulk:   cv_bulk,
		Z0:       z_0,
		KBm1:     kbm1,
		Warnings: warnings,
	}, nil
}

func (p *Params) validate() error {
	if p.RoofF < 0.0 || p.RoofF > 1.0 {
		return &InvalidFractionError{Name: "roof_f", Value: p.RoofF}
	}
	if p.SnowF < 0.0 || p.SnowF > 1.0 {
		return &InvalidFractionError{Name: "snow_f", Value: p.SnowF}
	}
	for i, d := range p.Depths {
		if d < 0.0 {
			return fmt.Errorf("depths[%d] = %v: ground layer depths must be non-negative", i, d)
		}
	}
	triads := []struct {
		property string
		triad    FacetTriad
	}{
		{"Cv", p.CvFacet},
		{"lam", p.LamFacet},
		{"alb", p.AlbFacet},
		{"emi", p.EmiFacet},
	}
	for _, t := range triads {
		if t.triad.isSet() && !t.triad.complete() {
			return &MissingFacetParameterError{Property: t.property, Missing: t.triad.missing()}
		}
	}
	return nil
}

/*
Surface area index of a perfect canyon with parallel canyons and flat
roofs.

	Args:
	    h_t_w: canyon height-to-width ratio, -
	    roof_f: roof fraction, -

	Returns:
	    ratio of the total roof, wall and road surface area to the
	    horizontal projected area of the canyon unit cell, -
*/
func get_sai(h_t_w, roof_f float64) float64 {
	return (1.0+2.0*h_t_w)*(1.0-roof_f) + roof_f
}
