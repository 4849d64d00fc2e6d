package sury

import "math"

// kinematic viscosity of air, m2/s
func get_nu() float64 {
	return 1.461e-5
}

/*
Aerodynamic roughness length of the urban surface.

	Args:
	    h: building height, m

	Returns:
	    aerodynamic roughness length, m

	Notes:
	    Empirical roughness-to-height ratio z_0 = 0.075 H.
*/
func get_z_0(h float64) float64 {
	return 0.075 * h
}

/*
kB^-1 = ln(z_0/z_0H), the logarithmic ratio of the momentum roughness
length to the thermal roughness length.

	Args:
	    ustar: friction velocity, m/s
	    z_0: aerodynamic roughness length, m

	Returns:
	    kB^-1, -

	Notes:
	    Empirical correlation in the roughness Reynolds number,
	    kB^-1 = 1.29 Re^0.25 - 2 (Brutsaert-type closure).
*/
func get_kbm1(ustar, z_0 float64) float64 {
	re := ustar * z_0 / get_nu()
	return 1.29*math.Pow(re, 0.25) - 2.0
}
