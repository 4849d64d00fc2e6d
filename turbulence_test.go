package sury

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoughnessLength(t *testing.T) {
	assert.Equal(t, 1.125, get_z_0(15.0))
	assert.Equal(t, 0.075*22.5, get_z_0(22.5))
}

func TestKBm1Correlation(t *testing.T) {
	z_0 := get_z_0(15.0)
	re := 0.25 * z_0 / get_nu()
	assert.InDelta(t, 1.29*math.Pow(re, 0.25)-2.0, get_kbm1(0.25, z_0), 1e-12)
}

func TestKBm1GrowsWithFrictionVelocity(t *testing.T) {
	z_0 := get_z_0(15.0)
	prev := get_kbm1(0.05, z_0)
	for _, ustar := range []float64{0.1, 0.25, 0.5, 1.0} {
		cur := get_kbm1(ustar, z_0)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}
