package sury

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcDefaults(t *testing.T) {
	p := NewParams()
	res, err := p.Calc()
	require.NoError(t, err)

	// z_0 = 0.075 * 15
	assert.Equal(t, 1.125, res.Z0)

	// profile lengths follow the depth column
	assert.Len(t, res.CvBulk, len(p.Depths))
	assert.Len(t, res.LamBulk, len(p.Depths))

	// surface layer carries the full surface-level bulk values
	sai := (1.0+2.0*p.HtW)*(1.0-p.RoofF) + p.RoofF
	assert.InDelta(t, 1.999, sai, 1e-9)
	assert.InDelta(t, sai*p.CvS, res.CvBulk[0], 1e-6)
	assert.InDelta(t, sai*p.LamS, res.LamBulk[0], 1e-9)

	re := p.Ustar * res.Z0 / 1.461e-5
	assert.InDelta(t, 1.29*math.Pow(re, 0.25)-2.0, res.KBm1, 1e-9)

	assert.Empty(t, res.Warnings)
}

func TestCalcFullyRoofed(t *testing.T) {
	// roof_f = 1 removes the canyon contribution entirely
	for _, h_t_w := range []float64{0.0, 0.5, 1.5, 2.0} {
		p := NewParams()
		p.RoofF = 1.0
		p.HtW = h_t_w
		p.SnowF = 0.3
		res, err := p.Calc()
		require.NoError(t, err)

		// SAI collapses to 1, psi_bulk to 1
		assert.InDelta(t, p.CvS, res.CvBulk[0], 1e-6)
		assert.InDelta(t, (1.0-p.SnowF)*p.Alb+p.SnowF*p.AlbSnow, res.AlbBulk, 1e-12)
	}
}

func TestCalcFullSnowCover(t *testing.T) {
	p := NewParams()
	p.SnowF = 1.0
	res, err := p.Calc()
	require.NoError(t, err)

	psi_bulk := get_psi_bulk(p.RoofF, get_psi_canyon(p.HtW))
	assert.InDelta(t, p.AlbSnow*psi_bulk, res.AlbBulk, 1e-12)
	assert.InDelta(t, 1.0-psi_bulk*(1.0-p.EmiSnow), res.EmiBulk, 1e-12)
}

func TestCalcRadiativeBoundsHold(t *testing.T) {
	// bulk albedo and emissivity stay in [0..1] for component values in [0..1]
	for _, h_t_w := range []float64{0.0, 0.5, 1.0, 2.0} {
		for _, roof_f := range []float64{0.0, 0.3, 0.667, 1.0} {
			for _, snow_f := range []float64{0.0, 0.5, 1.0} {
				for _, alb := range []float64{0.0, 0.101, 1.0} {
					p := NewParams()
					p.HtW = h_t_w
					p.RoofF = roof_f
					p.SnowF = snow_f
					p.Alb = alb
					res, err := p.Calc()
					require.NoError(t, err)
					assert.GreaterOrEqual(t, res.AlbBulk, 0.0)
					assert.LessOrEqual(t, res.AlbBulk, 1.0)
					assert.GreaterOrEqual(t, res.EmiBulk, 0.0)
					assert.LessOrEqual(t, res.EmiBulk, 1.0)
				}
			}
		}
	}
}

func TestCalcValidityRangeWarning(t *testing.T) {
	p := NewParams()
	p.HtW = 3.0
	res, err := p.Calc()
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "validity range")

	// computation proceeded with the same formulas
	sai := (1.0+2.0*p.HtW)*(1.0-p.RoofF) + p.RoofF
	assert.InDelta(t, sai*p.CvS, res.CvBulk[0], 1e-6)
}

func TestCalcRejectsInvalidFractions(t *testing.T) {
	tests := []struct {
		name  string
		set   func(*Params)
		field string
	}{
		{"roof fraction above one", func(p *Params) { p.RoofF = 1.2 }, "roof_f"},
		{"roof fraction negative", func(p *Params) { p.RoofF = -0.1 }, "roof_f"},
		{"snow fraction above one", func(p *Params) { p.SnowF = 1.01 }, "snow_f"},
		{"snow fraction negative", func(p *Params) { p.SnowF = -0.5 }, "snow_f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams()
			tt.set(p)
			_, err := p.Calc()
			var ferr *InvalidFractionError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.field, ferr.Name)
		})
	}
}

func TestCalcRejectsNegativeDepths(t *testing.T) {
	p := NewParams()
	p.Depths = []float64{0.0, -0.05}
	_, err := p.Calc()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestCalcEmptyDepthColumn(t *testing.T) {
	p := NewParams()
	p.Depths = nil
	res, err := p.Calc()
	require.NoError(t, err)
	assert.Empty(t, res.CvBulk)
	assert.Empty(t, res.LamBulk)
	assert.Equal(t, 1.125, res.Z0)
}
