package sury

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// one row of a facet material property table
type facetPropertyRow struct {
	Facet string  `csv:"facet"` // "roof", "wall" or "road"
	Cv    float64 `csv:"cv"`    // heat capacity, J/m3 K
	Lam   float64 `csv:"lam"`   // heat conductivity, W/m K
	Alb   float64 `csv:"alb"`   // albedo, -
	Emi   float64 `csv:"emi"`   // emissivity, -
}

/*
Read a facet material property table from a CSV file and fill the
per-facet triads.

	Args:
	    file_path: CSV file with the columns facet, cv, lam, alb, emi
	               and one row per facet ("roof", "wall", "road")

	Notes:
	    Each row fills all four triads for its facet. A table that does
	    not cover all three facets leaves the triads incomplete, which
	    Calc rejects.
*/
func (p *Params) LoadFacetProperties(file_path string) error {
	file, err := os.Open(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	var rows []*facetPropertyRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return fmt.Errorf("read facet property table `%s`: %w", file_path, err)
	}

	for _, row := range rows {
		switch row.Facet {
		case "roof":
			p.CvFacet.Roof = _f(row.Cv)
			p.LamFacet.Roof = _f(row.Lam)
			p.AlbFacet.Roof = _f(row.Alb)
			p.EmiFacet.Roof = _f(row.Emi)
		case "wall":
			p.CvFacet.Wall = _f(row.Cv)
			p.LamFacet.Wall = _f(row.Lam)
			p.AlbFacet.Wall = _f(row.Alb)
			p.EmiFacet.Wall = _f(row.Emi)
		case "road":
			p.CvFacet.Road = _f(row.Cv)
			p.LamFacet.Road = _f(row.Lam)
			p.AlbFacet.Road = _f(row.Alb)
			p.EmiFacet.Road = _f(row.Emi)
		default:
			return fmt.Errorf("facet property table `%s`: unknown facet `%s`", file_path, row.Facet)
		}
	}

	return nil
}

func _f(v float64) *float64 {
	return &v
}
