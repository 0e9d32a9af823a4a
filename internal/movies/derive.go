package movies

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/reelstats/internal/source"
)

// Derive returns a dataset whose records carry the genre sequence, main
// genre, decade and inflation-adjusted gross. The input is not modified.
func Derive(name string, recs []Record, notes CoercionNotes) *Dataset {
	out := make([]Record, len(recs))
	for i, r := range recs {
		r.Genre = SplitGenre(r.GenreRaw)
		r.MainGenre = nil
		if len(r.Genre) > 0 {
			g := r.Genre[0]
			r.MainGenre = &g
		}
		r.Decade = nil
		r.AdjustedGross = nil
		if r.ReleasedYear != nil {
			d := DecadeOf(*r.ReleasedYear)
			r.Decade = &d
			if r.Gross != nil {
				a := AdjustGross(*r.Gross, *r.ReleasedYear)
				r.AdjustedGross = &a
			}
		}
		out[i] = r
	}
	return &Dataset{Name: name, Records: out, Notes: notes}
}

// SplitGenre splits a comma-joined genre list without trimming, so
// "Drama, Action" yields "Drama" and " Action".
func SplitGenre(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// DecadeOf floors year to its decade.
func DecadeOf(year int) int {
	d := year / 10
	if year%10 < 0 {
		d--
	}
	return d * 10
}

// AdjustGross compounds gross at InflationRate from year to InflationBaseYear.
func AdjustGross(gross float64, year int) float64 {
	return gross * math.Pow(InflationRate, float64(InflationBaseYear-year))
}

// Build runs load → coerce → derive for the table at path.
func Build(path string, opt source.Options) (*Dataset, error) {
	raw, err := Load(path, opt)
	if err != nil {
		return nil, err
	}
	recs, notes, err := Coerce(raw)
	if err != nil {
		return nil, err
	}
	return Derive(filepath.Base(path), recs, notes), nil
}
