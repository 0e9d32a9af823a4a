package analysis

import "github.com/KaramelBytes/reelstats/internal/movies"

// NumericColumn names a numeric field and reads it from a record.
type NumericColumn struct {
	Name  string
	Value func(movies.Record) (float64, bool)
}

var (
	ColReleasedYear  = NumericColumn{"Released_Year", func(r movies.Record) (float64, bool) { return intVal(r.ReleasedYear) }}
	ColRuntime       = NumericColumn{"Runtime", func(r movies.Record) (float64, bool) { return float64(r.RuntimeMinutes), true }}
	ColIMDBRating    = NumericColumn{"IMDB_Rating", func(r movies.Record) (float64, bool) { return floatVal(r.IMDBRating) }}
	ColMetaScore     = NumericColumn{"Meta_score", func(r movies.Record) (float64, bool) { return floatVal(r.MetaScore) }}
	ColVotes         = NumericColumn{"No_of_Votes", func(r movies.Record) (float64, bool) { return floatVal(r.Votes) }}
	ColGross         = NumericColumn{"Gross", func(r movies.Record) (float64, bool) { return floatVal(r.Gross) }}
	ColDecade        = NumericColumn{"Decade", func(r movies.Record) (float64, bool) { return intVal(r.Decade) }}
	ColAdjustedGross = NumericColumn{"Adjusted_Gross", func(r movies.Record) (float64, bool) { return floatVal(r.AdjustedGross) }}
)

// NumericColumns lists every numeric field of a derived record.
var NumericColumns = []NumericColumn{
	ColReleasedYear,
	ColRuntime,
	ColIMDBRating,
	ColMetaScore,
	ColVotes,
	ColGross,
	ColDecade,
	ColAdjustedGross,
}

// Values returns the present values of col, in record order.
func Values(ds *movies.Dataset, col NumericColumn) []float64 {
	out := make([]float64, 0, ds.Len())
	for _, r := range ds.Records {
		if v, ok := col.Value(r); ok {
			out = append(out, v)
		}
	}
	return out
}

// Paired returns the values of x and y from records where both are present.
func Paired(ds *movies.Dataset, x, y NumericColumn) (xs, ys []float64) {
	for _, r := range ds.Records {
		a, okA := x.Value(r)
		b, okB := y.Value(r)
		if okA && okB {
			xs = append(xs, a)
			ys = append(ys, b)
		}
	}
	return xs, ys
}

func intVal(p *int) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}

func floatVal(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
