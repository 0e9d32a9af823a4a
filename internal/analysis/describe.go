package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/reelstats/internal/movies"
)

// ColumnSummary is the describe() row of one numeric column.
type ColumnSummary struct {
	Name    string
	Count   int
	Missing int
	Mean    float64
	Std     float64 // sample standard deviation
	Min     float64
	Q25     float64
	Median  float64
	Q75     float64
	Max     float64
	// Outliers (robust Z via MAD)
	OutliersCount    int
	OutliersMaxAbsZ  float64
	OutlierThreshold float64
}

// Describe summarizes each numeric column. Quartiles interpolate linearly
// between order statistics. Columns without values have NaN statistics.
func Describe(ds *movies.Dataset, cols []NumericColumn, outlierThr float64) []ColumnSummary {
	if outlierThr <= 0 {
		outlierThr = 3.5
	}
	out := make([]ColumnSummary, 0, len(cols))
	for _, c := range cols {
		vals := Values(ds, c)
		s := ColumnSummary{Name: c.Name, Count: len(vals), Missing: ds.Len() - len(vals)}
		if len(vals) == 0 {
			nan := math.NaN()
			s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
			out = append(out, s)
			continue
		}
		s.Mean, _ = stats.Mean(vals)
		s.Min, _ = stats.Min(vals)
		s.Max, _ = stats.Max(vals)
		s.Median, _ = stats.Median(vals)
		s.Std = math.NaN()
		if len(vals) > 1 {
			s.Std, _ = stats.StandardDeviationSample(vals)
		}
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		s.Q25 = quantile(sorted, 0.25)
		s.Q75 = quantile(sorted, 0.75)

		if len(vals) >= 8 {
			s.OutliersCount, s.OutliersMaxAbsZ = robustOutliers(vals, s.Median, outlierThr)
			s.OutlierThreshold = outlierThr
		}
		out = append(out, s)
	}
	return out
}

// robustOutliers counts values whose modified z-score exceeds thr.
func robustOutliers(vals []float64, median, thr float64) (int, float64) {
	mad, err := stats.MedianAbsoluteDeviation(vals)
	if err != nil || mad == 0 {
		return 0, 0
	}
	var cnt int
	maxAbsZ := 0.0
	for _, v := range vals {
		az := math.Abs(0.6745 * (v - median) / mad)
		if az > thr {
			cnt++
		}
		if az > maxAbsZ {
			maxAbsZ = az
		}
	}
	return cnt, maxAbsZ
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
