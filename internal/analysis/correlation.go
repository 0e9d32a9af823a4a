package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/reelstats/internal/movies"
)

// CorrMatrix holds a symmetric Pearson correlation matrix. A NaN cell means
// the pair had fewer than two complete observations or no variance.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// PairCorr is a simple correlation pair summary.
type PairCorr struct {
	A, B string
	R    float64
}

// Correlation computes pairwise Pearson coefficients among cols. Each pair
// uses only the records where both values are present.
func Correlation(ds *movies.Dataset, cols []NumericColumn) *CorrMatrix {
	n := len(cols)
	names := make([]string, n)
	mat := make([][]float64, n)
	for i := range mat {
		names[i] = cols[i].Name
		mat[i] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			xs, ys := Paired(ds, cols[a], cols[b])
			r := math.NaN()
			if len(xs) >= 2 {
				r = clamp(stat.Correlation(xs, ys, nil))
			}
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return &CorrMatrix{Columns: names, Values: mat}
}

// At returns the coefficient between two named columns.
func (m *CorrMatrix) At(a, b string) (float64, bool) {
	ia, ib := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ia = i
		}
		if c == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m.Values[ia][ib], true
}

// Pairs lists the off-diagonal pairs with a defined coefficient, strongest
// first.
func (m *CorrMatrix) Pairs() []PairCorr {
	var pairs []PairCorr
	n := len(m.Columns)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := m.Values[i][j]
			if math.IsNaN(r) {
				continue
			}
			pairs = append(pairs, PairCorr{A: m.Columns[i], B: m.Columns[j], R: r})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].R), math.Abs(pairs[j].R)
		if ai == aj {
			return pairs[i].A+pairs[i].B < pairs[j].A+pairs[j].B
		}
		return ai > aj
	})
	return pairs
}

func clamp(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}
