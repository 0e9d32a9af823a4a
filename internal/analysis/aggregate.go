package analysis

import (
	"math"
	"sort"
	"strconv"

	"github.com/KaramelBytes/reelstats/internal/movies"
)

// CategoryCount is one category and its number of occurrences.
type CategoryCount struct {
	Value string
	Count int
}

// GroupMean is the mean of a numeric field within one group. Count is the
// number of present values that went into Mean.
type GroupMean struct {
	Key   string
	Mean  float64
	Count int
}

// YearGenreCount counts movies released in Year whose main genre is Genre.
type YearGenreCount struct {
	Year  int
	Genre string
	Count int
}

// YearCount counts movies released in Year.
type YearCount struct {
	Year  int
	Count int
}

// Bucket counts movies per discretized (gross, rating, meta score) cell:
// Gross is ⌊gross/100000⌋, Rating ⌊rating⌋, Meta ⌊meta/10⌋.
type Bucket struct {
	Gross  int
	Rating int
	Meta   int
	Count  int
}

// GroupValues holds the present values of a field for one group.
type GroupValues struct {
	Key    string
	Values []float64
}

type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v float64) {
	a.sum += v
	a.n++
}

// GenreMeanRating averages IMDB_Rating per flattened genre, ordered by genre.
// A movie counts once for each of its genres.
func GenreMeanRating(ds *movies.Dataset) []GroupMean {
	acc := map[string]*meanAcc{}
	for _, r := range ds.Records {
		if r.IMDBRating == nil {
			continue
		}
		for _, g := range r.Genre {
			a := acc[g]
			if a == nil {
				a = &meanAcc{}
				acc[g] = a
			}
			a.add(*r.IMDBRating)
		}
	}
	return means(acc)
}

// GenreCounts counts flattened genre occurrences, most frequent first.
func GenreCounts(ds *movies.Dataset) []CategoryCount {
	counts := map[string]int{}
	for _, r := range ds.Records {
		for _, g := range r.Genre {
			counts[g]++
		}
	}
	return sortCounts(counts)
}

// DirectorMeanGross averages Gross per director, highest first. Directors
// with no known gross are left out.
func DirectorMeanGross(ds *movies.Dataset) []GroupMean {
	acc := map[string]*meanAcc{}
	for _, r := range ds.Records {
		if r.Gross == nil {
			continue
		}
		a := acc[r.Director]
		if a == nil {
			a = &meanAcc{}
			acc[r.Director] = a
		}
		a.add(*r.Gross)
	}
	out := means(acc)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mean > out[j].Mean })
	return out
}

// CertificateMeanRating averages IMDB_Rating per certificate, ordered by
// certificate. Movies without a certificate are left out.
func CertificateMeanRating(ds *movies.Dataset) []GroupMean {
	acc := map[string]*meanAcc{}
	for _, r := range ds.Records {
		if r.IMDBRating == nil || r.Certificate == "" {
			continue
		}
		a := acc[r.Certificate]
		if a == nil {
			a = &meanAcc{}
			acc[r.Certificate] = a
		}
		a.add(*r.IMDBRating)
	}
	return means(acc)
}

// YearGenreCounts counts (release year, main genre) pairs ordered by year
// then genre. Movies missing either key are left out.
func YearGenreCounts(ds *movies.Dataset) []YearGenreCount {
	type key struct {
		year  int
		genre string
	}
	counts := map[key]int{}
	for _, r := range ds.Records {
		if r.ReleasedYear == nil || r.MainGenre == nil {
			continue
		}
		counts[key{*r.ReleasedYear, *r.MainGenre}]++
	}
	out := make([]YearGenreCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, YearGenreCount{Year: k.year, Genre: k.genre, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year == out[j].Year {
			return out[i].Genre < out[j].Genre
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// MoviesPerYear counts movies per release year, oldest first.
func MoviesPerYear(ds *movies.Dataset) []YearCount {
	counts := map[int]int{}
	for _, r := range ds.Records {
		if r.ReleasedYear != nil {
			counts[*r.ReleasedYear]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// BucketCounts counts movies per discretized (gross, rating, meta score)
// cell. Movies missing any of the three are left out.
func BucketCounts(ds *movies.Dataset) []Bucket {
	type key struct{ g, r, m int }
	counts := map[key]int{}
	for _, r := range ds.Records {
		if r.Gross == nil || r.IMDBRating == nil || r.MetaScore == nil {
			continue
		}
		k := key{
			g: floorDiv(*r.Gross, 100000),
			r: floorDiv(*r.IMDBRating, 1),
			m: floorDiv(*r.MetaScore, 10),
		}
		counts[k]++
	}
	out := make([]Bucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, Bucket{Gross: k.g, Rating: k.r, Meta: k.m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Gross != b.Gross {
			return a.Gross < b.Gross
		}
		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}
		return a.Meta < b.Meta
	})
	return out
}

// ValueCounts counts the values key returns, most frequent first. Records
// for which key reports false are skipped.
func ValueCounts(ds *movies.Dataset, key func(movies.Record) (string, bool)) []CategoryCount {
	counts := map[string]int{}
	for _, r := range ds.Records {
		if k, ok := key(r); ok {
			counts[k]++
		}
	}
	return sortCounts(counts)
}

// ValuesByMainGenre groups the present values of col by main genre.
func ValuesByMainGenre(ds *movies.Dataset, col NumericColumn) []GroupValues {
	groups := map[string][]float64{}
	for _, r := range ds.Records {
		if r.MainGenre == nil {
			continue
		}
		if v, ok := col.Value(r); ok {
			groups[*r.MainGenre] = append(groups[*r.MainGenre], v)
		}
	}
	out := make([]GroupValues, 0, len(groups))
	for k, vs := range groups {
		out = append(out, GroupValues{Key: k, Values: vs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Key functions for ValueCounts.

func CertificateKey(r movies.Record) (string, bool) { return r.Certificate, r.Certificate != "" }
func DirectorKey(r movies.Record) (string, bool)    { return r.Director, r.Director != "" }

func MainGenreKey(r movies.Record) (string, bool) {
	if r.MainGenre == nil {
		return "", false
	}
	return *r.MainGenre, true
}

func DecadeKey(r movies.Record) (string, bool) {
	if r.Decade == nil {
		return "", false
	}
	return strconv.Itoa(*r.Decade), true
}

func means(acc map[string]*meanAcc) []GroupMean {
	out := make([]GroupMean, 0, len(acc))
	for k, a := range acc {
		out = append(out, GroupMean{Key: k, Mean: a.sum / float64(a.n), Count: a.n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func sortCounts(counts map[string]int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, CategoryCount{Value: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func floorDiv(v, d float64) int {
	return int(math.Floor(v / d))
}
