// Package movies loads the movie table and turns raw rows into typed,
// derived records through a load → coerce → derive pipeline. Each stage
// returns a new collection; none mutates its input.
package movies

// Inflation adjustment constants. The base year is fixed, not wall-clock.
const (
	InflationBaseYear = 2024
	InflationRate     = 1.03
)

// Columns is the fixed header of the source table, in order.
var Columns = []string{
	"Poster_Link",
	"Series_Title",
	"Released_Year",
	"Certificate",
	"Runtime",
	"Genre",
	"IMDB_Rating",
	"Overview",
	"Meta_score",
	"Director",
	"Star1",
	"Star2",
	"Star3",
	"Star4",
	"No_of_Votes",
	"Gross",
}

const (
	colPosterLink = iota
	colTitle
	colReleasedYear
	colCertificate
	colRuntime
	colGenre
	colIMDBRating
	colOverview
	colMetaScore
	colDirector
	colStar1
	colStar2
	colStar3
	colStar4
	colVotes
	colGross
)

// RawRow is one source row as text, without the poster link.
type RawRow struct {
	Title        string
	ReleasedYear string
	Certificate  string
	Runtime      string
	Genre        string
	IMDBRating   string
	Overview     string
	MetaScore    string
	Director     string
	Stars        [4]string
	Votes        string
	Gross        string
}

// Record is one movie after coercion and derivation. Nil pointers mark
// absent values.
type Record struct {
	Title          string
	ReleasedYear   *int
	Certificate    string
	RuntimeMinutes int
	IMDBRating     *float64
	// GenreRaw is the comma-joined source value; Genre is its split form.
	GenreRaw  string
	Genre     []string
	Overview  string
	MetaScore *float64
	Director  string
	Stars     [4]string
	Votes     *float64
	Gross     *float64

	MainGenre     *string
	Decade        *int
	AdjustedGross *float64
}

// Dataset is the derived record collection. It is read-only once built.
type Dataset struct {
	Name    string
	Records []Record
	Notes   CoercionNotes
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }
