package movies

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError is a fatal coercion failure on a strict column.
type ParseError struct {
	Row    int // 1-based data row
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: parse %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FieldNote counts values of one column that ended up absent.
type FieldNote struct {
	Missing int // empty in the source
	Invalid int // present but not numeric
}

// CoercionNotes maps column name to its absent-value counts.
type CoercionNotes map[string]FieldNote

func (n CoercionNotes) missing(col string) {
	f := n[col]
	f.Missing++
	n[col] = f
}

func (n CoercionNotes) invalid(col string) {
	f := n[col]
	f.Invalid++
	n[col] = f
}

// Coerce types every raw row. Released_Year, IMDB_Rating, Meta_score and
// No_of_Votes are lenient: bad values become absent. Runtime and Gross are
// strict: a bad value aborts with *ParseError. An empty Gross cell is a
// missing value, not a parse failure.
func Coerce(raw []RawRow) ([]Record, CoercionNotes, error) {
	notes := CoercionNotes{}
	out := make([]Record, 0, len(raw))
	for i, r := range raw {
		row := i + 1
		rec := Record{
			Title:       r.Title,
			Certificate: r.Certificate,
			GenreRaw:    r.Genre,
			Overview:    r.Overview,
			Director:    r.Director,
			Stars:       r.Stars,
		}
		rec.ReleasedYear = lenientInt(r.ReleasedYear, "Released_Year", notes)
		rec.IMDBRating = lenientFloat(r.IMDBRating, "IMDB_Rating", notes)
		rec.MetaScore = lenientFloat(r.MetaScore, "Meta_score", notes)
		rec.Votes = lenientFloat(r.Votes, "No_of_Votes", notes)

		runtime, err := ParseRuntime(r.Runtime)
		if err != nil {
			return nil, nil, &ParseError{Row: row, Column: "Runtime", Value: r.Runtime, Err: err}
		}
		rec.RuntimeMinutes = runtime

		if strings.TrimSpace(r.Gross) == "" {
			notes.missing("Gross")
		} else {
			g, err := ParseGross(r.Gross)
			if err != nil {
				return nil, nil, &ParseError{Row: row, Column: "Gross", Value: r.Gross, Err: err}
			}
			if math.IsNaN(g) {
				notes.missing("Gross")
			} else {
				rec.Gross = &g
			}
		}
		out = append(out, rec)
	}
	return out, notes, nil
}

// ParseRuntime removes every " min" and parses the rest as an integer.
// "142 min" is 142; "2h 22min" is an error.
func ParseRuntime(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, " min", ""))
}

// ParseGross removes every comma and parses the rest as a float.
func ParseGross(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
}

func lenientInt(s, col string, notes CoercionNotes) *int {
	v := strings.TrimSpace(s)
	if v == "" {
		notes.missing(col)
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return &n
	}
	// "1995.0" style values are still whole years
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		n := int(f)
		return &n
	}
	notes.invalid(col)
	return nil
}

func lenientFloat(s, col string, notes CoercionNotes) *float64 {
	v := strings.TrimSpace(s)
	if v == "" {
		notes.missing(col)
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		notes.invalid(col)
		return nil
	}
	return &f
}
