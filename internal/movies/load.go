package movies

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/reelstats/internal/source"
)

// ErrHeaderMismatch reports a source table whose header differs from Columns.
var ErrHeaderMismatch = errors.New("header mismatch")

// Load reads the table at path and returns its rows with the poster link
// column dropped. A missing file or bad header is fatal.
func Load(path string, opt source.Options) ([]RawRow, error) {
	rows, err := source.ReadFile(path, opt)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	raw, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return raw, nil
}

// FromRows converts a header-first table into raw rows.
func FromRows(rows [][]string) ([]RawRow, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrHeaderMismatch)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}
	out := make([]RawRow, 0, len(rows)-1)
	for i, rec := range rows[1:] {
		if blank(rec) {
			continue
		}
		if len(rec) > len(Columns) {
			return nil, fmt.Errorf("row %d: %d fields, want %d", i+1, len(rec), len(Columns))
		}
		if len(rec) < len(Columns) {
			tmp := make([]string, len(Columns))
			copy(tmp, rec)
			rec = tmp
		}
		out = append(out, RawRow{
			Title:        rec[colTitle],
			ReleasedYear: rec[colReleasedYear],
			Certificate:  rec[colCertificate],
			Runtime:      rec[colRuntime],
			Genre:        rec[colGenre],
			IMDBRating:   rec[colIMDBRating],
			Overview:     rec[colOverview],
			MetaScore:    rec[colMetaScore],
			Director:     rec[colDirector],
			Stars:        [4]string{rec[colStar1], rec[colStar2], rec[colStar3], rec[colStar4]},
			Votes:        rec[colVotes],
			Gross:        rec[colGross],
		})
	}
	return out, nil
}

func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("%w: %d columns, want %d", ErrHeaderMismatch, len(header), len(Columns))
	}
	for i, want := range Columns {
		got := strings.TrimSpace(header[i])
		if i == 0 {
			got = strings.TrimPrefix(got, "\ufeff")
		}
		if got != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrHeaderMismatch, i+1, got, want)
		}
	}
	return nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
