// Package export writes report aggregations to an XLSX workbook.
package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/reelstats/internal/analysis"
)

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

// WriteWorkbook writes one sheet per aggregation of rep to path.
func WriteWorkbook(path string, rep *analysis.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets(rep) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("new sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, s sheet) error {
	rows := append([][]interface{}{s.header}, s.rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", s.name, i+1, err)
		}
	}
	return nil
}

func sheets(rep *analysis.Report) []sheet {
	describe := sheet{name: "describe", header: []interface{}{"column", "count", "missing", "mean", "std", "min", "25%", "50%", "75%", "max"}}
	for _, c := range rep.Columns {
		describe.rows = append(describe.rows, []interface{}{c.Name, c.Count, c.Missing, cell(c.Mean), cell(c.Std), cell(c.Min), cell(c.Q25), cell(c.Median), cell(c.Q75), cell(c.Max)})
	}

	genreRating := meanSheet("genre_mean_rating", "genre", "mean_rating", rep.GenreMeanRating)
	directorGross := meanSheet("director_mean_gross", "director", "mean_gross", rep.DirectorMeanGross)
	certRating := meanSheet("certificate_mean_rating", "certificate", "mean_rating", rep.CertificateMeanRating)

	genreCounts := sheet{name: "genre_counts", header: []interface{}{"genre", "count"}}
	for _, c := range rep.GenreCounts {
		genreCounts.rows = append(genreCounts.rows, []interface{}{c.Value, c.Count})
	}

	yearGenre := sheet{name: "year_genre_counts", header: []interface{}{"released_year", "main_genre", "count"}}
	for _, y := range rep.YearGenreCounts {
		yearGenre.rows = append(yearGenre.rows, []interface{}{y.Year, y.Genre, y.Count})
	}

	perYear := sheet{name: "movies_per_year", header: []interface{}{"released_year", "count"}}
	for _, y := range rep.MoviesPerYear {
		perYear.rows = append(perYear.rows, []interface{}{y.Year, y.Count})
	}

	buckets := sheet{name: "bucket_counts", header: []interface{}{"gross_bucket", "rating_bucket", "meta_bucket", "count"}}
	for _, b := range rep.Buckets {
		buckets.rows = append(buckets.rows, []interface{}{b.Gross, b.Rating, b.Meta, b.Count})
	}

	out := []sheet{describe, genreRating, genreCounts, directorGross, yearGenre, perYear}
	if rep.Corr != nil {
		out = append(out, corrSheet("correlation", rep.Corr))
	}
	if rep.RatingGrossCorr != nil {
		out = append(out, corrSheet("rating_gross_corr", rep.RatingGrossCorr))
	}
	out = append(out, buckets, certRating)

	for _, vc := range rep.ValueCounts {
		s := sheet{name: "counts_" + vc.Column, header: []interface{}{vc.Column, "count"}}
		for _, c := range vc.Counts {
			s.rows = append(s.rows, []interface{}{c.Value, c.Count})
		}
		out = append(out, s)
	}
	return out
}

func meanSheet(name, key, value string, groups []analysis.GroupMean) sheet {
	s := sheet{name: name, header: []interface{}{key, value, "n"}}
	for _, g := range groups {
		s.rows = append(s.rows, []interface{}{g.Key, cell(g.Mean), g.Count})
	}
	return s
}

func corrSheet(name string, m *analysis.CorrMatrix) sheet {
	s := sheet{name: name, header: []interface{}{""}}
	for _, c := range m.Columns {
		s.header = append(s.header, c)
	}
	for i, c := range m.Columns {
		row := []interface{}{c}
		for _, v := range m.Values[i] {
			row = append(row, cell(v))
		}
		s.rows = append(s.rows, row)
	}
	return s
}

// cell leaves absent statistics as empty cells.
func cell(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
