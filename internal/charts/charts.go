// Package charts renders the movie aggregations as PNG images.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/KaramelBytes/reelstats/internal/analysis"
	"github.com/KaramelBytes/reelstats/internal/movies"
)

// Options sizes the rendered images.
type Options struct {
	Width  vg.Length
	Height vg.Length
	// TopDirectors limits the director bar chart.
	TopDirectors int
}

// DefaultOptions returns 10x6 inch charts and a top-10 director chart.
func DefaultOptions() Options {
	return Options{Width: 10 * vg.Inch, Height: 6 * vg.Inch, TopDirectors: 10}
}

type chart struct {
	file    string
	title   string
	insight string
	// build returns a single plot; draw is used instead for tiled images.
	build func() (*plot.Plot, error)
	draw  func(path string) error
}

// RenderAll writes every chart into dir and returns a note per file, in
// render order. Each report aggregation is drawn exactly once.
func RenderAll(dir string, ds *movies.Dataset, rep *analysis.Report, opt Options) ([]analysis.ChartNote, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		d := DefaultOptions()
		opt.Width, opt.Height = d.Width, d.Height
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir charts dir: %w", err)
	}
	var notes []analysis.ChartNote
	for _, c := range catalog(ds, rep, opt) {
		path := filepath.Join(dir, c.file)
		var err error
		if c.draw != nil {
			err = c.draw(path)
		} else {
			var p *plot.Plot
			p, err = c.build()
			if err == nil {
				p.Title.Text = c.title
				err = p.Save(opt.Width, opt.Height, path)
			}
		}
		if err != nil {
			return notes, fmt.Errorf("render %s: %w", c.file, err)
		}
		notes = append(notes, analysis.ChartNote{File: c.file, Title: c.title, Insight: c.insight})
	}
	return notes, nil
}

func catalog(ds *movies.Dataset, rep *analysis.Report, opt Options) []chart {
	topDirectors := rep.DirectorMeanGross
	if opt.TopDirectors > 0 && len(topDirectors) > opt.TopDirectors {
		topDirectors = topDirectors[:opt.TopDirectors]
	}
	return []chart{
		{
			file:    "Average_IMDB_Ratings_by_Genre.png",
			title:   "Average IMDB Rating by Genre",
			insight: "Average ratings sit close to 8 for every genre; the spread between genres is small.",
			build: func() (*plot.Plot, error) {
				return meanBars(rep.GenreMeanRating, "Genre", "Average IMDB Rating", colorBlue)
			},
		},
		{
			file:    fmt.Sprintf("Top_%d_Directors_by_Average_Gross_Earnings.png", len(topDirectors)),
			title:   fmt.Sprintf("Top %d Directors by Average Gross Earnings", len(topDirectors)),
			insight: "A handful of blockbuster directors dominate average gross earnings.",
			build: func() (*plot.Plot, error) {
				return meanBars(topDirectors, "Director", "Average Gross Earnings", colorPurple)
			},
		},
		{
			file:    "genre_popularity_over_years.png",
			title:   "Main Genre Popularity Over the Years",
			insight: "Main genre counts per year fluctuate, with drama present in almost every year.",
			build:   func() (*plot.Plot, error) { return yearGenreLines(rep.YearGenreCounts) },
		},
		{
			file:    "Histogram_of_IMDB_Ratings.png",
			title:   "Histogram of IMDB Ratings",
			insight: "Ratings are right-skewed: most movies score between 7.6 and 8.2.",
			build: func() (*plot.Plot, error) {
				return histogram(analysis.Values(ds, analysis.ColIMDBRating), 20, "IMDB Rating", colorGreen)
			},
		},
		{
			file:    "Boxplot_of_Runtime.png",
			title:   "Boxplot of Runtime",
			insight: "The median runtime is about two hours, with a tail of long epics above 200 minutes.",
			build: func() (*plot.Plot, error) {
				return boxes([]analysis.GroupValues{{Key: "Runtime", Values: analysis.Values(ds, analysis.ColRuntime)}}, "", "Runtime (minutes)", colorOrange)
			},
		},
		{
			file:    "scatterplot_of_GE_vs_rating.png",
			title:   "Gross Earnings vs IMDB Rating",
			insight: "High ratings do not imply high gross earnings.",
			build: func() (*plot.Plot, error) {
				return scatter(ds, analysis.ColGross, analysis.ColIMDBRating, "Gross Earnings (USD)", "IMDB Rating", colorBlue)
			},
		},
		{
			file:    "CM_GE_vs_rating.png",
			title:   "Correlation: IMDB Rating and Gross Earnings",
			insight: "Rating and gross earnings are barely correlated.",
			build:   func() (*plot.Plot, error) { return heatmap(rep.RatingGrossCorr) },
		},
		{
			file:    "SP_runtime_vs_rating.png",
			title:   "Runtime vs IMDB Rating",
			insight: "Longer movies rate slightly higher on average.",
			build: func() (*plot.Plot, error) {
				return scatter(ds, analysis.ColRuntime, analysis.ColIMDBRating, "Runtime (minutes)", "IMDB Rating", colorGreen)
			},
		},
		{
			file:    "SP_runtime_vs_GE.png",
			title:   "Runtime vs Gross Earnings",
			insight: "Runtime says little about gross earnings.",
			build: func() (*plot.Plot, error) {
				return scatter(ds, analysis.ColRuntime, analysis.ColGross, "Runtime (minutes)", "Gross Earnings", colorOrange)
			},
		},
		{
			file:    "Average_IMDB_Ratings_by_Certificate.png",
			title:   "Average IMDB Rating by Certificate",
			insight: "Adult-rated (A) movies carry the highest average rating, followed by UA and U.",
			build: func() (*plot.Plot, error) {
				return meanBars(rep.CertificateMeanRating, "Certificate", "Average IMDB Rating", colorRed)
			},
		},
		{
			file:    "Main_Genre_Distribution.png",
			title:   "Main Genre Distribution",
			insight: "Drama is the most common main genre, followed by Action and Comedy.",
			build: func() (*plot.Plot, error) {
				return shareBars(analysis.ValueCounts(ds, analysis.MainGenreKey), "Main Genre")
			},
		},
		{
			file:    "Line_Chart_of_Number_of_Movies_Released_by_Year.png",
			title:   "Number of Movies Released by Year",
			insight: "Recent decades contribute far more top-rated movies than early cinema.",
			build:   func() (*plot.Plot, error) { return yearLine(rep.MoviesPerYear) },
		},
		{
			file:    "Heatmap_of_Correlation_Matrix.png",
			title:   "Correlation Matrix of Numeric Columns",
			insight: "Votes and gross earnings have the strongest positive correlation.",
			build:   func() (*plot.Plot, error) { return heatmap(rep.Corr) },
		},
		{
			file:    "Boxplot_of_Runtime_by_Main_Genre.png",
			title:   "Runtime by Main Genre",
			insight: "Biography and adventure run longest; comedy and horror run shortest.",
			build: func() (*plot.Plot, error) {
				return boxes(analysis.ValuesByMainGenre(ds, analysis.ColRuntime), "Main Genre", "Runtime (minutes)", colorPink)
			},
		},
		{
			file:    "pair_plot_of_the_numerical_columns.png",
			title:   "Pair Plot of the Numeric Columns",
			insight: "Year and decade move together by construction; most other pairs show weak structure.",
			draw: func(path string) error {
				return pairPlot(ds, analysis.NumericColumns, path)
			},
		},
		{
			file:    "Count_Plot_of_Number_of_Movies_by_Decade.png",
			title:   "Number of Movies by Decade",
			insight: "The 2000s and 2010s hold the most movies.",
			build: func() (*plot.Plot, error) {
				return decadeBars(analysis.ValueCounts(ds, analysis.DecadeKey))
			},
		},
		{
			file:    "joint_plot_of_the_gross_earnings_and_the_IMDB_ratings.png",
			title:   "Gross Earnings and IMDB Ratings",
			insight: "Gross earnings are heavily right-skewed while ratings stay in a narrow band.",
			draw: func(path string) error {
				return jointPlot(ds, analysis.ColGross, analysis.ColIMDBRating, path, opt)
			},
		},
		{
			file:    "Boxplot_of_IMDB_Ratings_by_Main_Genre.png",
			title:   "IMDB Rating by Main Genre",
			insight: "Median ratings are similar across main genres.",
			build: func() (*plot.Plot, error) {
				return boxes(analysis.ValuesByMainGenre(ds, analysis.ColIMDBRating), "Main Genre", "IMDB Rating", colorMagenta)
			},
		},
		{
			file:    "Bar_Chart_of_Genre_Counts.png",
			title:   "Genre Counts",
			insight: "Drama is the most frequent genre; whitespace-prefixed names count as separate genres.",
			build:   func() (*plot.Plot, error) { return countBars(rep.GenreCounts, "Genre", colorGreen) },
		},
		{
			file:    "Bucket_Counts_Gross_Rating_Meta.png",
			title:   "Movies per Gross, Rating and Meta Score Bucket",
			insight: "Movies that earn more tend to have higher ratings and scores.",
			build:   func() (*plot.Plot, error) { return bucketBubbles(rep.Buckets) },
		},
	}
}
