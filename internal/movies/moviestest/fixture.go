// Package moviestest provides a small movie table for tests.
package moviestest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Header is the source header line.
const Header = "Poster_Link,Series_Title,Released_Year,Certificate,Runtime,Genre,IMDB_Rating,Overview,Meta_score,Director,Star1,Star2,Star3,Star4,No_of_Votes,Gross"

// Rows are eight data rows. Apollo 13 has a non-numeric year and Drishyam
// has no meta score and no gross.
var Rows = []string{
	`https://img/1.jpg,The Shawshank Redemption,1994,A,142 min,Drama,9.3,"Two imprisoned men bond over a number of years.",80,Frank Darabont,Tim Robbins,Morgan Freeman,Bob Gunton,William Sadler,2343110,"28,341,469"`,
	`https://img/2.jpg,The Godfather,1972,A,175 min,"Crime, Drama",9.2,"An organized crime dynasty's aging patriarch hands over control.",100,Francis Ford Coppola,Marlon Brando,Al Pacino,James Caan,Diane Keaton,1620367,"134,966,411"`,
	`https://img/3.jpg,The Dark Knight,2008,UA,152 min,"Action, Crime, Drama",9.0,"Batman faces the Joker.",84,Christopher Nolan,Christian Bale,Heath Ledger,Aaron Eckhart,Michael Caine,2303232,"534,858,444"`,
	`https://img/4.jpg,Apollo 13,PG,U,140 min,"Adventure, Drama, History",7.6,"NASA must devise a strategy to return Apollo 13 to Earth.",77,Ron Howard,Tom Hanks,Bill Paxton,Kevin Bacon,Gary Sinise,269197,"173,837,933"`,
	`https://img/5.jpg,Inception,2010,UA,148 min,"Action, Adventure, Sci-Fi",8.8,"A thief who steals corporate secrets through dreams.",74,Christopher Nolan,Leonardo DiCaprio,Joseph Gordon-Levitt,Elliot Page,Ken Watanabe,2067042,"292,576,195"`,
	`https://img/6.jpg,Interstellar,2014,UA,169 min,"Adventure, Drama, Sci-Fi",8.6,"Explorers travel through a wormhole in space.",74,Christopher Nolan,Matthew McConaughey,Anne Hathaway,Jessica Chastain,Mackenzie Foy,1512360,"188,020,017"`,
	`https://img/7.jpg,Drishyam,2013,U,160 min,"Crime, Drama, Thriller",8.3,"A man goes to extreme lengths to save his family.",,Jeethu Joseph,Mohanlal,Meena,Asha Sharath,Ansiba,30722,`,
	`https://img/8.jpg,Warrior,2011,UA,140 min,"Drama, Action",8.1,"Two estranged brothers enter a mixed martial arts tournament.",71,Gavin O'Connor,Tom Hardy,Nick Nolte,Joel Edgerton,Jennifer Morrison,435950,"13,657,115"`,
}

// CSV returns the header and the given rows as CSV text.
func CSV(rows ...string) string {
	return Header + "\n" + strings.Join(rows, "\n") + "\n"
}

// WriteCSV writes the fixture table into a temp dir and returns its path.
func WriteCSV(t testing.TB) string {
	t.Helper()
	return WriteRows(t, Rows...)
}

// WriteRows writes the header plus rows into a temp dir and returns its path.
func WriteRows(t testing.TB, rows ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "imdb_top_1000.csv")
	if err := os.WriteFile(p, []byte(CSV(rows...)), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}
