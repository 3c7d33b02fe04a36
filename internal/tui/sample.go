package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Person is one row of the demo table.
type Person struct {
	ID    ulid.ULID
	Name  string
	Quote string
}

// Words returns the number of words in the quote.
func (p Person) Words() int {
	return len(strings.Fields(p.Quote))
}

//nolint:gochecknoglobals // Fixed vocabularies for sample data.
var (
	firstNames = []string{
		"Ada", "Grace", "Alan", "Edsger", "Barbara", "Ken", "Frances", "Donald",
		"Margaret", "Dennis", "Radia", "John", "Hedy", "Niklaus", "Sophie", "Tim",
	}
	lastNames = []string{
		"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Thompson", "Allen", "Knuth",
		"Hamilton", "Ritchie", "Perlman", "Backus", "Lamarr", "Wirth", "Wilson", "Berners-Lee",
	}
	quoteWords = []string{
		"the", "drawer", "opens", "slowly", "while", "rows", "below", "move", "down",
		"every", "frame", "counts", "quietly", "and", "nothing", "snaps", "into", "place",
		"terminal", "lines", "ease", "out", "gently", "before", "settling",
	}
)

// sampleEpoch is the timestamp of every generated ULID so that output is reproducible.
//
//nolint:gochecknoglobals // Constant time value.
var sampleEpoch = time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)

const (
	minQuoteWords = 6
	maxQuoteWords = 30
)

// GenerateRows returns n people generated deterministically from seed.
func GenerateRows(n int, seed int64) []Person {
	//nolint:gosec // Sample data, not security sensitive.
	rng := rand.New(rand.NewSource(seed))
	entropy := ulid.Monotonic(rng, 0)
	ms := ulid.Timestamp(sampleEpoch)

	rows := make([]Person, n)
	for i := range rows {
		words := make([]string, minQuoteWords+rng.Intn(maxQuoteWords-minQuoteWords))
		for j := range words {
			words[j] = quoteWords[rng.Intn(len(quoteWords))]
		}
		quote := strings.Join(words, " ")

		rows[i] = Person{
			ID:    ulid.MustNew(ms, entropy),
			Name:  fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Quote: strings.ToUpper(quote[:1]) + quote[1:] + ".",
		}
	}
	return rows
}
