package mnemonic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// ErrUnreadable is returned when a query source cannot be read.
var ErrUnreadable = errors.New("query source unreadable")

const maxLineSize = 1 << 20

// Converter finds word based equivalents of phone numbers against a Lexicon.
// It holds no per-query state and is safe for concurrent use.
type Converter struct {
	lex Lexicon
}

// NewConverter creates a converter reading from lex.
func NewConverter(lex Lexicon) *Converter {
	return &Converter{lex: lex}
}

// Process cleans every line to its digits and searches each non-empty result.
// Lines that clean to the same digits share an entry; the last one wins.
func (c *Converter) Process(lines []string) map[string][]string {
	results := make(map[string][]string, len(lines))
	for _, line := range lines {
		number := Clean(line)
		if number == "" {
			continue
		}
		results[number] = c.search(number)
	}
	return results
}

// ProcessReader runs Process over every line of r.
func (c *Converter) ProcessReader(r io.Reader) (map[string][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return c.Process(lines), nil
}

// ProcessFile runs Process over every line of the file at path.
func (c *Converter) ProcessFile(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer file.Close()

	results, err := c.ProcessReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}

// Search returns every rendering of number in search order. Non-digits are
// ignored. The result is never nil and may be empty.
func (c *Converter) Search(number string) []string {
	number = Clean(number)
	if number == "" {
		return []string{}
	}
	return c.search(number)
}

func (c *Converter) search(number string) []string {
	start := time.Now()
	w := walker{lex: c.lex, maxLen: c.lex.MaxWordLength(), results: []string{}}
	w.walk("", number)
	log.Debugf("Took [ %v ] for number '%s': %d renderings", time.Since(start), number, len(w.results))
	return w.results
}

// walker holds the result slice of a single query.
type walker struct {
	lex     Lexicon
	maxLen  int
	results []string
}

// walk extends built with every way of consuming the head of remaining:
// dictionary words first, then a single stray digit, then a forced 0 or 1.
func (w *walker) walk(built, remaining string) {
	if remaining == "" {
		w.results = append(w.results, built)
		return
	}

	if limit := min(w.maxLen, len(remaining)); limit > 0 {
		// The visitor never fails.
		_ = w.lex.VisitPrefixes(remaining[:limit], func(key string, words []string) error {
			for _, word := range words {
				w.walk(Join(built, word), remaining[len(key):])
			}
			return nil
		})
	}

	head := remaining[:1]
	if allowsStray(built) {
		w.walk(Join(built, head), remaining[1:])
	}
	if isUnmapped(remaining[0]) {
		w.walk(Join(built, head), remaining[1:])
	}
}
