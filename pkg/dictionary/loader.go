package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/phoneword/internal/utils"
	"github.com/charmbracelet/log"
)

//go:embed data/default_dictionary.txt
var defaultWords []byte

// maxLineSize bounds a single word list line.
const maxLineSize = 1 << 20

// Loader feeds word list lines into a Dictionary.
// Candidates are reduced to their ASCII letters and exact repeats are
// dropped before case folding, so "me" and "Me" both reach the dictionary.
type Loader struct {
	dict     *Dictionary
	distinct *utils.DistinctFilter
	lines    int
}

// NewLoader creates a loader filling a fresh dictionary.
func NewLoader() *Loader {
	return &Loader{
		dict:     New(),
		distinct: utils.NewDistinctFilter(),
	}
}

// Add processes a single raw word list line.
func (l *Loader) Add(line string) {
	l.lines++
	candidate := utils.KeepLetters(line)
	if !l.distinct.ShouldInclude(candidate) || candidate == "" {
		return
	}
	word := strings.ToUpper(candidate)
	l.dict.AddWord(Encode(word), word)
}

// Dictionary returns the dictionary built so far.
func (l *Loader) Dictionary() *Dictionary {
	return l.dict
}

// ReadFrom adds every line of r. Read failures are wrapped in ErrUnreadable.
func (l *Loader) ReadFrom(r io.Reader) (int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	var n int64
	for scanner.Scan() {
		n += int64(len(scanner.Bytes())) + 1
		l.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return n, nil
}

// LoadLines builds a dictionary from already split word list lines.
func LoadLines(lines []string) *Dictionary {
	loader := NewLoader()
	for _, line := range lines {
		loader.Add(line)
	}
	return loader.Dictionary()
}

// Load builds a dictionary from a word list with one candidate per line.
func Load(r io.Reader) (*Dictionary, error) {
	loader := NewLoader()
	if _, err := loader.ReadFrom(r); err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d lines: words=[%d], maxWordLength=[%d]",
		loader.lines, loader.dict.TotalWordCount(), loader.dict.MaxWordLength())
	return loader.Dictionary(), nil
}

// LoadFile builds a dictionary from the word list at path.
func LoadFile(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer file.Close()

	log.Debugf("Loading dictionary from: %s", path)
	dict, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dict, nil
}

// LoadDefault builds the dictionary bundled with the binary.
func LoadDefault() (*Dictionary, error) {
	return Load(bytes.NewReader(defaultWords))
}
