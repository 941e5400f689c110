/*
Package dictionary indexes a word list by its telephone keypad encoding.

Every word is stored under the digits dialed to spell it, so "CALL" lives
under "2255" next to any other word sharing that key:

	dict := dictionary.LoadLines([]string{"call", "ball", "me"})
	dict.Lookup("2255") // [CALL BALL]
	dict.Lookup("63")   // [ME]

Keys are held in a Patricia trie which lets the search walk every key that is
a prefix of the remaining digits in one pass. A Dictionary is populated once
and then only read; lookups never mutate it, so a loaded Dictionary can be
shared across goroutines.
*/
package dictionary

import (
	"errors"

	"github.com/tchap/go-patricia/v2/patricia"
)

var (
	// ErrUnreadable is returned when the word list source cannot be read.
	ErrUnreadable = errors.New("dictionary source unreadable")
	// ErrEmpty reports a dictionary without a single usable word.
	ErrEmpty = errors.New("dictionary contains no words that can be mapped to a phone number")
)

// wordSet keeps words in insertion order and drops identical re-insertions.
type wordSet struct {
	words []string
	seen  map[string]struct{}
}

func newWordSet() *wordSet {
	return &wordSet{seen: make(map[string]struct{}, 1)}
}

func (ws *wordSet) add(word string) bool {
	if _, ok := ws.seen[word]; ok {
		return false
	}
	ws.seen[word] = struct{}{}
	ws.words = append(ws.words, word)
	return true
}

// Dictionary is a collection of words indexed by their numeric equivalent.
// A repeated (key, word) pair is stored once but every insertion is counted.
type Dictionary struct {
	trie           *patricia.Trie
	totalWordCount int
	maxWordLength  int
	keys           int
	entries        int
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{trie: patricia.NewTrie()}
}

// AddWord stores word under key. Storing the same pair twice keeps a single
// entry but still counts towards TotalWordCount.
func (d *Dictionary) AddWord(key, word string) {
	if len(word) > d.maxWordLength {
		d.maxWordLength = len(word)
	}
	d.totalWordCount++

	if key == "" {
		return
	}
	set, ok := d.trie.Get(patricia.Prefix(key)).(*wordSet)
	if !ok {
		set = newWordSet()
		d.trie.Insert(patricia.Prefix(key), set)
		d.keys++
	}
	if set.add(word) {
		d.entries++
	}
}

// Lookup returns the words stored under key. The result is never nil.
func (d *Dictionary) Lookup(key string) []string {
	set, ok := d.trie.Get(patricia.Prefix(key)).(*wordSet)
	if !ok {
		return []string{}
	}
	words := make([]string, len(set.words))
	copy(words, set.words)
	return words
}

// VisitPrefixes calls fn for every stored key that is a prefix of digits,
// shortest key first. The words slice is shared and must not be modified.
// Returning an error from fn stops the walk and is passed back to the caller.
func (d *Dictionary) VisitPrefixes(digits string, fn func(key string, words []string) error) error {
	if digits == "" {
		return nil
	}
	return d.trie.VisitPrefixes(patricia.Prefix(digits), func(p patricia.Prefix, item patricia.Item) error {
		set, ok := item.(*wordSet)
		if !ok || len(p) == 0 {
			return nil
		}
		return fn(string(p), set.words)
	})
}

// MaxWordLength is the length of the longest word ever added.
func (d *Dictionary) MaxWordLength() int {
	return d.maxWordLength
}

// TotalWordCount is the number of words offered to the dictionary, duplicates included.
func (d *Dictionary) TotalWordCount() int {
	return d.totalWordCount
}

// Validate returns ErrEmpty when no word was ever added.
func (d *Dictionary) Validate() error {
	if d.totalWordCount == 0 {
		return ErrEmpty
	}
	return nil
}

// Stats returns counters describing the loaded dictionary.
func (d *Dictionary) Stats() map[string]int {
	return map[string]int{
		"totalWords":    d.totalWordCount,
		"maxWordLength": d.maxWordLength,
		"keys":          d.keys,
		"entries":       d.entries,
	}
}
