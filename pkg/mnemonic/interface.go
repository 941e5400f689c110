// Package mnemonic is the core, enumerating every word and digit rendering of a phone number.
package mnemonic

import "io"

// Lexicon is the read-only view of a keypad dictionary the search needs.
type Lexicon interface {
	// MaxWordLength bounds how many digits a single word can consume.
	MaxWordLength() int

	// VisitPrefixes calls fn for every stored key that prefixes digits, shortest first.
	VisitPrefixes(digits string, fn func(key string, words []string) error) error
}

// IConverter defines the interface for phone number converters
type IConverter interface {
	// Search returns every rendering of a single number
	Search(number string) []string

	// Count reports how many renderings Search would return, stopping past limit
	Count(number string, limit int) int

	// Process converts a batch of raw lines, keyed by their cleaned digits
	Process(lines []string) map[string][]string

	// ProcessReader converts every line read from r
	ProcessReader(r io.Reader) (map[string][]string, error)
}
