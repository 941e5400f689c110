package mnemonic

// Count reports how many renderings Search would return for number without
// building them. Counting stops once limit is exceeded, so the result is at
// most limit+1 when limit > 0. A limit of zero or less counts every path.
func (c *Converter) Count(number string, limit int) int {
	number = Clean(number)
	if number == "" {
		return 0
	}
	k := counter{
		lex:    c.lex,
		maxLen: c.lex.MaxWordLength(),
		digits: number,
		limit:  limit,
		memo:   make([][2]int, len(number)),
	}
	for i := range k.memo {
		k.memo[i] = [2]int{-1, -1}
	}
	return k.count(0, false)
}

// counter memoizes path counts by position and by whether the rendering
// so far ends in a literal digit, the only state the branches depend on.
type counter struct {
	lex    Lexicon
	maxLen int
	digits string
	limit  int
	memo   [][2]int
}

func (k *counter) count(pos int, digitTail bool) int {
	if pos == len(k.digits) {
		return 1
	}
	tail := 0
	if digitTail {
		tail = 1
	}
	if cached := k.memo[pos][tail]; cached >= 0 {
		return cached
	}

	total := 0
	remaining := k.digits[pos:]
	if limit := min(k.maxLen, len(remaining)); limit > 0 {
		_ = k.lex.VisitPrefixes(remaining[:limit], func(key string, words []string) error {
			total = k.add(total, len(words)*k.count(pos+len(key), false))
			return nil
		})
	}
	if !digitTail {
		total = k.add(total, k.count(pos+1, true))
	}
	if isUnmapped(remaining[0]) {
		total = k.add(total, k.count(pos+1, true))
	}

	k.memo[pos][tail] = total
	return total
}

// add sums counts, saturating just past the limit.
func (k *counter) add(a, b int) int {
	sum := a + b
	if k.limit > 0 && sum > k.limit {
		return k.limit + 1
	}
	return sum
}
