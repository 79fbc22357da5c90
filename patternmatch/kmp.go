package patternmatch

// KMP finds every occurrence of pattern in text using the Knuth-Morris-
// Pratt algorithm. On a match or mismatch the pattern index falls back
// through the failure table, so no text character is ever re-read.
//
// Returns the match start indices in ascending order, or ErrEmptyPattern.
func KMP(pattern, text string, opts ...Option) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	o := buildOptions(opts)

	matches := []int{}
	if len(pattern) > len(text) {
		return matches, nil
	}

	failure := failureTable(pattern, &o)
	p, t := 0, 0
	for len(text)-t >= len(pattern)-p {
		switch {
		case o.equal(pattern[p], text[t]):
			if p == len(pattern)-1 {
				matches = append(matches, t-p)
				p = failure[len(pattern)-1]
			} else {
				p++
			}
			t++
		case p == 0:
			t++
		default:
			p = failure[p-1]
		}
	}

	return matches, nil
}

// BuildFailureTable returns the KMP failure table of pattern: entry i holds
// the length of the longest proper prefix of pattern[:i+1] that is also its
// suffix. Entry 0 is always 0; an empty pattern yields an empty table.
func BuildFailureTable(pattern string, opts ...Option) []int {
	o := buildOptions(opts)

	return failureTable(pattern, &o)
}

func failureTable(pattern string, o *options) []int {
	table := make([]int, len(pattern))
	if len(pattern) == 0 {
		return table
	}
	prefix, query := 0, 1
	for query < len(pattern) {
		switch {
		case o.equal(pattern[prefix], pattern[query]):
			prefix++
			table[query] = prefix
			query++
		case prefix == 0:
			table[query] = 0
			query++
		default:
			prefix = table[prefix-1]
		}
	}

	return table
}
