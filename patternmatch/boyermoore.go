package patternmatch

// BoyerMoore finds every occurrence of pattern in text, comparing each
// alignment right-to-left and shifting by the last-occurrence table on a
// mismatch. Works best with large alphabets.
//
// Returns the match start indices in ascending order, or ErrEmptyPattern.
func BoyerMoore(pattern, text string, opts ...Option) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	o := buildOptions(opts)

	matches := []int{}
	if len(pattern) > len(text) {
		return matches, nil
	}

	last := BuildLastTable(pattern)
	idx := 0
	for idx <= len(text)-len(pattern) {
		cmp := len(pattern) - 1
		for cmp >= 0 && o.equal(text[idx+cmp], pattern[cmp]) {
			cmp--
		}
		if cmp == -1 {
			matches = append(matches, idx)
			idx++
			continue
		}
		shift, ok := last[text[idx+cmp]]
		if !ok {
			shift = -1
		}
		if shift < cmp {
			idx += cmp - shift
		} else {
			idx++
		}
	}

	return matches, nil
}

// BoyerMooreGalil is BoyerMoore with the Galil rule: after a full match the
// pattern shifts by its periodicity (derived from the KMP failure table)
// and the already-verified overlap is not re-compared, which keeps the
// worst case linear on periodic patterns.
func BoyerMooreGalil(pattern, text string, opts ...Option) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	o := buildOptions(opts)

	matches := []int{}
	if len(pattern) > len(text) {
		return matches, nil
	}

	last := BuildLastTable(pattern)
	failure := failureTable(pattern, &o)
	period := len(pattern) - failure[len(pattern)-1]

	idx := 0
	inRun := false // previous alignment was a full match
	for idx <= len(text)-len(pattern) {
		cmp := len(pattern) - 1
		for cmp >= 0 && o.equal(text[idx+cmp], pattern[cmp]) {
			if inRun && cmp == len(pattern)-period {
				// Overlap with the previous match is already verified.
				cmp = -1
				break
			}
			cmp--
		}
		if cmp == -1 {
			matches = append(matches, idx)
			inRun = true
			idx += period
			continue
		}
		shift, ok := last[text[idx+cmp]]
		if !ok {
			shift = -1
		}
		if shift < cmp {
			idx += cmp - shift
		} else {
			idx++
		}
		inRun = false
	}

	return matches, nil
}

// BuildLastTable maps each character of pattern to its last index there.
// Characters absent from the pattern have no entry; Boyer-Moore treats a
// missing entry as −1. An empty pattern yields an empty map.
func BuildLastTable(pattern string) map[byte]int {
	last := make(map[byte]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		last[pattern[i]] = i
	}

	return last
}
