package patternmatch

// rkBase is the prime base of the Rabin-Karp rolling hash.
const rkBase = 113

// RabinKarp finds every occurrence of pattern in text by comparing rolling
// hashes and confirming candidate windows left-to-right character by
// character.
//
// The hash of a window c₀c₁…cₘ₋₁ is Σ cᵢ·base^(m−1−i); sliding one position
// costs O(1): subtract the outgoing character's contribution, multiply by
// the base, add the incoming character. Arithmetic wraps on overflow, which
// is harmless because pattern and window hashes wrap identically.
//
// Returns the match start indices in ascending order, or ErrEmptyPattern.
func RabinKarp(pattern, text string, opts ...Option) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	o := buildOptions(opts)

	matches := []int{}
	if len(pattern) > len(text) {
		return matches, nil
	}

	// Build both initial hashes back to front, accumulating base powers
	// instead of re-exponentiating.
	m := len(pattern)
	patternHash := uint64(pattern[m-1])
	windowHash := uint64(text[m-1])
	power := uint64(1) // base^(m-1) after the loop
	for i := 1; i < m; i++ {
		power *= rkBase
		patternHash += uint64(pattern[m-1-i]) * power
		windowHash += uint64(text[m-1-i]) * power
	}

	for idx := 0; idx <= len(text)-m; idx++ {
		if patternHash == windowHash {
			// Hash hit: verify left-to-right before reporting.
			match := true
			for i := 0; i < m; i++ {
				if !o.equal(pattern[i], text[idx+i]) {
					match = false
					break
				}
			}
			if match {
				matches = append(matches, idx)
			}
		}
		if idx < len(text)-m {
			out := uint64(text[idx])
			in := uint64(text[idx+m])
			windowHash = (windowHash-out*power)*rkBase + in
		}
	}

	return matches, nil
}
