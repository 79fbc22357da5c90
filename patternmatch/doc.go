// Package patternmatch implements classic substring search algorithms:
// Knuth-Morris-Pratt, Boyer-Moore (optionally with the Galil rule), and
// Rabin-Karp. Every search returns the starting index of each occurrence
// of the pattern in the text, in ascending order.
//
// Algorithm notes:
//
//   - KMP precomputes a failure table (longest proper prefix that is also a
//     suffix) and never re-reads text characters. Strong with small
//     alphabets. O(m) preprocessing, O(n) search.
//
//   - BoyerMoore compares right-to-left and shifts by the last-occurrence
//     table on mismatch. Strong with large alphabets; sublinear on typical
//     inputs, O(mn) worst case. BoyerMooreGalil adds the Galil-rule
//     periodicity shift after full matches, restoring a linear worst case on
//     periodic patterns.
//
//   - RabinKarp compares base-113 rolling hashes and confirms candidate
//     windows left-to-right, character by character. O(n+m) expected.
//     Hash arithmetic wraps; wraparound is consistent between pattern and
//     window, so equality survives overflow.
//
// Searches accept functional options; WithOnCompare installs a hook invoked
// on every character comparison, which keeps comparison-count
// instrumentation possible without a custom comparator type.
//
// Errors:
//
//   - ErrEmptyPattern if the pattern has length 0. An empty text is valid
//     and simply yields no matches whenever the pattern is longer.
package patternmatch
