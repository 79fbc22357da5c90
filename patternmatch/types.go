// Package patternmatch types: sentinel errors and search options.

package patternmatch

import "errors"

// ErrEmptyPattern is returned when a search receives a zero-length pattern.
var ErrEmptyPattern = errors.New("patternmatch: pattern is empty")

// Option configures optional search behavior.
type Option func(*options)

type options struct {
	// onCompare fires on every character comparison the search performs.
	onCompare func(a, b byte)
}

// WithOnCompare installs a hook invoked with both characters on every
// comparison. Use it to count or trace comparisons; it does not affect
// the result.
func WithOnCompare(fn func(a, b byte)) Option {
	return func(o *options) {
		if fn != nil {
			o.onCompare = fn
		}
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// equal compares two characters through the hook, if any.
func (o *options) equal(a, b byte) bool {
	if o.onCompare != nil {
		o.onCompare(a, b)
	}

	return a == b
}
