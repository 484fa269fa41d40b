package hexers

import (
	"iter"

	"github.com/tranzystorekk/hexers/internal/hexconv"
)

// NibbleIterator yields two nibbles per byte of the source, the most significant
// one first. It owns the source and must not be shared between goroutines.
type NibbleIterator[S Source] struct {
	src   S
	state state
}

// NewNibbleIterator takes the ownership over the source. Nothing is read from it
// until the first Next call.
func NewNibbleIterator[S Source](src S) *NibbleIterator[S] {
	return &NibbleIterator[S]{src: src}
}

// Next returns the next nibble. Once the source is exhausted, every subsequent call
// returns false without consulting the source again.
func (n *NibbleIterator[S]) Next() (byte, bool) {
	switch n.state {
	case awaitHigh:
		b, ok := n.src.Next()
		if !ok {
			n.state = exhausted
			return 0, false
		}

		high, low := hexconv.Split(b)
		n.state = holdLow(low)

		return high, true
	case exhausted:
		return 0, false
	default:
		low := n.state.low()
		n.state = awaitHigh

		return low, true
	}
}

// SizeHint reports bounds of the remaining nibbles. Upper bound is known only if the
// source implements SizeHinter itself.
func (n *NibbleIterator[S]) SizeHint() (lower, upper int, bounded bool) {
	return n.state.sizeHint(n.src)
}

// All drains the iterator via range-over-func. Breaking out of the loop leaves the
// iterator usable, so the rest can be consumed later.
func (n *NibbleIterator[S]) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			nibble, ok := n.Next()
			if !ok || !yield(nibble) {
				return
			}
		}
	}
}
