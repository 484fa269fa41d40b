package hexers

import (
	"iter"

	"github.com/tranzystorekk/hexers/internal/hexconv"
)

// HexIterator yields two lowercase hex digits per byte of the source. It does the same
// job as mapping NibbleIterator through the digits table, but skips the extra layer.
type HexIterator[S Source] struct {
	src   S
	state state
}

// NewHexIterator takes the ownership over the source. Nothing is read from it until
// the first Next call.
func NewHexIterator[S Source](src S) *HexIterator[S] {
	return &HexIterator[S]{src: src}
}

// Next returns the next hex digit. Exhaustion is terminal, the same as for
// NibbleIterator.
func (h *HexIterator[S]) Next() (byte, bool) {
	switch h.state {
	case awaitHigh:
		b, ok := h.src.Next()
		if !ok {
			h.state = exhausted
			return 0, false
		}

		high, low := hexconv.Split(b)
		h.state = holdLow(low)

		return hexconv.Lower[high], true
	case exhausted:
		return 0, false
	default:
		char := hexconv.Lower[h.state.low()]
		h.state = awaitHigh

		return char, true
	}
}

// SizeHint reports bounds of the remaining digits, see NibbleIterator.SizeHint.
func (h *HexIterator[S]) SizeHint() (lower, upper int, bounded bool) {
	return h.state.sizeHint(h.src)
}

// All drains the iterator via range-over-func.
func (h *HexIterator[S]) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			char, ok := h.Next()
			if !ok || !yield(char) {
				return
			}
		}
	}
}
