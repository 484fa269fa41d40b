package hexers

import "math"

// state is what an adaptor remembers between two pulls. The zero value awaits the
// high nibble of the next byte, a marked value holds back the low nibble of the byte
// read last, and exhausted is terminal. Marked values are built by holdLow only, so
// no other value ever reaches the adaptors.
type state uint8

const (
	awaitHigh state = 0
	lowMark   state = 0x10
	exhausted state = 0x20
)

func holdLow(nibble byte) state {
	return lowMark | state(nibble&0xf)
}

func (s state) low() byte {
	return byte(s & 0xf)
}

func (s state) sizeHint(src Source) (lower, upper int, bounded bool) {
	switch s {
	case exhausted:
		return 0, 0, true
	case awaitHigh:
		return doubled(src, 0)
	default:
		return doubled(src, 1)
	}
}

// doubled scales the hint of the source by two output elements per byte, plus pending
// ones that are due before the source is consulted again.
func doubled(src Source, pending int) (lower, upper int, bounded bool) {
	hinter, ok := src.(SizeHinter)
	if !ok {
		return pending, 0, false
	}

	lower, upper, bounded = hinter.SizeHint()
	if lower > (math.MaxInt-pending)/2 {
		lower = math.MaxInt
	} else {
		lower = 2*lower + pending
	}

	if !bounded || upper > (math.MaxInt-pending)/2 {
		return lower, 0, false
	}

	return lower, 2*upper + pending, true
}
