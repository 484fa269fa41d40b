package hexers

import (
	"github.com/dchest/uniuri"
)

var allBytes = func() []byte {
	chars := make([]byte, 256)
	for i := range chars {
		chars[i] = byte(i)
	}

	return chars
}()

func randomBytes(n int) []byte {
	return []byte(uniuri.NewLenChars(n, allBytes))
}

func collect(src Source) (out []byte) {
	for {
		b, ok := src.Next()
		if !ok {
			return out
		}

		out = append(out, b)
	}
}

// countingSource counts how many times it was pulled, including after the end.
type countingSource struct {
	data  []byte
	pulls int
}

func (c *countingSource) Next() (byte, bool) {
	c.pulls++
	if len(c.data) == 0 {
		return 0, false
	}

	b := c.data[0]
	c.data = c.data[1:]

	return b, true
}

type fixedHint struct {
	lower, upper int
	bounded      bool
}

func (fixedHint) Next() (byte, bool) {
	return 0, false
}

func (f fixedHint) SizeHint() (lower, upper int, bounded bool) {
	return f.lower, f.upper, f.bounded
}
