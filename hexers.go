// Package hexers lazily turns sequences of bytes into their nibbles or lowercase hex
// digits, one element per pull and without any intermediate buffer. Every byte yields
// two elements, the most significant half first.
package hexers

import (
	"iter"
	"slices"

	"github.com/tranzystorekk/hexers/internal/hexconv"
)

// Nibbles returns an iterator over the nibbles of the slice.
func Nibbles(data []byte) *NibbleIterator[*SliceSource] {
	return NewNibbleIterator(FromBytes(data))
}

// Hexed returns an iterator over the hex digits of the slice.
func Hexed(data []byte) *HexIterator[*SliceSource] {
	return NewHexIterator(FromBytes(data))
}

// NibblesString is Nibbles for strings. The string isn't copied.
func NibblesString(str string) *NibbleIterator[*SliceSource] {
	return NewNibbleIterator(FromString(str))
}

// HexedString is Hexed for strings. The string isn't copied.
func HexedString(str string) *HexIterator[*SliceSource] {
	return NewHexIterator(FromString(str))
}

// ByteIterator attaches the adaptors to an arbitrary source, so they can be chained
// right after it:
//
//	hexers.Wrap(src).Hexed()
type ByteIterator[S Source] struct {
	src S
}

// Wrap takes the ownership over the source.
func Wrap[S Source](src S) ByteIterator[S] {
	return ByteIterator[S]{src: src}
}

// Next pulls the wrapped source directly.
func (b ByteIterator[S]) Next() (byte, bool) {
	return b.src.Next()
}

// Nibbles is the same as NewNibbleIterator over the wrapped source.
func (b ByteIterator[S]) Nibbles() *NibbleIterator[S] {
	return NewNibbleIterator(b.src)
}

// Hexed is the same as NewHexIterator over the wrapped source.
func (b ByteIterator[S]) Hexed() *HexIterator[S] {
	return NewHexIterator(b.src)
}

// ByteSeq attaches the adaptors to push iterators, e.g.
//
//	hexers.ByteSeq(slices.Values(data)).Hexed()
type ByteSeq iter.Seq[byte]

// Nibbles yields two nibbles per byte of the sequence, the most significant first.
func (s ByteSeq) Nibbles() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for b := range s {
			high, low := hexconv.Split(b)
			if !yield(high) || !yield(low) {
				return
			}
		}
	}
}

// Hexed yields two lowercase hex digits per byte of the sequence.
func (s ByteSeq) Hexed() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for b := range s {
			high, low := hexconv.Split(b)
			if !yield(hexconv.Lower[high]) || !yield(hexconv.Lower[low]) {
				return
			}
		}
	}
}

// AppendHex drains the source and appends its hex digits to dst, growing it at once
// if the source reports its size.
func AppendHex(dst []byte, src Source) []byte {
	hexes := NewHexIterator(src)
	if lower, _, _ := hexes.SizeHint(); lower > 0 {
		dst = slices.Grow(dst, lower)
	}

	for char := range hexes.All() {
		dst = append(dst, char)
	}

	return dst
}
