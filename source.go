package hexers

import (
	"errors"
	"fmt"
	"io"
	"iter"

	iterator "github.com/indigo-web/iter"
	"github.com/indigo-web/utils/uf"
)

// Source is a pull-based producer of bytes. Returning false signals the end of the
// sequence. Any github.com/indigo-web/iter byte iterator satisfies it as is.
type Source interface {
	Next() (byte, bool)
}

// SizeHinter is optionally implemented by sources and adaptors that know how many
// elements are left. Lower bound is always valid, upper one only if bounded is true.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() (byte, bool)

func (f SourceFunc) Next() (byte, bool) {
	return f()
}

// SliceSource yields bytes of a slice in order and knows exactly how many are left.
// remaining is decremented only for bytes the underlying iterator actually produced.
type SliceSource struct {
	bytes     iterator.Iterator[byte]
	remaining int
}

// FromBytes returns a source over the slice. The slice isn't copied, so it must not
// be modified until the source is drained.
func FromBytes(data []byte) *SliceSource {
	return &SliceSource{
		bytes:     iterator.Slice(data),
		remaining: len(data),
	}
}

// FromString is FromBytes for strings, without copying the string.
func FromString(str string) *SliceSource {
	return FromBytes(uf.S2B(str))
}

func (s *SliceSource) Next() (byte, bool) {
	b, ok := s.bytes.Next()
	if !ok {
		return 0, false
	}

	s.remaining--
	return b, true
}

func (s *SliceSource) SizeHint() (lower, upper int, bounded bool) {
	return s.remaining, s.remaining, true
}

// ReaderSource pulls bytes from an io.ByteReader until it returns an error. As Source has
// no error channel, the error stops the sequence and is kept for Err.
type ReaderSource struct {
	reader io.ByteReader
	err    error
	done   bool
}

func FromReader(reader io.ByteReader) *ReaderSource {
	return &ReaderSource{reader: reader}
}

func (r *ReaderSource) Next() (byte, bool) {
	if r.done {
		return 0, false
	}

	b, err := r.reader.ReadByte()
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = fmt.Errorf("hexers: read source: %w", err)
		}

		return 0, false
	}

	return b, true
}

// Err returns the error that stopped the sequence. Reaching io.EOF isn't considered
// an error, so nil is returned in that case.
func (r *ReaderSource) Err() error {
	return r.err
}

// FromSeq turns a push iterator into a Source. The stop function must be called once
// the source isn't needed anymore, unless it was drained completely.
func FromSeq(seq iter.Seq[byte]) (src Source, stop func()) {
	next, stop := iter.Pull(seq)
	return SourceFunc(next), stop
}
