// Package seqkit provides concrete sequence implementations and helpers
// to move between the cursor abstraction and the standard iter package.
package seqkit

import (
	"iter"

	"go.llib.dev/windowkit/pkg/errorkit"
	"go.llib.dev/windowkit/port/sequence"
)

const (
	// ErrUnbounded is raised when the length of a never ending sequence is requested.
	ErrUnbounded errorkit.Error = "seqkit: an unbounded sequence has no length"
	// ErrBounds is raised on malformed slice bounds.
	ErrBounds errorkit.Error = "seqkit: slice bounds out of range"
)

// Slice returns a multi-pass sequence over the given slice.
// The result supports sizing, slicing and backward stepping.
func Slice[T any](vs []T) *SliceSeq[T] {
	return &SliceSeq[T]{vs: vs}
}

// SliceSeq is a slice backed sequence.
type SliceSeq[T any] struct {
	vs  []T
	pos int
}

var _ interface {
	sequence.Sliceable[int]
	sequence.Bidirectional[int]
	sequence.Sized
} = (*SliceSeq[int])(nil)

func (s *SliceSeq[T]) Value() T { return s.vs[s.pos] }

func (s *SliceSeq[T]) Advance() {
	if s.pos < len(s.vs) {
		s.pos++
	}
}

func (s *SliceSeq[T]) AtEnd() bool { return len(s.vs) <= s.pos }

func (s *SliceSeq[T]) Clone() sequence.Sequence[T] {
	c := *s
	return &c
}

// Len returns the number of elements remaining from the cursor position.
func (s *SliceSeq[T]) Len() int { return len(s.vs) - s.pos }

// Slice returns the sequence restricted to [lo, hi),
// relative to the current cursor position.
func (s *SliceSeq[T]) Slice(lo, hi int) sequence.Sequence[T] {
	rem := s.vs[s.pos:]
	if lo < 0 || hi < lo || len(rem) < hi {
		panic(ErrBounds)
	}
	return &SliceSeq[T]{vs: rem[lo:hi]}
}

// Back returns the last remaining element.
func (s *SliceSeq[T]) Back() T { return s.vs[len(s.vs)-1] }

// PopBack drops the last remaining element.
func (s *SliceSeq[T]) PopBack() { s.vs = s.vs[:len(s.vs)-1] }

// Ints returns the never ending ascending integer sequence that begins at from.
func Ints(from int) *IntSeq {
	return &IntSeq{cur: from, unbounded: true}
}

// IntRange returns the integer sequence over the [begin, end) span.
func IntRange(begin, end int) *IntSeq {
	if end < begin {
		end = begin
	}
	return &IntSeq{cur: begin, end: end}
}

// IntSeq is an integer span sequence, either bounded or never ending.
type IntSeq struct {
	cur, end  int
	unbounded bool
}

var _ interface {
	sequence.Sliceable[int]
	sequence.Sized
	sequence.Unbounded
} = (*IntSeq)(nil)

func (s *IntSeq) Value() int { return s.cur }

func (s *IntSeq) Advance() {
	if s.unbounded || s.cur < s.end {
		s.cur++
	}
}

func (s *IntSeq) AtEnd() bool { return !s.unbounded && s.end <= s.cur }

func (s *IntSeq) Clone() sequence.Sequence[int] {
	c := *s
	return &c
}

// Unbounded reports whether the sequence never ends.
func (s *IntSeq) Unbounded() bool { return s.unbounded }

// Len returns the number of integers remaining in the span.
// It panics with ErrUnbounded on a never ending sequence.
func (s *IntSeq) Len() int {
	if s.unbounded {
		panic(ErrUnbounded)
	}
	return s.end - s.cur
}

// Slice returns the [lo, hi) span relative to the current position.
// The result is always bounded.
func (s *IntSeq) Slice(lo, hi int) sequence.Sequence[int] {
	if lo < 0 || hi < lo || (!s.unbounded && s.end-s.cur < hi) {
		panic(ErrBounds)
	}
	return &IntSeq{cur: s.cur + lo, end: s.cur + hi}
}

// FromSeq returns a single-pass cursor over the given push style sequence.
// The result cannot be cloned, so windowing it uses the buffered fallback.
func FromSeq[T any](itr iter.Seq[T]) *PullSeq[T] {
	next, stop := iter.Pull(itr)
	return fromPull(next, stop)
}

// FromNext returns a single-pass cursor over a pull function.
// The function is called until it reports false.
func FromNext[T any](next func() (T, bool)) *PullSeq[T] {
	return fromPull(next, nil)
}

func fromPull[T any](next func() (T, bool), stop func()) *PullSeq[T] {
	s := &PullSeq[T]{next: next, stop: stop}
	s.pull()
	return s
}

// PullSeq is a single-pass cursor fed by a pull function.
type PullSeq[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	end  bool
}

var _ sequence.Cursor[int] = (*PullSeq[int])(nil)

func (s *PullSeq[T]) Value() T { return s.cur }

func (s *PullSeq[T]) Advance() {
	if !s.end {
		s.pull()
	}
}

func (s *PullSeq[T]) AtEnd() bool { return s.end }

// Stop releases the producer without reading it to the end.
// After Stop the cursor reports AtEnd.
func (s *PullSeq[T]) Stop() {
	if s.end {
		return
	}
	s.end = true
	var zero T
	s.cur = zero
	if s.stop != nil {
		s.stop()
	}
}

func (s *PullSeq[T]) pull() {
	v, ok := s.next()
	if !ok {
		s.Stop()
		return
	}
	s.cur = v
}

// Collect reads the cursor to its end and returns the elements.
// It consumes the passed cursor.
func Collect[T any](c sequence.Cursor[T]) []T {
	if c == nil {
		return nil
	}
	var vs = make([]T, 0)
	for !c.AtEnd() {
		vs = append(vs, c.Value())
		c.Advance()
	}
	return vs
}

// Take reads up to n elements from the cursor and returns them.
func Take[T any](c sequence.Cursor[T], n int) []T {
	var vs = make([]T, 0, max(n, 0))
	for ; 0 < n && !c.AtEnd(); n-- {
		vs = append(vs, c.Value())
		c.Advance()
	}
	return vs
}

// Values adapts a cursor into an iter.Seq.
//
// When the cursor is a multi-pass sequence.Sequence,
// every range over the result walks a fresh clone,
// so the returned sequence can be iterated repeatedly.
// Otherwise the result is a single use sequence:
// after the source is read to its end it yields no more values.
func Values[T any](c sequence.Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := c
		if seq, ok := c.(sequence.Sequence[T]); ok {
			cur = seq.Clone()
		}
		for !cur.AtEnd() {
			if !yield(cur.Value()) {
				return
			}
			cur.Advance()
		}
	}
}
