package windowkit_test

import (
	"go.llib.dev/windowkit/pkg/seqkit"
	"go.llib.dev/windowkit/port/sequence"
)

// ForwardOnly hides every capability of the wrapped sequence except forward reading and cloning.
// Views over it must fall back to lookahead based end detection.
func ForwardOnly[T any](src sequence.Sequence[T]) sequence.Sequence[T] {
	return &forwardOnly[T]{src: src}
}

type forwardOnly[T any] struct{ src sequence.Sequence[T] }

func (s *forwardOnly[T]) Value() T    { return s.src.Value() }
func (s *forwardOnly[T]) Advance()    { s.src.Advance() }
func (s *forwardOnly[T]) AtEnd() bool { return s.src.AtEnd() }

func (s *forwardOnly[T]) Clone() sequence.Sequence[T] {
	return &forwardOnly[T]{src: s.src.Clone()}
}

// SliceOnly hides the length reporting of a slice backed sequence
// while keeping slicing support.
func SliceOnly[T any](src *seqkit.SliceSeq[T]) sequence.Sequence[T] {
	return &sliceOnly[T]{src: src}
}

type sliceOnly[T any] struct{ src *seqkit.SliceSeq[T] }

func (s *sliceOnly[T]) Value() T    { return s.src.Value() }
func (s *sliceOnly[T]) Advance()    { s.src.Advance() }
func (s *sliceOnly[T]) AtEnd() bool { return s.src.AtEnd() }

func (s *sliceOnly[T]) Clone() sequence.Sequence[T] {
	return &sliceOnly[T]{src: s.src.Clone().(*seqkit.SliceSeq[T])}
}

func (s *sliceOnly[T]) Slice(lo, hi int) sequence.Sequence[T] {
	return s.src.Slice(lo, hi)
}

// intRange returns the integers of the [0, n) span as a slice.
func intRange(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// refWindows is the reference model of the windowing semantics,
// computed directly from the window count and content laws.
func refWindows(vs []int, size, step int, skipPartial bool) [][]int {
	n := len(vs)
	var ws = make([][]int, 0)
	if n < size {
		if !skipPartial && 0 < n {
			ws = append(ws, vs[0:n])
		}
		return ws
	}
	full := 1 + (n-size)/step
	for i := 0; i < full; i++ {
		ws = append(ws, vs[i*step:i*step+size])
	}
	if gap := (n - size) % step; !skipPartial && gap != 0 && full*step < n {
		ws = append(ws, vs[full*step:])
	}
	return ws
}
