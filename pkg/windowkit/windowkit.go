// Package windowkit provides lazy sliding window views over sequences.
//
// A window is a contiguous sub view of up to a fixed number of source elements,
// and consecutive windows start a fixed step apart, so they may overlap or leave gaps.
// The view never materializes the source,
// it only moves cursors over it and hands out decoupled window views.
//
// Two implementations share the same forward contract.
// WindowedView works on multi-pass sources and keeps as much of the source's
// capability set as possible, including length reporting, indexed access,
// slicing at window granularity and backward traversal.
// BufferedView is the fallback for strictly single-pass sources,
// it buffers the current window in a bounded queue and supports forward reading only.
// The Window factory picks between the two based on whether the source can be cloned.
package windowkit

import (
	"iter"

	"go.llib.dev/windowkit/pkg/errorkit"
	"go.llib.dev/windowkit/pkg/seqkit"
	"go.llib.dev/windowkit/port/option"
	"go.llib.dev/windowkit/port/sequence"
)

const (
	// ErrEmptyView is raised when a window is requested from a view that already emitted all of its windows.
	ErrEmptyView errorkit.Error = "windowkit: the view is empty"
	// ErrInvalidSize is raised when the window size is not a positive integer.
	ErrInvalidSize errorkit.Error = "windowkit: window size must be a positive integer"
	// ErrInvalidStep is raised when the step size is not a positive integer.
	ErrInvalidStep errorkit.Error = "windowkit: step size must be a positive integer"
	// ErrNotSized is raised when an operation needs the source sequence to report its length.
	ErrNotSized errorkit.Error = "windowkit: the source sequence does not report its length"
	// ErrNotSliceable is raised when an operation needs the source sequence to support slicing.
	ErrNotSliceable errorkit.Error = "windowkit: the source sequence does not support slicing"
	// ErrNotFinite is raised when an operation is requested on a view over a never ending source.
	ErrNotFinite errorkit.Error = "windowkit: the operation requires a finite source sequence"
	// ErrOutOfBounds is raised on an indexed access outside of the view's windows.
	ErrOutOfBounds errorkit.Error = "windowkit: window index is out of bounds"
	// ErrInvalidBounds is raised on malformed window slice bounds.
	ErrInvalidBounds errorkit.Error = "windowkit: malformed slice bounds"
)

// View is the common contract of the windowed views.
// It is a forward cursor over the windows of the underlying source.
type View[T any] interface {
	// AtEnd reports whether every window was already emitted.
	AtEnd() bool
	// Front returns the current window as a decoupled view of the source.
	// It panics with ErrEmptyView when the view is at its end.
	Front() sequence.Sequence[T]
	// Advance moves the view to the next window.
	// It panics with ErrEmptyView when the view is at its end.
	Advance()
}

// Config holds the windowing parameters that have defaults.
type Config struct {
	// Step is the number of source elements between the start of consecutive windows.
	Step int
	// SkipPartial suppresses the trailing window that would hold fewer elements than the window size.
	SkipPartial bool
}

// Init sets the defaults.
func (c *Config) Init() {
	c.Step = 1
}

type Option option.Option[Config]

// Step sets how many source elements are between the start of consecutive windows.
// The default is one, which yields windows overlapping in all but one element.
func Step(n int) Option {
	return option.Func[Config](func(c *Config) {
		c.Step = n
	})
}

// SkipPartial suppresses the trailing under-sized window.
// By default the last window may hold fewer elements than the window size,
// and such a window is emitted at most once.
func SkipPartial() Option {
	return option.Func[Config](func(c *Config) {
		c.SkipPartial = true
	})
}

// Window wraps the given source into a lazy sequence of sliding windows of the given size.
//
// When the source supports saving its position (sequence.Sequence),
// the returned view is a WindowedView and keeps the source's capability set.
// Otherwise the source is treated as single-pass and the buffered fallback is used.
func Window[T any](src sequence.Cursor[T], size int, opts ...Option) View[T] {
	if seq, ok := src.(sequence.Sequence[T]); ok {
		return NewWindowedView[T](seq, size, opts...)
	}
	return NewBufferedView[T](src, size, opts...)
}

// OfSlice returns a windowed view over the elements of the given slice.
func OfSlice[T any](vs []T, size int, opts ...Option) *WindowedView[T] {
	return NewWindowedView[T](seqkit.Slice(vs), size, opts...)
}

// Collect reads the view to its end and returns every window materialized.
// It consumes the passed view.
func Collect[T any](v View[T]) [][]T {
	if v == nil {
		return nil
	}
	var ws = make([][]T, 0)
	for !v.AtEnd() {
		ws = append(ws, seqkit.Collect[T](v.Front()))
		v.Advance()
	}
	return ws
}

// All adapts the view into a push style sequence of materialized windows.
// The result is a single use sequence, ranging over it consumes the view.
func All[T any](v View[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for !v.AtEnd() {
			if !yield(seqkit.Collect[T](v.Front())) {
				return
			}
			v.Advance()
		}
	}
}

// Windows returns the overlapping windows of a push style sequence.
// It relates to batching the way a sliding window relates to chunking,
// consecutive windows share elements whenever the step is smaller than the size.
// Every range over the result restarts the source sequence.
func Windows[T any](itr iter.Seq[T], size int, opts ...Option) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src := seqkit.FromSeq(itr)
		defer src.Stop()
		v := NewBufferedView[T](src, size, opts...)
		for !v.AtEnd() {
			if !yield(seqkit.Collect[T](v.Front())) {
				return
			}
			v.Advance()
		}
	}
}
