package windowkit

import (
	"github.com/eapache/queue/v2"

	"go.llib.dev/windowkit/pkg/seqkit"
	"go.llib.dev/windowkit/port/option"
	"go.llib.dev/windowkit/port/sequence"
)

// NewBufferedView returns a sliding window view over a strictly single-pass source.
//
// The view buffers the elements of the current window in a bounded queue,
// pre-filled eagerly at construction and replenished from the source on each advance.
// Only forward reading is supported,
// there is no saving, no indexed access, no backward traversal and no length reporting.
// It panics with ErrInvalidSize / ErrInvalidStep on a non-positive size or step.
func NewBufferedView[T any](src sequence.Cursor[T], size int, opts ...Option) *BufferedView[T] {
	c := option.Use(opts)
	if size < 1 {
		panic(ErrInvalidSize)
	}
	if c.Step < 1 {
		panic(ErrInvalidStep)
	}
	v := &BufferedView[T]{
		src:         src,
		buf:         queue.New[T](),
		size:        size,
		step:        c.Step,
		skipPartial: c.SkipPartial,
	}
	v.fill()
	switch {
	case v.buf.Length() == 0:
		v.done = true
	case v.buf.Length() < size:
		if v.skipPartial {
			v.done = true
		} else {
			v.last = true
		}
	case v.src.AtEnd():
		v.last = true
	}
	return v
}

// BufferedView is the single-pass fallback of WindowedView.
// It gives the same front, advance and at-end contract to sources
// that cannot hand out independent cursor copies,
// at the cost of buffering one window worth of elements.
type BufferedView[T any] struct {
	src  sequence.Cursor[T]
	buf  *queue.Queue[T]
	size int
	step int

	skipPartial bool
	// last marks that the current front is the final window of the view.
	last bool
	done bool
}

var _ View[int] = (*BufferedView[int])(nil)

// AtEnd reports whether every window was already emitted.
func (v *BufferedView[T]) AtEnd() bool { return v.done }

// Front returns the current window.
// The result is a snapshot, advancing the view does not mutate it.
func (v *BufferedView[T]) Front() sequence.Sequence[T] {
	v.mustNotBeEmpty()
	vs := make([]T, 0, v.buf.Length())
	for i := 0; i < v.buf.Length(); i++ {
		vs = append(vs, v.buf.Get(i))
	}
	return seqkit.Slice(vs)
}

// Advance moves the view to the next window.
//
// Step elements leave the window from the front of the queue,
// when the step exceeds the window size the overshoot is discarded
// directly from the source, and the queue is replenished from the source
// until it holds a full window or the source is exhausted.
func (v *BufferedView[T]) Advance() {
	v.mustNotBeEmpty()
	if v.last {
		v.done = true
		return
	}
	var dropped int
	for ; dropped < v.step && 0 < v.buf.Length(); dropped++ {
		v.buf.Remove()
	}
	for ; dropped < v.step && !v.src.AtEnd(); dropped++ {
		v.src.Advance()
	}
	pulled := v.fill()
	switch {
	case v.buf.Length() == 0:
		v.done = true
	case v.buf.Length() < v.size:
		// a window shrunk by source exhaustion is the trailing partial,
		// emitted once, and only when it holds elements past the previous window
		if v.skipPartial || pulled == 0 {
			v.done = true
			return
		}
		v.last = true
	case v.src.AtEnd():
		v.last = true
	}
}

func (v *BufferedView[T]) fill() (pulled int) {
	for v.buf.Length() < v.size && !v.src.AtEnd() {
		v.buf.Add(v.src.Value())
		v.src.Advance()
		pulled++
	}
	return pulled
}

func (v *BufferedView[T]) mustNotBeEmpty() {
	if v.done {
		panic(ErrEmptyView)
	}
}
