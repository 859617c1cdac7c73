package windowkit

import (
	"go.llib.dev/windowkit/port/option"
	"go.llib.dev/windowkit/port/sequence"
)

// NewWindowedView returns a sliding window view over a multi-pass source.
//
// Window index i logically covers the source elements [i*step, i*step+size),
// clipped to the source's actual bounds.
// It panics with ErrInvalidSize / ErrInvalidStep on a non-positive size or step.
func NewWindowedView[T any](src sequence.Sequence[T], size int, opts ...Option) *WindowedView[T] {
	c := option.Use(opts)
	if size < 1 {
		panic(ErrInvalidSize)
	}
	if c.Step < 1 {
		panic(ErrInvalidStep)
	}
	v := &WindowedView[T]{
		src:         src,
		size:        size,
		step:        c.Step,
		skipPartial: c.SkipPartial,
		unbounded:   sequence.IsUnbounded[T](src),
	}
	v.init()
	return v
}

// WindowedView is a lazy sequence of sliding windows over a multi-pass source.
//
// Forward reading is always available.
// Length reporting, indexed access, window slicing and backward traversal
// are available depending on the capabilities of the wrapped source,
// an operation whose capability is missing panics with a typed const error.
type WindowedView[T any] struct {
	src  sequence.Sequence[T]
	size int
	step int

	skipPartial bool
	unbounded   bool

	// lookahead runs size elements ahead of src to detect the end,
	// present only when the source cannot report its length and is not unbounded.
	lookahead sequence.Sequence[T]
	// last marks that the current front is the final window of the view.
	last bool
	done bool
}

var _ View[int] = (*WindowedView[int])(nil)

func (v *WindowedView[T]) init() {
	if v.unbounded {
		return
	}
	if v.src.AtEnd() {
		v.done = true
		return
	}
	if n, ok := sequence.Length[T](v.src); ok {
		if n < v.size && v.skipPartial {
			v.done = true
			return
		}
		if n <= v.size {
			v.last = true
		}
		return
	}
	la := v.src.Clone()
	moved := advanceBy[T](la, v.size)
	switch {
	case moved < v.size:
		if v.skipPartial {
			v.done = true
			return
		}
		v.last = true
	case la.AtEnd():
		v.last = true
	}
	v.lookahead = la
}

// AtEnd reports whether every window was already emitted.
func (v *WindowedView[T]) AtEnd() bool { return v.done }

// Front returns the current window as a view of at most size elements.
//
// The returned window is decoupled from the view,
// advancing the view does not mutate previously returned windows.
func (v *WindowedView[T]) Front() sequence.Sequence[T] {
	v.mustNotBeEmpty()
	if sl, ok := sequence.AsSliceable[T](v.src); ok {
		if n, ok := sequence.Length[T](v.src); ok {
			return sl.Slice(0, min(v.size, n))
		}
		if v.unbounded {
			return sl.Slice(0, v.size)
		}
	}
	return &takeSeq[T]{src: v.src.Clone(), n: v.size}
}

// Advance moves the view to the next window.
func (v *WindowedView[T]) Advance() {
	v.mustNotBeEmpty()
	advanceBy[T](v.src, v.step)
	if !v.unbounded && v.src.AtEnd() {
		v.done = true
		return
	}
	if v.last {
		// the previous front was the final window
		v.done = true
		return
	}
	if v.unbounded {
		return
	}
	if v.lookahead != nil {
		moved := advanceBy[T](v.lookahead, v.step)
		switch {
		case moved < v.step:
			if v.skipPartial {
				v.done = true
				return
			}
			v.last = true
		case v.lookahead.AtEnd():
			v.last = true
		}
		return
	}
	n, _ := sequence.Length[T](v.src)
	if n < v.size && v.skipPartial {
		v.done = true
		return
	}
	if n <= v.size {
		v.last = true
	}
}

// Clone returns an independent view at the current position.
// Advancing the clone never affects the original, and vice versa.
func (v *WindowedView[T]) Clone() *WindowedView[T] {
	c := *v
	c.src = v.src.Clone()
	if v.lookahead != nil {
		c.lookahead = v.lookahead.Clone()
	}
	return &c
}

// IsSized reports whether the view can report the number of its windows.
func (v *WindowedView[T]) IsSized() bool {
	if v.unbounded {
		return false
	}
	_, ok := sequence.Length[T](v.src)
	return ok
}

// IsSliceable reports whether the view supports indexed access and window slicing.
func (v *WindowedView[T]) IsSliceable() bool {
	_, ok := sequence.AsSliceable[T](v.src)
	return ok
}

// Len returns the number of windows remaining in the view.
//
// It panics with ErrNotFinite over a never ending source
// and with ErrNotSized when the source cannot report its length.
func (v *WindowedView[T]) Len() int {
	if v.unbounded {
		panic(ErrNotFinite)
	}
	if v.done {
		return 0
	}
	n, ok := sequence.Length[T](v.src)
	if !ok {
		panic(ErrNotSized)
	}
	if n < v.size {
		if v.skipPartial || n == 0 {
			return 0
		}
		return 1
	}
	full := 1 + (n-v.size)/v.step
	gap := (n - v.size) % v.step
	if !v.skipPartial && gap != 0 && full*v.step < n {
		full++
	}
	return full
}

// At returns window index without advancing the view.
//
// The window covers the source elements [index*step, index*step+size),
// clipped to the source length on finite sources and unclipped on never ending ones.
// It panics with ErrNotSliceable / ErrNotSized when the source lacks
// slicing or, on a finite source, length reporting,
// and with ErrOutOfBounds when the window would start past the source's end.
func (v *WindowedView[T]) At(index int) sequence.Sequence[T] {
	sl, ok := sequence.AsSliceable[T](v.src)
	if !ok {
		panic(ErrNotSliceable)
	}
	if index < 0 {
		panic(ErrOutOfBounds)
	}
	start := index * v.step
	if v.unbounded {
		return sl.Slice(start, start+v.size)
	}
	n, ok := sequence.Length[T](v.src)
	if !ok {
		panic(ErrNotSized)
	}
	if n <= start {
		panic(ErrOutOfBounds)
	}
	return sl.Slice(start, min(start+v.size, n))
}

// Slice returns a new view over the windows [lo, hi) of this view.
//
// The window bounds translate into source bounds such that
// re-windowing the restricted source reproduces exactly the selected windows,
// the last selected window keeps its trailing context.
// It panics with ErrNotSliceable / ErrNotSized when the source lacks
// slicing or, on a finite source, length reporting,
// and with ErrInvalidBounds on malformed bounds.
func (v *WindowedView[T]) Slice(lo, hi int) *WindowedView[T] {
	sl, ok := sequence.AsSliceable[T](v.src)
	if !ok {
		panic(ErrNotSliceable)
	}
	if lo < 0 || hi < lo {
		panic(ErrInvalidBounds)
	}
	var sub sequence.Sequence[T]
	switch {
	case v.unbounded:
		if lo == hi {
			sub = sl.Slice(lo*v.step, lo*v.step)
		} else {
			sub = sl.Slice(lo*v.step, (hi-1)*v.step+v.size)
		}
	default:
		n, ok := sequence.Length[T](v.src)
		if !ok {
			panic(ErrNotSized)
		}
		if v.Len() < hi {
			panic(ErrInvalidBounds)
		}
		if lo == hi {
			sub = sl.Slice(0, 0)
		} else {
			sub = sl.Slice(lo*v.step, min((hi-1)*v.step+v.size, n))
		}
	}
	sv := &WindowedView[T]{
		src:         sub,
		size:        v.size,
		step:        v.step,
		skipPartial: v.skipPartial,
		unbounded:   sequence.IsUnbounded[T](sub),
	}
	sv.init()
	return sv
}

// Back returns the last window of the view without advancing it.
//
// It panics with ErrNotSliceable / ErrNotSized / ErrNotFinite
// when the source lacks the needed capability,
// and with ErrEmptyView when the view already emitted all of its windows.
func (v *WindowedView[T]) Back() sequence.Sequence[T] {
	v.mustNotBeEmpty()
	sl, n := v.mustTraverseBackward()
	if !v.skipPartial && n <= v.size {
		return sl.Slice(0, n)
	}
	full := 1 + (n-v.size)/v.step
	gap := (n - v.size) % v.step
	if !v.skipPartial && gap != 0 && full*v.step < n {
		return sl.Slice(full*v.step, n)
	}
	start := (full - 1) * v.step
	return sl.Slice(start, start+v.size)
}

// PopBack removes the last window from the view.
//
// The source is re-sliced so that the new last window ends flush at the new end,
// which keeps backward enumeration the exact reverse of forward enumeration.
func (v *WindowedView[T]) PopBack() {
	v.mustNotBeEmpty()
	sl, n := v.mustTraverseBackward()
	if v.Len() == 1 {
		v.done = true
		return
	}
	full := 1 + (n-v.size)/v.step
	gap := (n - v.size) % v.step
	var end int
	if !v.skipPartial && gap != 0 && full*v.step < n {
		end = (full-1)*v.step + v.size
	} else {
		end = (full-2)*v.step + v.size
	}
	v.src = sl.Slice(0, end)
	// the flush end guarantees end >= size, the remainder holds no partial
	v.last = end <= v.size
}

func (v *WindowedView[T]) mustTraverseBackward() (sequence.Sliceable[T], int) {
	if v.unbounded {
		panic(ErrNotFinite)
	}
	sl, ok := sequence.AsSliceable[T](v.src)
	if !ok {
		panic(ErrNotSliceable)
	}
	n, ok := sequence.Length[T](v.src)
	if !ok {
		panic(ErrNotSized)
	}
	return sl, n
}

func (v *WindowedView[T]) mustNotBeEmpty() {
	if v.done {
		panic(ErrEmptyView)
	}
}

// advanceBy moves the cursor forward by at most n elements
// and returns how many elements it actually moved.
func advanceBy[T any](c sequence.Cursor[T], n int) int {
	var moved int
	for ; moved < n && !c.AtEnd(); moved++ {
		c.Advance()
	}
	return moved
}

// takeSeq is a lazy view of up to n elements starting at a cloned cursor.
type takeSeq[T any] struct {
	src sequence.Sequence[T]
	n   int
}

func (s *takeSeq[T]) Value() T { return s.src.Value() }

func (s *takeSeq[T]) Advance() {
	if s.AtEnd() {
		return
	}
	s.src.Advance()
	s.n--
}

func (s *takeSeq[T]) AtEnd() bool { return s.n <= 0 || s.src.AtEnd() }

func (s *takeSeq[T]) Clone() sequence.Sequence[T] {
	return &takeSeq[T]{src: s.src.Clone(), n: s.n}
}
