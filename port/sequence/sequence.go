// Package sequence defines the cursor abstraction that windowkit views consume.
//
// A sequence is described through composable capability interfaces.
// The minimum is Cursor, a forward single-pass reader.
// A source that can hand out independent copies of its position satisfies Sequence,
// and may additionally satisfy Sized, Sliceable or Bidirectional.
// Consumers discover the richer capabilities dynamically through type assertions,
// the same way the io package discovers interface upgrades such as io.WriterTo.
package sequence

// Cursor is a forward, single-pass cursor over a stream of T values.
type Cursor[T any] interface {
	// Value returns the element under the cursor.
	// It must be repeatable without side effects,
	// and it is only valid to call while AtEnd reports false.
	Value() T
	// Advance moves the cursor to the next element.
	Advance()
	// AtEnd reports whether the cursor moved past the last element.
	AtEnd() bool
}

// Sequence is a multi-pass cursor.
// Cloning is what makes branching consumers possible,
// anything that needs to look ahead or restart must work on a Clone.
type Sequence[T any] interface {
	Cursor[T]
	// Clone returns an independent cursor at the current position.
	// Advancing the clone never affects the original, and vice versa.
	Clone() Sequence[T]
}

// Sized is implemented by sequences that can report
// the number of elements remaining from the cursor position in O(1).
type Sized interface {
	Len() int
}

// Sliceable is implemented by sequences that can restrict themselves
// to a sub span of their remaining elements.
type Sliceable[T any] interface {
	Sequence[T]
	// Slice returns the sequence restricted to [lo, hi),
	// where positions are relative to the current cursor position.
	// The result must be independent from the receiver
	// and is expected to retain the receiver's capability set.
	Slice(lo, hi int) Sequence[T]
}

// Bidirectional is implemented by sequences that natively support stepping from the end.
// The windowed views do not consume it,
// they derive their backward traversal from Sliceable plus Sized;
// the tier is part of the source data model for consumers that pop elements directly.
type Bidirectional[T any] interface {
	Sequence[T]
	// Back returns the last remaining element.
	Back() T
	// PopBack drops the last remaining element.
	PopBack()
}

// Unbounded marks sequences that never reach their end.
// For an unbounded sequence AtEnd never reports true and length is undefined.
type Unbounded interface {
	Unbounded() bool
}

// IsUnbounded reports whether the given cursor marked itself as never ending.
func IsUnbounded[T any](c Cursor[T]) bool {
	u, ok := c.(Unbounded)
	return ok && u.Unbounded()
}

// Length returns the remaining element count when the cursor is Sized and finite.
func Length[T any](c Cursor[T]) (int, bool) {
	if IsUnbounded[T](c) {
		return 0, false
	}
	s, ok := c.(Sized)
	if !ok {
		return 0, false
	}
	return s.Len(), true
}

// AsSliceable reports whether the cursor supports slicing.
func AsSliceable[T any](c Cursor[T]) (Sliceable[T], bool) {
	s, ok := c.(Sliceable[T])
	return s, ok
}
