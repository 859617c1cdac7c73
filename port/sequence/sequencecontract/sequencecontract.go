// Package sequencecontract provides the behavioral contract of the sequence port.
//
// Any multi-pass sequence implementation handed to windowkit
// can be verified against these expectations.
// The contract drains the sequence, so it is meant for finite sequences only.
package sequencecontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/windowkit/pkg/seqkit"
	"go.llib.dev/windowkit/port/contract"
	"go.llib.dev/windowkit/port/sequence"
)

// Sequence validates a multi-pass sequence implementation.
// The Make function must return a fresh, finite sequence that yields at least one element.
func Sequence[T any](mk contract.Make[sequence.Sequence[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) sequence.Sequence[T] {
		return mk(t)
	})

	s.Test("the sequence yields values", func(t *testcase.T) {
		assert.NotEmpty(t, seqkit.Collect[T](subject.Get(t).Clone()))
	})

	s.Test("Value is repeatable without side effects", func(t *testcase.T) {
		seq := subject.Get(t)
		assert.False(t, seq.AtEnd())
		assert.Equal(t, seq.Value(), seq.Value())
	})

	s.Test("every clone walks the same enumeration", func(t *testcase.T) {
		seq := subject.Get(t)
		assert.Equal(t,
			seqkit.Collect[T](seq.Clone()),
			seqkit.Collect[T](seq.Clone()))
	})

	s.Test("advancing a clone leaves the original untouched", func(t *testcase.T) {
		seq := subject.Get(t)
		expected := seqkit.Collect[T](seq.Clone())
		clone := seq.Clone()
		for !clone.AtEnd() {
			clone.Advance()
		}
		assert.Equal(t, expected, seqkit.Collect[T](seq))
	})

	s.Test("the end state is terminal", func(t *testcase.T) {
		seq := subject.Get(t)
		for !seq.AtEnd() {
			seq.Advance()
		}
		assert.True(t, seq.AtEnd())
		seq.Advance()
		assert.True(t, seq.AtEnd())
	})

	s.Test("Len agrees with the enumerated element count", func(t *testcase.T) {
		seq := subject.Get(t)
		n, ok := sequence.Length[T](seq)
		if !ok {
			t.Skip("length reporting is not supported")
		}
		assert.Equal(t, n, len(seqkit.Collect[T](seq.Clone())))
	})

	s.Test("Len shrinks by one on every advance", func(t *testcase.T) {
		seq := subject.Get(t)
		n, ok := sequence.Length[T](seq)
		if !ok {
			t.Skip("length reporting is not supported")
		}
		for !seq.AtEnd() {
			seq.Advance()
			n--
			got, _ := sequence.Length[T](seq)
			assert.Equal(t, n, got)
		}
		assert.Equal(t, 0, n)
	})

	s.Test("Slice matches the corresponding span of the enumeration", func(t *testcase.T) {
		seq := subject.Get(t)
		sl, ok := sequence.AsSliceable[T](seq)
		if !ok {
			t.Skip("slicing is not supported")
		}
		vs := seqkit.Collect[T](seq.Clone())
		for lo := 0; lo <= len(vs); lo++ {
			for hi := lo; hi <= len(vs); hi++ {
				assert.Equal(t, vs[lo:hi], seqkit.Collect[T](sl.Slice(lo, hi)))
			}
		}
	})

	s.Test("slicing does not move the cursor", func(t *testcase.T) {
		seq := subject.Get(t)
		sl, ok := sequence.AsSliceable[T](seq)
		if !ok {
			t.Skip("slicing is not supported")
		}
		expected := seqkit.Collect[T](seq.Clone())
		_ = sl.Slice(0, len(expected))
		assert.Equal(t, expected, seqkit.Collect[T](seq))
	})

	return s.AsSuite("sequence")
}
