package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make is meant to create a new instance of the testing subject.
// It is called for every test case, so each case starts from a fresh value.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioral specification towards a supplier implementation.
//
// Any expectation a consumer has about a role interface it depends on
// should be defined in a contract, so every supplier of that interface
// can be verified against the same behavioral requirements.
type Contract interface {
	testcase.Suite
	// Test runs the behavioral assertions against the supplier implementation.
	Test(*testing.T)
	// Benchmark expresses the performance aspects that matter to the consumer.
	Benchmark(*testing.B)
}
