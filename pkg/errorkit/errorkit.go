// Package errorkit helps with error related concerns.
package errorkit

// Error is a string based error type that can be declared as a constant.
//
//	const ErrSomething errorkit.Error = "something went wrong"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }
