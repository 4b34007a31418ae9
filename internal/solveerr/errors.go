// Package solveerr provides a structured error type for pre-solve
// validation failures, trimmed from the error-code vocabulary the teacher
// service uses for the same family of problems (invalid graphs, infeasible
// flows, iteration limits) but without the gRPC status mapping — this
// package has no RPC transport to report through.
package solveerr

import "fmt"

// Code identifies a specific validation or solve failure.
type Code string

const (
	// CodeNilInput indicates a required slice or vector was nil.
	CodeNilInput Code = "NIL_INPUT"
	// CodeInvalidArgument indicates a node/arc count or index was out of range.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNegativeCapacity indicates an arc declared a negative capacity.
	CodeNegativeCapacity Code = "NEGATIVE_CAPACITY"
	// CodeFlowImbalance indicates supply did not sum to zero within tolerance.
	CodeFlowImbalance Code = "FLOW_IMBALANCE"
	// CodeInfeasible indicates a terminal artificial arc carried flow.
	CodeInfeasible Code = "INFEASIBLE"
	// CodeNegativeCycle indicates an unbounded augmenting cycle was found.
	CodeNegativeCycle Code = "NEGATIVE_CYCLE"
	// CodeIterationLimit indicates the configured pivot cap was reached.
	CodeIterationLimit Code = "ITERATION_LIMIT"
)

// Error is a structured solver error carrying a Code for programmatic
// dispatch alongside a human-readable Message.
type Error struct {
	Code    Code
	Message string
	Field   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New builds an Error for the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithField returns a copy of the error annotated with the offending field.
func (e *Error) WithField(field string) *Error {
	return &Error{Code: e.Code, Message: e.Message, Field: field}
}
