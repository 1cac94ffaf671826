// Package compileerr collects the programmer-error values this compiler
// can surface. There is no source-token attached to any of them: this
// core builds trees programmatically and never parses concrete syntax, so
// there is nothing to point a caret at.
package compileerr

import "fmt"

// Code identifies a compile-error kind so callers can switch on it without
// string-matching the message.
type Code int

const (
	ZeroParamLambda Code = iota
	EmptyFunctionalTuple
	NegativeConstantIndex
	FixpointDidNotConverge
)

func (c Code) String() string {
	switch c {
	case ZeroParamLambda:
		return "zero_param_lambda"
	case EmptyFunctionalTuple:
		return "empty_functional_tuple"
	case NegativeConstantIndex:
		return "negative_constant_index"
	case FixpointDidNotConverge:
		return "fixpoint_did_not_converge"
	default:
		return "unknown"
	}
}

// Error is a compile-time error: a Code plus a human-readable Message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Is supports errors.Is(err, compileerr.ErrZeroParamLambda)-style matching:
// any *Error with the same Code matches, whatever its Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel values for errors.Is comparisons against a specific kind,
// independent of message text.
var (
	ErrZeroParamLambda        = &Error{Code: ZeroParamLambda, Message: "lambda must have at least one parameter"}
	ErrEmptyFunctionalTuple   = &Error{Code: EmptyFunctionalTuple, Message: "functional tuple access of size 0"}
	ErrNegativeConstantIndex  = &Error{Code: NegativeConstantIndex, Message: "constant index access must be non-negative"}
	ErrFixpointDidNotConverge = &Error{Code: FixpointDidNotConverge, Message: "optimisation pipeline did not converge"}
)
