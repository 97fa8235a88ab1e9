package evaluator

import "strconv"

// SymbolError is an error from an expression naming a variable or function
// the registry does not hold. It implements EvalError.
type SymbolError struct {
	// Name is the name that failed to resolve.
	Name string
	// Func is whether the name was used as a function rather than a
	// variable.
	Func bool
}

func (err *SymbolError) Error() string {
	if err.Func {
		return "undefined function: " + strconv.Quote(err.Name)
	}
	return "undefined variable: " + strconv.Quote(err.Name)
}

func (err *SymbolError) evalError() {}

// OperandError is an error from an operator or function reached with fewer
// values on the evaluation stack than it consumes. It implements
// EvalError.
type OperandError struct {
	// Op is the operator symbol or function name.
	Op string
	// Func is whether Op names a function rather than an operator.
	Func bool
}

func (err *OperandError) Error() string {
	if err.Func {
		return "insufficient arguments for function " + strconv.Quote(err.Op)
	}
	return "insufficient operands for operator " + strconv.Quote(err.Op)
}

func (err *OperandError) evalError() {}

// MalformedError is an error from an expression whose evaluation leaves
// anything other than exactly one value behind, like "1 2" or "()". It
// implements EvalError.
type MalformedError struct {
	// Depth is the number of values left on the evaluation stack.
	Depth int
}

func (err *MalformedError) Error() string {
	return "malformed expression: " + strconv.Itoa(err.Depth) + " values after evaluation"
}

func (err *MalformedError) evalError() {}

// EvalError is an error describing why an expression could not be
// evaluated. Every such error from this package implements EvalError;
// failures of the arithmetic itself, like division by zero, are not errors
// and follow IEEE 754 instead.
type EvalError interface {
	error
	evalError()
}

var (
	_ EvalError = (*SymbolError)(nil)
	_ EvalError = (*OperandError)(nil)
	_ EvalError = (*MalformedError)(nil)
)
