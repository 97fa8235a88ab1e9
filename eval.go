package evaluator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ahrtr/gocontainer/stack"
)

// Evaluate executes a postfix token sequence against the variables and
// functions in reg.
//
// Numbers and variable values push onto an operand stack. An operator pops
// its right operand, then its left, and pushes the result; + - * / follow
// IEEE 754, so division by zero is an infinity rather than an error, and ^
// is math.Pow. A symbol with no arithmetic meaning still pops two operands
// but pushes nothing. A function pops one value and pushes its Apply
// result. Parenthesis tokens are skipped.
//
// Evaluation fails with a *SymbolError when a name is not in reg, with an
// *OperandError when an operator or function finds too few operands, and
// with a *MalformedError when the final stack holds anything other than
// exactly one value, which is the result.
func Evaluate(pf Postfix, reg *Registry) (float64, error) {
	vals := stack.New()
	for _, tok := range pf {
		switch tok.Kind {
		case KindNumber:
			v, err := number(tok.Text)
			if err != nil {
				return 0, err
			}
			vals.Push(v)
		case KindVariable:
			v, err := reg.Var(tok.Text)
			if err != nil {
				return 0, err
			}
			vals.Push(v)
		case KindOperator:
			if vals.Size() < 2 {
				return 0, &OperandError{Op: tok.Text}
			}
			b := vals.Pop().(float64)
			a := vals.Pop().(float64)
			switch tok.Text {
			case "+":
				vals.Push(a + b)
			case "-":
				vals.Push(a - b)
			case "*":
				vals.Push(a * b)
			case "/":
				vals.Push(a / b)
			case "^":
				vals.Push(math.Pow(a, b))
			}
		case KindFunction:
			if vals.IsEmpty() {
				return 0, &OperandError{Op: tok.Text, Func: true}
			}
			fn, err := reg.Func(tok.Text)
			if err != nil {
				return 0, err
			}
			vals.Push(fn.Apply(vals.Pop().(float64)))
		}
	}
	if vals.Size() != 1 {
		return 0, &MalformedError{Depth: vals.Size()}
	}
	return vals.Pop().(float64), nil
}

// number parses a numeric literal. The lexer admits runs with several
// decimal points, so parsing falls back to the longest prefix that forms a
// valid literal, the way C's strtod reads "3.4.5" as 3.4. A literal with
// no such prefix is an error.
func number(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return v, nil
	}
	end, dot := 0, false
	for i, r := range text {
		if r == '.' {
			if dot {
				break
			}
			dot = true
		} else if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	v, err = strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	return v, nil
}

// Eval normalizes, tokenizes, reorders, and evaluates an expression in one
// call. Variables set on the registry persist between calls, which makes a
// registry a calculator session:
//
//	reg := evaluator.NewRegistry()
//	reg.Set("x", 3)
//	y, err := reg.Eval("sqrt(16)+2*x")
func (r *Registry) Eval(expr string) (float64, error) {
	return Evaluate(ToPostfix(Tokenize(Normalize(expr), r)), r)
}

// EvalString is a shortcut to evaluate a single expression against a new
// registry.
func EvalString(expr string, opts ...RegistryOption) (float64, error) {
	return NewRegistry(opts...).Eval(expr)
}
