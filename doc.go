// Package evaluator implements a double-precision arithmetic expression
// interpreter.
//
// An expression passes through three stages, each usable on its own:
// Tokenize splits the source into classified tokens, ToPostfix reorders
// them into reverse Polish order by the shunting-yard algorithm, and
// Evaluate reduces the postfix sequence to a float64. Registry.Eval and
// EvalString run the whole pipeline.
//
// The syntax is the arithmetic you'd write on paper, with multiplication
// implied by juxtaposition where it reads that way: "2x" and "2(x+1)" are
// products. All operators bind left to right within their rank, "2^3^2"
// included. Names resolve against a Registry, which starts out with pi, e,
// sin, cos (both in degrees), sqrt, and log (base 10) and takes new
// variables and functions at runtime.
//
// The interpreter is deliberately forgiving: unbalanced parentheses and
// stray symbols are not syntax errors. Whatever survives reordering is
// evaluated, and only evaluation reports failure.
package evaluator
