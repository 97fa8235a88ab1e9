package evaluator

import (
	"strings"

	"github.com/ahrtr/gocontainer/stack"
)

// precedence ranks the binary operators. Any other symbol looks up as 0,
// below every real operator.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"^": 3,
}

// Postfix is an expression in reverse Polish order: every operand precedes
// the operator or function consuming it.
type Postfix []Token

// String renders the sequence as space-separated token texts, the usual
// way of writing reverse Polish notation.
func (p Postfix) String() string {
	texts := make([]string, len(p))
	for i, tok := range p {
		texts[i] = tok.Text
	}
	return strings.Join(texts, " ")
}

// outranks reports whether a waiting token binds at least as tightly as an
// incoming operator, in which case it pops to the output first. Functions
// outrank every operator; an open parenthesis outranks none.
func outranks(top, incoming Token) bool {
	if top.Kind == KindFunction {
		return true
	}
	return top.Kind == KindOperator && precedence[top.Text] >= precedence[incoming.Text]
}

// ToPostfix reorders infix tokens into reverse Polish order by the
// shunting-yard algorithm. It never fails and never modifies tokens.
//
// Numbers and variables move straight to the output. Functions and open
// parentheses wait on the operator stack. A close parenthesis pops
// operators to the output until the matching open parenthesis, discards
// it, and then pops the function the parentheses belonged to, if one is
// there. An incoming operator first pops every waiting token that
// outranks it, so equal ranks pop and every operator binds left to right,
// exponentiation included: "2^3^2" reorders as "2 3 ^ 2 ^".
//
// Unbalanced input reorders without complaint: a close parenthesis with no
// match drains the whole stack, and an open parenthesis still waiting at
// the end of input is dropped rather than emitted.
func ToPostfix(tokens []Token) Postfix {
	out := make(Postfix, 0, len(tokens))
	ops := stack.New()
	for _, tok := range tokens {
		switch tok.Kind {
		case KindNumber, KindVariable:
			out = append(out, tok)
		case KindFunction:
			ops.Push(tok)
		case KindParen:
			if tok.Text != ")" {
				ops.Push(tok)
				continue
			}
			for !ops.IsEmpty() && ops.Peek().(Token).Text != "(" {
				out = append(out, ops.Pop().(Token))
			}
			if !ops.IsEmpty() {
				ops.Pop()
			}
			if !ops.IsEmpty() && ops.Peek().(Token).Kind == KindFunction {
				out = append(out, ops.Pop().(Token))
			}
		case KindOperator:
			for !ops.IsEmpty() && outranks(ops.Peek().(Token), tok) {
				out = append(out, ops.Pop().(Token))
			}
			ops.Push(tok)
		}
	}
	for !ops.IsEmpty() {
		if top := ops.Pop().(Token); top.Kind != KindParen {
			out = append(out, top)
		}
	}
	return out
}
