package evaluator

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a classified lexeme of an expression.
type Token struct {
	// Kind is the token's class.
	Kind Kind
	// Text is the token's source text.
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// Kind is the class of a token.
type Kind int

const (
	// KindNone marks the absence of a token. Tokenize never produces it.
	KindNone Kind = iota
	// KindNumber is a numeric literal.
	KindNumber
	// KindOperator is a single-rune operator symbol.
	KindOperator
	// KindVariable is an identifier with no function registered under it.
	KindVariable
	// KindFunction is an identifier naming a registered function.
	KindFunction
	// KindParen is an opening or closing parenthesis.
	KindParen
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	case KindVariable:
		return "Variable"
	case KindFunction:
		return "Function"
	case KindParen:
		return "Paren"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

type lexer struct {
	src string
	pos int
	out []Token
}

// peek returns the next rune without consuming it. The result is negative
// at the end of the input.
func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// skip consumes the next rune.
func (l *lexer) skip() {
	_, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
}

// scanNumber consumes a maximal run of digits and decimal points. The run
// may hold any number of points; deciding whether it forms a valid literal
// is the evaluator's problem.
func (l *lexer) scanNumber() string {
	start := l.pos
	for {
		r := l.peek()
		if ('0' > r || r > '9') && r != '.' {
			return l.src[start:l.pos]
		}
		l.skip()
	}
}

// scanIdent consumes a letter followed by a maximal run of letters and
// digits.
func (l *lexer) scanIdent() string {
	start := l.pos
	l.skip()
	for {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return l.src[start:l.pos]
		}
		l.skip()
	}
}

// emit appends a token to the output, first inserting a multiplication
// operator where juxtaposition implies a product: a variable or an opening
// parenthesis directly following a number, a variable, or a closing
// parenthesis.
func (l *lexer) emit(kind Kind, text string) {
	if kind == KindVariable || (kind == KindParen && text == "(") {
		if len(l.out) > 0 {
			switch prev := l.out[len(l.out)-1]; {
			case prev.Kind == KindNumber, prev.Kind == KindVariable,
				prev.Kind == KindParen && prev.Text == ")":
				l.out = append(l.out, Token{Kind: KindOperator, Text: "*"})
			}
		}
	}
	l.out = append(l.out, Token{Kind: kind, Text: text})
}

// Tokenize splits an expression into classified tokens. It consults reg to
// classify identifiers: a name with a registered function lexes as a
// Function token and any other name as a Variable token, so the same text
// can lex differently against different registries.
//
// A maximal run of digits and decimal points starting with a digit or a
// point forms a Number token, even when the run has several points; the
// literal's value is settled during evaluation. An identifier is a letter
// followed by letters and digits. Parentheses form Paren tokens and every
// other non-space rune forms a single-rune Operator token, whether or not
// any operator by that name exists, so Tokenize cannot fail.
//
// Tokenize inserts an implicit "*" Operator token before a Variable or an
// opening parenthesis whenever the preceding token is a Number, a
// Variable, or a closing parenthesis. "2x" multiplies, as do "2(3)" and
// "(1)(2)". No insertion happens before Function tokens: "2sin(90)" is two
// times the sine, not a product of a variable named sin.
func Tokenize(expr string, reg *Registry) []Token {
	l := &lexer{src: expr}
	for {
		r := l.peek()
		switch {
		case r < 0:
			return l.out
		case unicode.IsSpace(r):
			l.skip()
		case '0' <= r && r <= '9', r == '.':
			l.emit(KindNumber, l.scanNumber())
		case unicode.IsLetter(r):
			name := l.scanIdent()
			if reg.HasFunc(name) {
				l.emit(KindFunction, name)
			} else {
				l.emit(KindVariable, name)
			}
		case r == '(', r == ')':
			l.skip()
			l.emit(KindParen, string(r))
		default:
			l.skip()
			l.emit(KindOperator, string(r))
		}
	}
}

// Normalize rewrites an expression before tokenization, collapsing each
// double negation into an addition: "5--3" becomes "5+3". Registry.Eval
// and EvalString normalize on their own; callers driving the pipeline by
// hand apply it where they want the same behavior.
func Normalize(expr string) string {
	return strings.ReplaceAll(expr, "--", "+")
}
