package decalc

import (
	"strconv"
	"strings"
)

// TokenKind discriminates the two variants of Token.
type TokenKind int

const (
	// KindNone is the kind of the zero Token.
	KindNone TokenKind = iota
	// KindNumber is a numeric literal.
	KindNumber
	// KindOperator is one of the four binary operators.
	KindOperator
)

func (k TokenKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	}
	return "None"
}

// Token is an atomic lexical unit of an expression: a number or an operator
// symbol. Tokens are immutable; Tokenize produces them and Calculate
// consumes them.
type Token struct {
	Kind TokenKind
	// Num is the literal's value when Kind is KindNumber.
	Num float64
	// Op is the operator symbol when Kind is KindOperator.
	Op rune
}

// Number returns a numeric token.
func Number(v float64) Token { return Token{Kind: KindNumber, Num: v} }

// Operator returns an operator token.
func Operator(op rune) Token { return Token{Kind: KindOperator, Op: op} }

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return "Number:" + strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindOperator:
		return "Operator:" + string(t.Op)
	}
	return "None"
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// Tokenize converts an expression with all whitespace already removed into
// its token sequence. Digits, '.', and 'e'/'E' accumulate into a pending
// numeric literal; a '+' or '-' immediately following 'e'/'E' is consumed
// as the literal's exponent sign rather than as an operator. An operator
// rune outside a literal flushes the pending literal and emits an operator
// token. Any other rune aborts with an *InvalidCharError, and a literal
// that does not parse as a float aborts with an *InvalidNumberError; in
// either case no partial token sequence is returned.
//
// A leading '-' is an ordinary operator token, not a unary minus: the
// evaluator seeds its accumulator with zero, so "-5+3" is 0 - 5 + 3.
func Tokenize(expr string) ([]Token, error) {
	var tokens []Token
	var buf []rune
	start := 1 // rune position where buf began, counting from 1
	src := []rune(expr)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		text := string(buf)
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &InvalidNumberError{Text: text, Col: start}
		}
		tokens = append(tokens, Number(v))
		buf = buf[:0]
		return nil
	}
	for i := 0; i < len(src); i++ {
		r := src[i]
		switch {
		case '0' <= r && r <= '9', r == '.', r == 'e', r == 'E':
			if len(buf) == 0 {
				start = i + 1
			}
			buf = append(buf, r)
			// A sign directly after the exponent marker belongs to the
			// literal, not to the operator stream.
			if (r == 'e' || r == 'E') && i+1 < len(src) && (src[i+1] == '+' || src[i+1] == '-') {
				i++
				buf = append(buf, src[i])
			}
		case strings.ContainsRune(Operators, r):
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, Operator(r))
		default:
			return nil, &InvalidCharError{Char: r, Col: i + 1}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return tokens, nil
}
