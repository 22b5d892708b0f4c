package decalc

// Calculate reduces a token sequence to a single value by strict
// left-to-right application, with no operator precedence: "2+3*4" is
// (((0+2)+3)*4). The accumulator starts at zero and the pending operator
// starts as '+', so a leading number is added to zero and a leading
// operator applies against zero.
func Calculate(tokens []Token) (float64, error) {
	acc := 0.0
	op := '+'
	for _, t := range tokens {
		switch t.Kind {
		case KindOperator:
			op = t.Op
		case KindNumber:
			v, err := apply(acc, t.Num, op)
			if err != nil {
				return 0, err
			}
			acc = v
		}
	}
	return acc, nil
}

// apply computes left op right. Division by exactly zero is a
// *DivisionByZeroError rather than an infinity. Operators outside the
// grammar are rejected here independently of Tokenize; Calculate guards
// its own contract.
func apply(left, right float64, op rune) (float64, error) {
	switch op {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '*':
		return left * right, nil
	case '/':
		if right == 0.0 {
			return 0, &DivisionByZeroError{}
		}
		return left / right, nil
	default:
		return 0, &InvalidOperatorError{Op: op}
	}
}

// EvalString is a shortcut to tokenize and evaluate a string expression.
// The expression must already have its whitespace removed.
func EvalString(expr string) (float64, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}
	return Calculate(tokens)
}
