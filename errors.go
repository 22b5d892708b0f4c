package decalc

// InvalidCharError indicates a rune outside the expression grammar: not a
// digit, '.', 'e'/'E', a sign in exponent position, or one of the four
// operators. It implements InputError.
type InvalidCharError struct {
	// Char is the offending rune.
	Char rune
	// Col is the rune position of Char, counting from 1.
	Col int
}

func (err *InvalidCharError) Error() string {
	return "Invalid character: " + string(err.Char)
}

func (err *InvalidCharError) Pos() int {
	return err.Col
}

// InvalidNumberError indicates a numeric literal that does not parse as a
// float, e.g. multiple decimal points or a malformed exponent. It
// implements InputError.
type InvalidNumberError struct {
	// Text is the literal as scanned.
	Text string
	// Col is the rune position where the literal began, counting from 1.
	Col int
}

func (err *InvalidNumberError) Error() string {
	return "Invalid number: " + err.Text
}

func (err *InvalidNumberError) Pos() int {
	return err.Col
}

// InvalidOperatorError indicates an operator token outside the four the
// evaluator understands. Tokenize never emits such a token, but Calculate
// accepts token sequences from anywhere.
type InvalidOperatorError struct {
	// Op is the operator symbol.
	Op rune
}

func (err *InvalidOperatorError) Error() string {
	return "Invalid operator: " + string(err.Op)
}

// DivisionByZeroError indicates a division whose right operand is exactly
// zero. Evaluation aborts rather than producing an infinity or NaN.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "Division by zero!"
}

// InputError is an error with position information. Every lexical error
// implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the input that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidCharError)(nil)
	_ InputError = (*InvalidNumberError)(nil)
)
