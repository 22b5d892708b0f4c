// Package decalc implements a left-to-right arithmetic calculator with an
// exact decimal formatter.
//
// Expressions are sequences of floating-point literals and the four binary
// operators, evaluated strictly in input order with no precedence: "2+3*4"
// is 20, not 14. Evaluation folds the tokens over a zero-seeded accumulator,
// so a leading operator applies against zero and "-5+3" is -2.
//
// Results print through FormatFull, which expands any value that would
// normally display in scientific notation into its full decimal string
// using exact integer arithmetic, so 1e20 prints as
// "100000000000000000000" rather than "1e+20".
package decalc
