package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decalc/internal/cli/output"
)

func outputRenderer(out, errOut io.Writer) *output.Renderer {
	return output.NewRenderer(out, errOut, false)
}

func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		out  string
	}{
		{name: "no precedence", args: []string{"2+3*4"}, out: "20\n"},
		{name: "leading minus", args: []string{"-5+3"}, out: "-2\n"},
		{name: "scientific operand", args: []string{"123*1e6"}, out: "123000000\n"},
		{name: "full decimal output", args: []string{"1e20"}, out: "100000000000000000000\n"},
		{name: "small full decimal", args: []string{"1e-20"}, out: "0.00000000000000000001\n"},
		{name: "whitespace stripped", args: []string{"1 + 2"}, out: "3\n"},
		{name: "trailing zeros trimmed", args: []string{"4/2"}, out: "2\n"},
		{name: "several expressions", args: []string{"1+1", "2*3"}, out: "2\n6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := executeCmd(t, append([]string{"eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestEvalCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{name: "division by zero", args: []string{"5/0"}, errMsg: "Error: Division by zero!"},
		{name: "invalid number", args: []string{"12..3+4"}, errMsg: "Error: Invalid number: 12..3"},
		{name: "invalid character", args: []string{"2^3"}, errMsg: "Error: Invalid character: ^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := executeCmd(t, append([]string{"eval"}, tt.args...)...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.errMsg)
		})
	}
}

func TestEvalCommandDashExpressions(t *testing.T) {
	// A leading minus is an expression, not a shorthand flag.
	out, errOut, err := executeCmd(t, "eval", "-5+3")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)
	assert.Empty(t, errOut)

	// -- still terminates flags.
	out, _, err = executeCmd(t, "eval", "--", "-5+3")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)

	// Long flags after the command still apply alongside dash expressions.
	out, _, err = executeCmd(t, "eval", "--no-color", "-1-1")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)
}

func TestEvalCommandRequiresExpression(t *testing.T) {
	_, _, err := executeCmd(t, "eval")
	require.EqualError(t, err, "requires at least 1 expression")
}

func TestEvalCommandContinuesAfterError(t *testing.T) {
	out, errOut, err := executeCmd(t, "eval", "5/0", "1+1")
	require.EqualError(t, err, "1 of 2 expressions failed")
	assert.Equal(t, "2\n", out)
	assert.Contains(t, errOut, "Error: Division by zero!")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "decalc "+Version)
}

func TestHandleDotCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	r := outputRenderer(&out, &errOut)

	handleDotCommand(r, ".help")
	assert.Contains(t, out.String(), ".quit / .exit")
	assert.Empty(t, errOut.String())

	out.Reset()
	handleDotCommand(r, ".bogus")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")
}

func TestStripSpace(t *testing.T) {
	assert.Equal(t, "1+2", stripSpace(" 1 +\t2 "))
	assert.Equal(t, "", stripSpace(" \t\r\n"))
	assert.Equal(t, "1e6*2", stripSpace("1e6 *  2"))
}
