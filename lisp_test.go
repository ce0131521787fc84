package lisp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{}, Tokenize(""))
	assert.Equal(t,
		[]string{"(", "+", "1", "1", "10", `"Hello, world!"`, ")"},
		Tokenize(`(+ 1 1 10 "Hello, world!")`),
	)
}

func TestParse(t *testing.T) {
	node, err := Parse(Tokenize(`(+ (+ 2 (+ 3 4 4 3 3)) 4)`))
	require.NoError(t, err)

	expected := ast.List(
		ast.Symbol("+"),
		ast.List(
			ast.Symbol("+"),
			ast.Int(2),
			ast.List(ast.Symbol("+"), ast.Int(3), ast.Int(4), ast.Int(4), ast.Int(3), ast.Int(3)),
		),
		ast.Int(4),
	)
	assert.True(t, expected.Equal(node), "got %s", ast.Encode(node))

	{
		node, err := Parse(Tokenize(`(print "a b" x)`))
		require.NoError(t, err)
		assert.True(t, ast.List(ast.Symbol("print"), ast.String(`"a b"`), ast.Symbol("x")).Equal(node))
	}

	{
		_, err := Parse([]string{})
		assert.True(t, errors.Is(err, parser.ErrEOF))
		assert.Equal(t, "ParseError", ErrorKind(err))
	}

	{
		_, err := Parse([]string{"(", "+", "1"})
		assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF))
	}
}

func TestInterpret(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(* 2 (- (+ (div 4 2) 2) 2))`, `4`},
		{`(= 2 (+ 1 1))`, `:true`},
		{`(define ((sum (lambda (x y) (+ x y)))) (sum 4 4))`, `8`},
		{"(define\n\t((double (lambda (x) (+ x x))))\n\t(double 4))", `8`},
	}

	for i := range testCases {
		value, err := Interpret(testCases[i].In)
		if assert.NoError(t, err, testCases[i].In) {
			assert.Equal(t, testCases[i].Out, value.String())
		}
	}
}

func TestInterpretFailures(t *testing.T) {
	testCases := []struct {
		In   string
		Kind string
	}{
		{``, "ParseError"},
		{`(+ 1`, "ParseError"},
		{`(+ 1))`, "ParseError"},
		{`(+ 1) (+ 2)`, "ParseError"},
		{`(+ x 1)`, "LookupError"},
		{`(car ())`, "RangeError"},
		{`(div 4 0)`, "ApplicationError"},
		{`(if 1 2)`, "FormError"},
	}

	for i := range testCases {
		value, err := Interpret(testCases[i].In)
		assert.Nil(t, value)
		assert.Error(t, err)
		assert.Equal(t, testCases[i].Kind, ErrorKind(err), "%s: %v", testCases[i].In, err)
	}

	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "RuntimeError", ErrorKind(errors.New("boom")))
}

func TestInterpretIsStateless(t *testing.T) {
	ip := &Interpreter{}

	_, err := ip.Interpret(`(define ((car 1)) car)`)
	require.NoError(t, err)

	value, err := ip.Interpret(`(car (7 8))`)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(7), value.Int())
	}
}

func TestInterpretAll(t *testing.T) {
	ip := &Interpreter{}

	{
		values, err := ip.InterpretAll("(+ 1 2)\n(car (4 5))\n\"done\"")
		require.NoError(t, err)

		out := []string{}
		for _, v := range values {
			out = append(out, v.String())
		}
		assert.Equal(t, []string{"3", "4", `"done"`}, out)
	}

	{
		values, err := ip.InterpretAll("")
		assert.NoError(t, err)
		assert.Empty(t, values)
	}

	{
		values, err := ip.InterpretAll("(+ 1 2)\n(car ())\n(+ 3 4)")
		assert.True(t, errors.Is(err, ErrRange))
		assert.Len(t, values, 1)
	}
}

func TestRun(t *testing.T) {
	program := `
		(define ((sq (lambda (x) (* x x)))) (sq 12))
		(if (< 1 2) "yes" "no")
	`

	values, err := (&Interpreter{}).Run(strings.NewReader(program))
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "144", values[0].String())
	assert.Equal(t, `"yes"`, values[1].String())

	_, err = (&Interpreter{}).Run(strings.NewReader(`(+ 1`))
	assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF))
}

func TestReader(t *testing.T) {
	forms, err := NewReader(strings.NewReader("(a b)\n(c (d))")).Forms()
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, "(c (d))", string(ast.Encode(forms[1])))
}
