package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

func tokenize(t *testing.T, in string) []lexer.Token {
	tokens, err := lexer.Tokenize([]byte(in))
	require.NoError(t, err)
	return tokens
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `(+ 1 2)`,
			Out: `(+ 1 2)`,
		},
		{
			In:  "(+\n\t1\n\n2\n)",
			Out: `(+ 1 2)`,
		},
		{
			In:  `(+ (+ 2 (+ 3 4 4 3 3)) 4)`,
			Out: `(+ (+ 2 (+ 3 4 4 3 3)) 4)`,
		},
		{
			In:  `(1 2 () ((3 (4 (5)))) 6 (7))`,
			Out: `(1 2 () ((3 (4 (5)))) 6 (7))`,
		},
		{
			In:  `(define ((sum (lambda (x y) (+ x y)))) (sum 4 4))`,
			Out: `(define ((sum (lambda (x y) (+ x y)))) (sum 4 4))`,
		},
		{
			In:  `(print "hello world" "beautiful world!")`,
			Out: `(print "hello world" "beautiful world!")`,
		},
		{
			In:  `(a		b c def GHIJ 1 -1)`,
			Out: `(a b c def GHIJ 1 -1)`,
		},
	}

	for i := range testCases {
		node, err := Parse(tokenize(t, testCases[i].In))
		if assert.NoError(t, err, "input: %q", testCases[i].In) {
			assert.Equal(t, testCases[i].Out, string(ast.Encode(node)))
		}
	}
}

func TestParserUnwrapsTopLevelForm(t *testing.T) {
	node, err := Parse(tokenize(t, `(+ (+ 2 (+ 3 4 4 3 3)) 4)`))
	require.NoError(t, err)

	expected := ast.List(
		ast.Symbol("+"),
		ast.List(
			ast.Symbol("+"),
			ast.Int(2),
			ast.List(
				ast.Symbol("+"),
				ast.Int(3),
				ast.Int(4),
				ast.Int(4),
				ast.Int(3),
				ast.Int(3),
			),
		),
		ast.Int(4),
	)
	assert.True(t, expected.Equal(node), "got %s", ast.Encode(node))

	list := node.List()
	assert.True(t, list[0].IsSymbol("+"))
	assert.True(t, list[1].Is(ast.NodeTypeList))
	assert.True(t, list[1].List()[0].IsSymbol("+"))
	assert.Equal(t, int64(4), list[2].Int())
}

func TestParserNodeKinds(t *testing.T) {
	node, err := Parse(tokenize(t, `(+ 1 1 10 "Hello, world!")`))
	require.NoError(t, err)

	list := node.List()
	require.Len(t, list, 5)

	assert.Equal(t, ast.NodeTypeSymbol, list[0].Type())
	assert.Equal(t, ast.NodeTypeInt, list[1].Type())
	assert.Equal(t, int64(10), list[3].Int())
	assert.Equal(t, ast.NodeTypeString, list[4].Type())
	assert.Equal(t, `"Hello, world!"`, list[4].Text())

	line, col := list[4].Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 11, col)
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
		Pos [2]int
	}{
		{``, ErrEOF, [2]int{0, 0}},
		{"  \n ", ErrEOF, [2]int{0, 0}},
		{`(+ 1 2`, ErrUnexpectedEOF, [2]int{1, 7}},
		{`((+ 1 2)`, ErrUnexpectedEOF, [2]int{1, 9}},
		{`)`, ErrUnexpectedToken, [2]int{1, 1}},
		{`(+ 1 2))`, ErrUnexpectedToken, [2]int{1, 8}},
		{`(+ 1 2) (+ 3 4)`, ErrUnexpectedToken, [2]int{1, 9}},
		{`1 2`, ErrUnexpectedToken, [2]int{1, 3}},
		{`(+ 99999999999999999999 1)`, ErrIntegerRange, [2]int{1, 4}},
	}

	for i := range testCases {
		node, err := Parse(tokenize(t, testCases[i].In))
		assert.Nil(t, node)
		assert.True(t, errors.Is(err, testCases[i].Err), "input %q: %v", testCases[i].In, err)

		var perr *Error
		if assert.True(t, errors.As(err, &perr)) {
			line, col := 0, 0
			if perr.Token != nil {
				line, col = perr.Token.Pos()
			}
			assert.Equal(t, testCases[i].Pos, [2]int{line, col}, "input %q", testCases[i].In)
		}
	}
}

func TestParserErrorMessage(t *testing.T) {
	_, err := Parse(nil)
	assert.EqualError(t, err, "parse error: EOF")

	_, err = Parse(tokenize(t, `(car ())) x`))
	assert.EqualError(t, err, `parse error: unexpected token ")" at 1:9`)
}

func TestParseAll(t *testing.T) {
	{
		forms, err := ParseAll(tokenize(t, ""))
		assert.NoError(t, err)
		assert.Empty(t, forms)
	}

	{
		forms, err := ParseAll(tokenize(t, "(+ 1 2)\n(car (1 2))\nx"))
		require.NoError(t, err)
		require.Len(t, forms, 3)

		encoded := []string{}
		for _, form := range forms {
			encoded = append(encoded, string(ast.Encode(form)))
		}
		assert.Equal(t, "(+ 1 2) (car (1 2)) x", strings.Join(encoded, " "))
	}

	{
		_, err := ParseAll(tokenize(t, "(+ 1 2)\n(car"))
		assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	}
}

func TestParserDeepNesting(t *testing.T) {
	depth := 100000
	in := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)

	node, err := Parse(tokenize(t, in))
	require.NoError(t, err)

	for i := 1; i < depth; i++ {
		require.Len(t, node.List(), 1)
		node = node.List()[0]
	}
	assert.True(t, node.Equal(ast.List(ast.Int(1))))
}

func TestParseString(t *testing.T) {
	node, err := ParseString(`(car (1 2))`)
	assert.NoError(t, err)
	assert.Equal(t, `(car (1 2))`, string(ast.Encode(node)))
}
