package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lisp/lexer"
)

func TestNode(t *testing.T) {
	value := NewStringValue(`"AAAA"`)
	token := lexer.NewToken(lexer.TokenString, value.Value().(string), 1, 1)

	node := NewNode(token, value)
	_, err := node.PushValue(token, value)
	assert.Error(t, err)

	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())
	assert.Equal(t, `"AAAA"`, node.Text())
}

func TestNodeList(t *testing.T) {
	token := lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1)

	list := NewList(token)
	_, err := list.PushValue(token, NewIntValue(1))
	assert.NoError(t, err)

	inner, err := list.PushList(token)
	assert.NoError(t, err)
	assert.NoError(t, inner.Push(Symbol("x")))

	assert.Len(t, list.List(), 2)
	assert.True(t, list.Equal(List(Int(1), List(Symbol("x")))))
	assert.False(t, list.Equal(List(Int(1), List(Symbol("y")))))
	assert.False(t, list.Equal(List(Int(1))))
}

func TestNodeEqual(t *testing.T) {
	assert.True(t, List().Equal(List()))
	assert.False(t, Int(1).Equal(String(`"1"`)))
	assert.False(t, Symbol("1").Equal(Int(1)))
	assert.True(t, (*Node)(nil).Equal(nil))
	assert.False(t, Int(1).Equal(nil))
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		In   string
		Type NodeType
		Out  interface{}
	}{
		{`"Hello, world!"`, NodeTypeString, `"Hello, world!"`},
		{`"unbalanced`, NodeTypeString, `"unbalanced`},
		{`10`, NodeTypeInt, int64(10)},
		{`007`, NodeTypeInt, int64(7)},
		{`-1`, NodeTypeSymbol, "-1"},
		{`+`, NodeTypeSymbol, "+"},
		{`1a`, NodeTypeSymbol, "1a"},
		{`div`, NodeTypeSymbol, "div"},
	}

	for i := range testCases {
		tok := lexer.NewToken(lexer.TokenAtom, testCases[i].In, 1, 1)
		node, err := Classify(tok)
		if assert.NoError(t, err) {
			assert.Equal(t, testCases[i].Type, node.Type(), "input: %q", testCases[i].In)
			assert.Equal(t, testCases[i].Out, node.Value())
			assert.Equal(t, tok, node.Token())
		}
	}

	{
		_, err := Classify(lexer.NewToken(lexer.TokenAtom, "99999999999999999999", 1, 1))
		assert.ErrorIs(t, err, ErrIntegerRange)
	}

	{
		_, err := Classify(lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1))
		assert.ErrorIs(t, err, ErrNotAnAtom)
	}
}

func TestEncode(t *testing.T) {
	node := List(
		Symbol("+"),
		List(Symbol("+"), Int(2), String(`"a b"`)),
		List(),
	)
	assert.Equal(t, `(+ (+ 2 "a b") ())`, string(Encode(node)))
	assert.Equal(t, ":nil", string(Encode(nil)))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, List(Symbol("car"), List(Int(1))))

	expected := "(list): [2]\n" +
		"    (symbol): car [0 0]\n" +
		"    (list): [1]\n" +
		"        (int): 1 [0 0]\n"
	assert.Equal(t, expected, buf.String())
}
