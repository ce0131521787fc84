// Package lisp reads and evaluates a small Lisp dialect. Source text is split
// into tokens, assembled into a tree of S-expressions and evaluated against a
// chain of lexical scopes whose root holds the primitive library.
package lisp

import (
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/parser"
)

// DefaultMaxDepth is the nesting limit used when Interpreter.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Interpreter evaluates source text. The zero value is ready to use and keeps
// no state between calls: every evaluation starts from a fresh root scope.
type Interpreter struct {
	// Trace receives one line per special form and application when set.
	Trace *log.Logger

	// MaxDepth bounds the number of nested evaluations.
	MaxDepth int
}

// Interpret evaluates the single form held by source.
func (ip *Interpreter) Interpret(source string) (*Value, error) {
	node, err := parser.ParseString(source)
	if err != nil {
		return nil, err
	}
	return ip.Evaluate(node, nil)
}

// InterpretAll evaluates every top-level form held by source, each one in its
// own root scope, and returns their values in order.
func (ip *Interpreter) InterpretAll(source string) ([]*Value, error) {
	return ip.evaluateAll(NewReader(strings.NewReader(source)))
}

// Run evaluates every top-level form read from r.
func (ip *Interpreter) Run(r io.Reader) ([]*Value, error) {
	return ip.evaluateAll(NewReader(r))
}

func (ip *Interpreter) evaluateAll(r *Reader) ([]*Value, error) {
	forms, err := r.Forms()
	if err != nil {
		return nil, err
	}

	values := make([]*Value, 0, len(forms))
	for i := range forms {
		value, err := ip.Evaluate(forms[i], nil)
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Evaluate evaluates node in env. A nil env stands for a fresh root scope.
func (ip *Interpreter) Evaluate(node *ast.Node, env *Env) (*Value, error) {
	if env == nil {
		env = NewRootEnv()
	}
	ev := newEvaluator(ip.Trace, ip.MaxDepth)
	return ev.eval(node, env)
}

// Interpret evaluates source with a zero-value Interpreter.
func Interpret(source string) (*Value, error) {
	return (&Interpreter{}).Interpret(source)
}

// Tokenize splits source into lexemes.
func Tokenize(source string) []string {
	return lexer.Lexemes(source)
}

// Parse builds the tree of the single form held by lexemes, as returned by
// Tokenize.
func Parse(lexemes []string) (*ast.Node, error) {
	tokens := make([]lexer.Token, 0, len(lexemes))
	for _, lexeme := range lexemes {
		tt := lexer.TokenAtom
		switch lexeme {
		case "(":
			tt = lexer.TokenOpenExpression
		case ")":
			tt = lexer.TokenCloseExpression
		}
		tokens = append(tokens, *lexer.NewToken(tt, lexeme, 0, 0))
	}
	return parser.Parse(tokens)
}

// Evaluate evaluates node in env with a zero-value Interpreter.
func Evaluate(node *ast.Node, env *Env) (*Value, error) {
	return (&Interpreter{}).Evaluate(node, env)
}

// Reader reads a program of several forms.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Forms returns every top-level form in the input.
func (r *Reader) Forms() ([]*ast.Node, error) {
	in, err := ioutil.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return parser.ParseAll(tokens)
}
