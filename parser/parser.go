package parser

import (
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

// TokenEOF is returned once the parser runs out of tokens.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser builds trees out of a token sequence. Open lists are kept on an
// explicit stack, so nesting depth is not bound by the Go call stack.
type Parser struct {
	tokens []lexer.Token
	offset int

	root  *ast.Node
	stack []*ast.Node

	lastErr error
}

// New creates a parser for the given tokens.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{
		tokens: tokens,
		root:   ast.NewList(nil),
	}
	p.stack = []*ast.Node{p.root}
	return p
}

// Parse consumes every token. Each top-level form becomes an element of the
// root list.
func (p *Parser) Parse() error {
	for state := parserDefaultState; state != nil; {
		state = state(p)
	}
	return p.lastErr
}

// Forms returns the top-level forms read by Parse.
func (p *Parser) Forms() []*ast.Node {
	return p.root.List()
}

func (p *Parser) next() *lexer.Token {
	if p.offset >= len(p.tokens) {
		return TokenEOF
	}
	tok := &p.tokens[p.offset]
	p.offset++
	return tok
}

func (p *Parser) top() *ast.Node {
	return p.stack[len(p.stack)-1]
}

func parserDefaultState(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		if len(p.stack) > 1 {
			return parserErrorState(ErrUnexpectedEOF, tok)
		}
		return nil

	case lexer.TokenOpenExpression:
		return parserStateOpenExpression(tok)

	case lexer.TokenCloseExpression:
		return parserStateCloseExpression(tok)

	case lexer.TokenAtom, lexer.TokenString:
		return parserStateAtom(tok)
	}

	return parserErrorState(ErrUnexpectedToken, tok)
}

func parserErrorState(err error, tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		p.lastErr = parserError(err, tok)
		return nil
	}
}

func parserStateOpenExpression(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		list, err := p.top().PushList(tok)
		if err != nil {
			return parserErrorState(err, tok)
		}
		p.stack = append(p.stack, list)
		return parserDefaultState
	}
}

func parserStateCloseExpression(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		if len(p.stack) < 2 {
			return parserErrorState(ErrUnexpectedToken, tok)
		}
		p.stack = p.stack[:len(p.stack)-1]
		return parserDefaultState
	}
}

func parserStateAtom(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		node, err := ast.Classify(tok)
		if err != nil {
			return parserErrorState(err, tok)
		}
		if err := p.top().Push(node); err != nil {
			return parserErrorState(err, tok)
		}
		return parserDefaultState
	}
}

func isEmpty(tokens []lexer.Token) bool {
	for i := range tokens {
		if !tokens[i].Is(lexer.TokenEOF) {
			return false
		}
	}
	return true
}

// ParseAll reads every top-level form in tokens. An empty token sequence
// yields no forms.
func ParseAll(tokens []lexer.Token) ([]*ast.Node, error) {
	p := New(tokens)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Forms(), nil
}

// Parse reads the single form held by tokens. For a parenthesized form the
// returned list holds the operator and operands directly; a lone atom is
// returned as is.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	if isEmpty(tokens) {
		return nil, parserError(ErrEOF, nil)
	}

	forms, err := ParseAll(tokens)
	if err != nil {
		return nil, err
	}

	if len(forms) > 1 {
		return nil, parserError(ErrUnexpectedToken, forms[1].Token())
	}

	return forms[0], nil
}

// ParseString tokenizes and parses a single form.
func ParseString(source string) (*ast.Node, error) {
	tokens, err := lexer.Tokenize([]byte(source))
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
