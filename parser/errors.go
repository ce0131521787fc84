package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

var (
	ErrEOF             = errors.New("EOF")
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrIntegerRange    = ast.ErrIntegerRange
)

// Error is returned for input that cannot be turned into a tree.
type Error struct {
	Err   error
	Token *lexer.Token
}

func (e *Error) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	line, col := e.Token.Pos()
	return fmt.Sprintf("parse error: %v %q at %d:%d", e.Err, e.Token.Text(), line, col)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func parserError(err error, tok *lexer.Token) error {
	return &Error{Err: err, Token: tok}
}
