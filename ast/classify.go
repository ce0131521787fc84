package ast

import (
	"fmt"
	"strconv"

	"github.com/xiam/lisp/lexer"
)

// Classify turns an atom token into a node. A lexeme starting with a double
// quote is a string, a lexeme made only of ASCII digits is an integer and
// anything else is a symbol.
func Classify(tok *lexer.Token) (*Node, error) {
	if !tok.IsAtom() {
		return nil, fmt.Errorf("%w: %v", ErrNotAnAtom, tok)
	}

	text := tok.Text()
	switch {
	case text[0] == '"':
		return NewNode(tok, NewStringValue(text)), nil
	case isDigits(text):
		i64, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIntegerRange, text)
		}
		return NewNode(tok, NewIntValue(i64)), nil
	}

	return NewNode(tok, NewSymbolValue(text)), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
