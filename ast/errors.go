package ast

import (
	"errors"
)

var (
	ErrIntegerRange = errors.New("integer literal out of range")
	ErrNotAnAtom    = errors.New("token is not an atom")
)
