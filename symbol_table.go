package lisp

import (
	"errors"
)

var errNoSuchKey = errors.New("no such key")

// symbolTable holds the bindings of a single scope.
type symbolTable struct {
	n map[string]*Value
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*Value),
	}
}

func (st *symbolTable) Set(name string, value *Value) {
	st.n[name] = value
}

func (st *symbolTable) Get(name string) (*Value, error) {
	if value, ok := st.n[name]; ok {
		return value, nil
	}
	return nil, errNoSuchKey
}

func (st *symbolTable) Len() int {
	return len(st.n)
}
