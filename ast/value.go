package ast

import (
	"fmt"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeInt:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeString, NodeTypeSymbol:
		// string literals keep their delimiting quotes
		return n.v.(string)
	}

	panic("unreachable")
}

// NewStringValue creates a value of type string. The given text is expected
// to include its delimiting quotes.
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewIntValue creates a value of type int and sets it to the given value
func NewIntValue(v int64) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewSymbolValue creates a value of type symbol and sets it to the given name
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

var _ = Valuer(&nodeValue{})
