package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/lexer"
)

// Node represents leaf of the AST
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNode creates and returns an orphaned node based on the given token
func NewNode(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token, nodes ...*Node) *Node {
	return newNode(NodeTypeList, tok, append([]*Node{}, nodes...))
}

// Int creates an integer literal node with no token attached.
func Int(v int64) *Node {
	return NewNode(nil, NewIntValue(v))
}

// String creates a string literal node with no token attached. The text is
// expected to include its delimiting quotes.
func String(v string) *Node {
	return NewNode(nil, NewStringValue(v))
}

// Symbol creates an identifier node with no token attached.
func Symbol(name string) *Node {
	return NewNode(nil, NewSymbolValue(name))
}

// List creates a list node with no token attached.
func List(nodes ...*Node) *Node {
	return NewList(nil, nodes...)
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := NewNode(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Int returns the value of an integer node.
func (n *Node) Int() int64 {
	return n.Value().(int64)
}

// Text returns the raw text of a string node, quotes included.
func (n *Node) Text() string {
	return n.Value().(string)
}

// Name returns the name of a symbol node.
func (n *Node) Name() string {
	return n.Value().(string)
}

// Is returns true if the node is of the given type.
func (n *Node) Is(nt NodeType) bool {
	return n != nil && n.nt == nt
}

// IsSymbol returns true if the node is an identifier with the given name.
func (n *Node) IsSymbol(name string) bool {
	return n.Is(NodeTypeSymbol) && n.Name() == name
}

// Pos returns the line and column the node was read from, or zeros for nodes
// built by hand.
func (n *Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.v.([]*Node)))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Value())
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal reports whether both trees have the same shape and values. Tokens are
// not compared.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt {
		return false
	}
	if !n.IsVector() {
		return n.Value() == o.Value()
	}
	a, b := n.List(), o.List()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
