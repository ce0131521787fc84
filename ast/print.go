package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w.
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "[%d]\n", len(n.List()))
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeInt, NodeTypeString, NodeTypeSymbol:
		line, col := n.Pos()
		fmt.Fprintf(w, "%s [%d %d]\n", n.Encode(), line, col)

	default:
		panic("unknown node type")
	}
}

// Encode transform a node into text representation
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ":nil"
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := make([]string, 0, len(n.List()))
		for _, child := range n.List() {
			nodes = append(nodes, encodeNode(child))
		}
		return "(" + strings.Join(nodes, " ") + ")"

	case NodeTypeInt, NodeTypeString, NodeTypeSymbol:
		return n.Encode()

	default:
		panic("unknown node type")
	}
}
