package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), node.Encode(), node.Type())
}

func main() {
	input := `(define ((sq (lambda (x) (* x x)))) (sq "😊" 12))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	printTree(root)
}
