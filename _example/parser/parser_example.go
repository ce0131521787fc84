package main

import (
	"log"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func main() {
	input := `(define ((sq (lambda (x) (* x x)))) (sq "😊" 12))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	ast.Print(root)
}
