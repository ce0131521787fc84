package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xiam/lisp"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/parser"
)

var banner = `Minimal Lisp REPL
Type help for examples, exit or Ctrl+D to leave.`

var helpText = `Expressions are written in prefix notation:

  (+ 1 2 3)                                         => 6
  (div 7 2)                                         => 3
  (if (< 1 2) "yes" "no")                           => "yes"
  (car (1 2 3))                                     => 1
  (define ((sq (lambda (x) (* x x)))) (sq 12))      => 144

Special forms: define lambda if quote
Primitives:    %s

Commands:
  help, :help       Show this text
  exit, :exit       Leave the REPL
  :tokens EXPR      Show the tokens of EXPR
  :ast EXPR         Show the tree of EXPR
`

type session struct {
	ip  *lisp.Interpreter
	out io.Writer
}

func newSession(ip *lisp.Interpreter, out io.Writer) *session {
	return &session{ip: ip, out: out}
}

// handle runs one line of REPL input. It reports whether the user asked to
// leave.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return false
	case "exit", ":exit", ":quit":
		return true
	case "help", ":help":
		fmt.Fprintf(s.out, helpText, strings.Join(lisp.Builtins(), " "))
		return false
	}

	switch {
	case strings.HasPrefix(line, ":tokens"):
		s.tokens(strings.TrimPrefix(line, ":tokens"))
	case strings.HasPrefix(line, ":ast"):
		s.tree(strings.TrimPrefix(line, ":ast"))
	case strings.HasPrefix(line, ":"):
		fmt.Fprintf(s.out, "unknown command %q, type help for a list of commands\n", line)
	default:
		s.eval(line)
	}
	return false
}

// eval prints the value of source, or the error that stopped it, and reports
// whether evaluation succeeded.
func (s *session) eval(source string) bool {
	value, err := s.ip.Interpret(source)
	if err != nil {
		s.printError(err)
		return false
	}
	fmt.Fprintln(s.out, value)
	return true
}

func (s *session) tokens(source string) {
	tokens, err := lexer.Tokenize([]byte(source))
	if err != nil {
		s.printError(err)
		return
	}
	for i := range tokens {
		if tokens[i].Is(lexer.TokenEOF) {
			continue
		}
		fmt.Fprintln(s.out, tokens[i])
	}
}

func (s *session) tree(source string) {
	node, err := parser.ParseString(source)
	if err != nil {
		s.printError(err)
		return
	}
	ast.Fprint(s.out, node)
}

func (s *session) printError(err error) {
	fmt.Fprintf(s.out, "%s: %v\n", lisp.ErrorKind(err), err)
}

// runFiles evaluates every top-level form of each file and prints its value.
// It stops at the first failure and returns the process exit code.
func (s *session) runFiles(names []string) int {
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			s.printError(err)
			return 1
		}
		err = s.run(f)
		f.Close()
		if err != nil {
			return 1
		}
	}
	return 0
}

func (s *session) run(r io.Reader) error {
	values, err := s.ip.Run(r)
	for i := range values {
		fmt.Fprintln(s.out, values[i])
	}
	if err != nil {
		s.printError(err)
	}
	return err
}

// incomplete reports whether source ends inside an open expression.
func incomplete(source string) bool {
	tokens, err := lexer.Tokenize([]byte(source))
	if err != nil {
		return false
	}
	_, err = parser.ParseAll(tokens)
	return errors.Is(err, parser.ErrUnexpectedEOF)
}
