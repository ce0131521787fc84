package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xiam/lisp"
)

const historyFile = ".lisp_history"

var (
	flagExpr     = flag.String("e", "", "evaluate expression and exit")
	flagTrace    = flag.Bool("trace", false, "log every special form and application to stderr")
	flagMaxDepth = flag.Int("max-depth", lisp.DefaultMaxDepth, "maximum number of nested evaluations")
	flagHistory  = flag.String("history", "", "history file (default $HOME/"+historyFile+")")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  lisp [flags]            Start the REPL.\n  lisp [flags] file ...   Run scripts.\n  lisp -e expr            Evaluate expr.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lisp: ")

	flag.Usage = usage
	flag.Parse()

	ip := &lisp.Interpreter{MaxDepth: *flagMaxDepth}
	if *flagTrace {
		ip.Trace = log.New(os.Stderr, "trace: ", 0)
	}

	s := newSession(ip, os.Stdout)

	if *flagExpr != "" {
		if !s.eval(*flagExpr) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		os.Exit(s.runFiles(flag.Args()))
	}

	histPath := *flagHistory
	if histPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("os.UserHomeDir: ", err)
		}
		histPath = filepath.Join(home, historyFile)
	}

	os.Exit(repl(s, histPath))
}
