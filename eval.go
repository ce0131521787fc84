package lisp

import (
	"fmt"
	"log"

	"github.com/xiam/lisp/ast"
)

type evaluator struct {
	trace    *log.Logger
	maxDepth int
	depth    int
}

func newEvaluator(trace *log.Logger, maxDepth int) *evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &evaluator{
		trace:    trace,
		maxDepth: maxDepth,
	}
}

func (ev *evaluator) logf(format string, v ...interface{}) {
	if ev.trace == nil {
		return
	}
	ev.trace.Printf("%*s%s", ev.depth*2, "", fmt.Sprintf(format, v...))
}

func (ev *evaluator) eval(node *ast.Node, env *Env) (*Value, error) {
	if node == nil {
		return Nil, nil
	}

	ev.depth++
	defer func() {
		ev.depth--
	}()
	if ev.depth > ev.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrRecursionDepth, ev.maxDepth)
	}

	switch node.Type() {
	case ast.NodeTypeList:
		return ev.evalList(node.List(), env)

	case ast.NodeTypeSymbol:
		return env.Get(node.Name())

	case ast.NodeTypeInt:
		return NewIntValue(node.Int()), nil

	case ast.NodeTypeString:
		return NewTextValue(node.Text()), nil
	}

	panic("unreachable")
}

func (ev *evaluator) evalList(nodes []*ast.Node, env *Env) (*Value, error) {
	if len(nodes) > 0 && nodes[0].Is(ast.NodeTypeSymbol) {
		if form := specialForm(nodes[0].Name()); form != nil {
			ev.logf("%s %s", nodes[0].Name(), env)
			return form(ev, nodes, env)
		}
	}

	values := make([]*Value, 0, len(nodes))
	for i := range nodes {
		value, err := ev.eval(nodes[i], env)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if len(values) > 0 && values[0].IsCallable() {
		return ev.apply(values[0].Function(), values[1:])
	}

	// a head that cannot be applied makes the list plain data
	return NewListValue(values), nil
}

func (ev *evaluator) apply(fn Callable, args []*Value) (*Value, error) {
	ev.logf("apply %s %v", fn.Name(), args)
	value, err := fn.Call(args)
	if err != nil {
		return nil, err
	}
	ev.logf("=> %v", value)
	return value, nil
}
