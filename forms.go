package lisp

import (
	"github.com/xiam/lisp/ast"
)

// A special form receives its whole unevaluated form and decides what to
// evaluate and where.
type specialFormFunc func(ev *evaluator, form []*ast.Node, env *Env) (*Value, error)

func specialForm(name string) specialFormFunc {
	switch name {
	case "define":
		return evalDefine
	case "lambda":
		return evalLambda
	case "if":
		return evalIf
	case "quote":
		return evalQuote
	}
	return nil
}

// SpecialForms returns the names that are dispatched before evaluation.
func SpecialForms() []string {
	return []string{"define", "lambda", "if", "quote"}
}

// (define ((name expr) ...) body)
//
// Every expr is evaluated in the outer scope, so bindings do not see each
// other. The body runs in a single new scope holding all of them.
func evalDefine(ev *evaluator, form []*ast.Node, env *Env) (*Value, error) {
	usage := "(define ((name expr) ...) body)"
	if len(form) != 3 || !form[1].Is(ast.NodeTypeList) {
		return nil, &FormError{Form: "define", Usage: usage}
	}

	scope := NewEnv(env).Name("define")
	for _, binding := range form[1].List() {
		if !binding.Is(ast.NodeTypeList) {
			return nil, &FormError{Form: "define", Usage: usage}
		}
		pair := binding.List()
		if len(pair) != 2 || !pair[0].Is(ast.NodeTypeSymbol) {
			return nil, &FormError{Form: "define", Usage: usage}
		}

		value, err := ev.eval(pair[1], env)
		if err != nil {
			return nil, err
		}
		scope.Set(pair[0].Name(), value)
	}

	return ev.eval(form[2], scope)
}

// (lambda (param ...) body)
func evalLambda(ev *evaluator, form []*ast.Node, env *Env) (*Value, error) {
	usage := "(lambda (param ...) body)"
	if len(form) != 3 || !form[1].Is(ast.NodeTypeList) {
		return nil, &FormError{Form: "lambda", Usage: usage}
	}

	params := make([]string, 0, len(form[1].List()))
	for _, param := range form[1].List() {
		if !param.Is(ast.NodeTypeSymbol) {
			return nil, &FormError{Form: "lambda", Usage: usage}
		}
		params = append(params, param.Name())
	}

	return NewFunctionValue(&Closure{
		Params: params,
		Body:   form[2],
		Env:    env,
		ev:     ev,
	}), nil
}

// (if cond consequent alternative)
func evalIf(ev *evaluator, form []*ast.Node, env *Env) (*Value, error) {
	if len(form) != 4 {
		return nil, &FormError{Form: "if", Usage: "(if cond consequent alternative)"}
	}

	cond, err := ev.eval(form[1], env)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return ev.eval(form[2], env)
	}
	return ev.eval(form[3], env)
}

// (quote expr) evaluates expr like any other expression.
func evalQuote(ev *evaluator, form []*ast.Node, env *Env) (*Value, error) {
	if len(form) != 2 {
		return nil, &FormError{Form: "quote", Usage: "(quote expr)"}
	}
	return ev.eval(form[1], env)
}
