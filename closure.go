package lisp

import (
	"strconv"

	"github.com/xiam/lisp/ast"
)

// Closure is a lambda together with the scope it was created in. The scope is
// shared with every other holder and lives as long as the closure does.
type Closure struct {
	Params []string
	Body   *ast.Node
	Env    *Env

	ev *evaluator
}

func (c *Closure) Name() string {
	return "lambda"
}

// Call binds the arguments to the parameters, by position, in a new scope
// under the captured one and evaluates the body there. The number of
// arguments must match the number of parameters.
func (c *Closure) Call(args []*Value) (*Value, error) {
	if len(args) != len(c.Params) {
		return nil, &ApplicationError{
			Callee: c.Name(),
			Err:    arityError(strconv.Itoa(len(c.Params)), len(args)),
		}
	}

	scope := NewEnv(c.Env).Name("lambda")
	for i := range c.Params {
		scope.Set(c.Params[i], args[i])
	}

	ev := c.ev
	if ev == nil {
		ev = newEvaluator(nil, 0)
	}
	return ev.eval(c.Body, scope)
}
