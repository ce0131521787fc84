package lisp

import (
	"fmt"
	"sync/atomic"
)

var envID = uint64(0)

// Env is one scope of the environment chain. Lookups walk towards the root
// through Parent; a scope never modifies its ancestors.
type Env struct {
	id   uint64
	name string

	Parent *Env

	st *symbolTable
}

// NewEnv creates an empty scope whose enclosing scope is parent.
func NewEnv(parent *Env) *Env {
	return &Env{
		id:     atomic.AddUint64(&envID, 1),
		Parent: parent,
		st:     newSymbolTable(),
	}
}

// NewRootEnv creates a scope without parent holding the primitive library.
func NewRootEnv() *Env {
	env := NewEnv(nil).Name("root")
	for i := range library {
		env.Set(library[i].Name(), NewFunctionValue(library[i]))
	}
	return env
}

// Name labels the scope for tracing.
func (env *Env) Name(name string) *Env {
	env.name = name
	return env
}

// Set binds name in this scope.
func (env *Env) Set(name string, value *Value) {
	env.st.Set(name, value)
}

// Get resolves name in this scope or, failing that, in the enclosing ones.
func (env *Env) Get(name string) (*Value, error) {
	value, err := env.st.Get(name)
	if err != nil {
		if env.Parent != nil {
			return env.Parent.Get(name)
		}
		return nil, &LookupError{Name: name}
	}
	return value, nil
}

// Len returns the number of bindings held by this scope alone.
func (env *Env) Len() int {
	return env.st.Len()
}

func (env *Env) String() string {
	return fmt.Sprintf("[%v]: %q (%p)", env.id, env.name, env)
}
