package lisp

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

// Function is the Go implementation of a primitive.
type Function func(args []*Value) (*Value, error)

// Primitive is a callable supplied by the runtime.
type Primitive struct {
	name string
	fn   Function
}

// NewPrimitive wraps fn as a callable named name.
func NewPrimitive(name string, fn Function) *Primitive {
	return &Primitive{name: name, fn: fn}
}

func (p *Primitive) Name() string {
	return p.name
}

// Call applies the primitive. Failures are reported as *ApplicationError.
func (p *Primitive) Call(args []*Value) (*Value, error) {
	value, err := p.fn(args)
	if err != nil {
		return nil, &ApplicationError{Callee: p.name, Err: err}
	}
	return value, nil
}

// library is installed into every root environment and never modified.
var library = []*Primitive{
	NewPrimitive("+", add),
	NewPrimitive("-", sub),
	NewPrimitive("*", mul),
	NewPrimitive("div", div),
	NewPrimitive("=", equal),
	NewPrimitive("eq?", equal),
	NewPrimitive("!=", notEqual),
	NewPrimitive("&", and),
	NewPrimitive("and", and),
	NewPrimitive("or", or),
	NewPrimitive("not", not),
	NewPrimitive("<", compare(func(a, b int64) bool { return a < b })),
	NewPrimitive(">", compare(func(a, b int64) bool { return a > b })),
	NewPrimitive("<=", compare(func(a, b int64) bool { return a <= b })),
	NewPrimitive(">=", compare(func(a, b int64) bool { return a >= b })),
	NewPrimitive("car", car),
	NewPrimitive("cdr", cdr),
	NewPrimitive("cons", cons),
	NewPrimitive("list", list),
	NewPrimitive("len", length),
	NewPrimitive("empty?", empty),
}

// Builtins returns the names of the primitives installed in a root
// environment.
func Builtins() []string {
	names := make([]string, 0, len(library))
	for i := range library {
		names = append(names, library[i].Name())
	}
	return names
}

func expectArgs(args []*Value, n int) error {
	if len(args) != n {
		return arityError(strconv.Itoa(n), len(args))
	}
	return nil
}

func expectType(v *Value, vt ValueType) error {
	if v.Type != vt {
		return typeError(vt, v)
	}
	return nil
}

func expectInts(args []*Value) error {
	for i := range args {
		if err := expectType(args[i], ValueTypeInt); err != nil {
			return err
		}
	}
	return nil
}

// checked runs an integer operation through goarith, which promotes to big
// integers instead of wrapping around, and reports results that leave int64.
func checked(op func(x, y goarith.Number) goarith.Number, a, b int64) (int64, error) {
	n := op(goarith.AsNumber(big.NewInt(a)), goarith.AsNumber(big.NewInt(b)))

	z, ok := new(big.Int).SetString(fmt.Sprint(n), 10)
	if !ok || !z.IsInt64() {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, n)
	}
	return z.Int64(), nil
}

func addNumbers(x, y goarith.Number) goarith.Number {
	return x.Add(y)
}

func subNumbers(x, y goarith.Number) goarith.Number {
	return x.Sub(y)
}

func mulNumbers(x, y goarith.Number) goarith.Number {
	return x.Mul(y)
}

func plus(a, b *Value) (*Value, error) {
	if a.Type != b.Type {
		return nil, typeError(a.Type, b)
	}
	switch a.Type {
	case ValueTypeInt:
		n, err := checked(addNumbers, a.Int(), b.Int())
		if err != nil {
			return nil, err
		}
		return NewIntValue(n), nil
	case ValueTypeText:
		return NewTextValue(a.Text() + b.Text()), nil
	case ValueTypeList:
		joined := make([]*Value, 0, len(a.List())+len(b.List()))
		joined = append(joined, a.List()...)
		joined = append(joined, b.List()...)
		return NewListValue(joined), nil
	}
	return nil, typeError(ValueTypeInt, a)
}

// add folds its arguments from the left. Integers are summed, text and lists
// are concatenated.
func add(args []*Value) (*Value, error) {
	if len(args) < 1 {
		return nil, arityError("at least 1", len(args))
	}
	acc := args[0]
	for _, arg := range args[1:] {
		var err error
		if acc, err = plus(acc, arg); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func sub(args []*Value) (*Value, error) {
	if len(args) < 1 {
		return nil, arityError("at least 1", len(args))
	}
	if err := expectInts(args); err != nil {
		return nil, err
	}
	acc := args[0].Int()
	for _, arg := range args[1:] {
		var err error
		if acc, err = checked(subNumbers, acc, arg.Int()); err != nil {
			return nil, err
		}
	}
	return NewIntValue(acc), nil
}

func mul(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	if err := expectInts(args); err != nil {
		return nil, err
	}
	n, err := checked(mulNumbers, args[0].Int(), args[1].Int())
	if err != nil {
		return nil, err
	}
	return NewIntValue(n), nil
}

// div truncates toward zero.
func div(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	if err := expectInts(args); err != nil {
		return nil, err
	}
	a, b := args[0].Int(), args[1].Int()
	if b == 0 {
		return nil, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return nil, ErrOverflow
	}
	return NewIntValue(a / b), nil
}

func equal(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	return NewBoolValue(args[0].Equal(args[1])), nil
}

func notEqual(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	return NewBoolValue(!args[0].Equal(args[1])), nil
}

// and returns its first argument when it is false and the second one
// otherwise. Both arguments are already evaluated.
func and(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	if !args[0].Truthy() {
		return args[0], nil
	}
	return args[1], nil
}

func or(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	if args[0].Truthy() {
		return args[0], nil
	}
	return args[1], nil
}

func not(args []*Value) (*Value, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	return NewBoolValue(!args[0].Truthy()), nil
}

func compare(cmp func(a, b int64) bool) Function {
	return func(args []*Value) (*Value, error) {
		if err := expectArgs(args, 2); err != nil {
			return nil, err
		}
		if err := expectInts(args); err != nil {
			return nil, err
		}
		return NewBoolValue(cmp(args[0].Int(), args[1].Int())), nil
	}
}

func listArg(args []*Value) ([]*Value, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	if err := expectType(args[0], ValueTypeList); err != nil {
		return nil, err
	}
	return args[0].List(), nil
}

func car(args []*Value) (*Value, error) {
	items, err := listArg(args)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: car of empty list", ErrRange)
	}
	return items[0], nil
}

// cdr of the empty list is the empty list.
func cdr(args []*Value) (*Value, error) {
	items, err := listArg(args)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return NewListValue([]*Value{}), nil
	}
	return NewListValue(append([]*Value{}, items[1:]...)), nil
}

func cons(args []*Value) (*Value, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	if err := expectType(args[1], ValueTypeList); err != nil {
		return nil, err
	}
	items := make([]*Value, 0, len(args[1].List())+1)
	items = append(items, args[0])
	items = append(items, args[1].List()...)
	return NewListValue(items), nil
}

func list(args []*Value) (*Value, error) {
	return NewListValue(append([]*Value{}, args...)), nil
}

func length(args []*Value) (*Value, error) {
	items, err := listArg(args)
	if err != nil {
		return nil, err
	}
	return NewIntValue(int64(len(items))), nil
}

func empty(args []*Value) (*Value, error) {
	items, err := listArg(args)
	if err != nil {
		return nil, err
	}
	return NewBoolValue(len(items) == 0), nil
}
