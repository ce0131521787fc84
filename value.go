package lisp

import (
	"fmt"
	"strings"
)

// Callable is implemented by every value that can be applied to arguments.
type Callable interface {
	Name() string
	Call(args []*Value) (*Value, error)
}

type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeText
	ValueTypeBool
	ValueTypeList
	ValueTypeFunction
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:      "nil",
	ValueTypeInt:      "int",
	ValueTypeText:     "text",
	ValueTypeBool:     "bool",
	ValueTypeList:     "list",
	ValueTypeFunction: "function",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is a runtime value. The Type field tells which accessor is valid.
type Value struct {
	v interface{}

	Type ValueType
}

var (
	Nil   = &Value{Type: ValueTypeNil}
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewTextValue creates a text value. Text read from source keeps its
// delimiting quotes.
func NewTextValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeText}
}

func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

func NewListValue(v []*Value) *Value {
	return &Value{v: v, Type: ValueTypeList}
}

func NewFunctionValue(v Callable) *Value {
	return &Value{v: v, Type: ValueTypeFunction}
}

// NewValue wraps a Go value.
func NewValue(value interface{}) (*Value, error) {
	switch v := value.(type) {
	case nil:
		return Nil, nil
	case *Value:
		return v, nil
	case int:
		return NewIntValue(int64(v)), nil
	case int64:
		return NewIntValue(v), nil
	case string:
		return NewTextValue(v), nil
	case bool:
		return NewBoolValue(v), nil
	case []*Value:
		return NewListValue(v), nil
	case []interface{}:
		list := make([]*Value, 0, len(v))
		for i := range v {
			item, err := NewValue(v[i])
			if err != nil {
				return nil, err
			}
			list = append(list, item)
		}
		return NewListValue(list), nil
	case Callable:
		return NewFunctionValue(v), nil
	}
	return Nil, fmt.Errorf("invalid value %v", value)
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeFunction:
		if c, ok := v.v.(*Closure); ok {
			return fmt.Sprintf("<lambda (%s)>", strings.Join(c.Params, " "))
		}
		return fmt.Sprintf("<function %s>", v.Function().Name())
	case ValueTypeText:
		return v.v.(string)
	case ValueTypeBool:
		if v.v.(bool) {
			return ":true"
		}
		return ":false"
	case ValueTypeNil:
		return ":nil"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.v.(int64))
	case ValueTypeList:
		vv := v.v.([]*Value)
		values := make([]string, 0, len(vv))
		for i := range vv {
			values = append(values, vv[i].String())
		}
		return "[" + strings.Join(values, " ") + "]"
	}
	panic("unreachable")
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Text() string {
	return v.v.(string)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) List() []*Value {
	return v.v.([]*Value)
}

func (v Value) Function() Callable {
	return v.v.(Callable)
}

func (v Value) IsCallable() bool {
	return v.Type == ValueTypeFunction
}

// Truthy reports whether the value counts as true in a condition. Nil, false,
// zero, empty text and the empty list are false; everything else is true.
func (v Value) Truthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeBool:
		return v.Bool()
	case ValueTypeInt:
		return v.Int() != 0
	case ValueTypeText:
		return v.Text() != ""
	case ValueTypeList:
		return len(v.List()) > 0
	case ValueTypeFunction:
		return true
	}
	panic("unreachable")
}

// Equal compares values of the same type by content. Lists are compared
// element by element and callables by identity.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNil:
		return true
	case ValueTypeInt, ValueTypeText, ValueTypeBool, ValueTypeFunction:
		return v.v == o.v
	case ValueTypeList:
		a, b := v.List(), o.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	}
	panic("unreachable")
}
