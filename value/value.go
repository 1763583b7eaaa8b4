// Package value holds a dynamic document value, the common shape of JSON
// and YAML data, printed in structural syntax by package pretty.
//
//	Object (fromList [("name", String "pretty"),("tags", Array [String "a"])])
package value

import (
	"maps"
	"slices"
	"time"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/doc"
)

// Kind identifies a Value's constructor.
type Kind int

// Constructors of Value, in tag order.
const (
	KindNull   Kind = iota // Null
	KindBool               // Bool b
	KindInt                // Int n
	KindFloat              // Float f
	KindString             // String s
	KindTime               // Time t
	KindArray              // Array [v,...]
	KindObject             // Object (fromList [(k, v),...])
)

var kindNames = [...]string{"Null", "Bool", "Int", "Float", "String", "Time", "Array", "Object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// valueType lists the constructors in Kind order.
var valueType = pretty.MustType(
	pretty.Con(KindNull.String()),
	pretty.Con(KindBool.String(), pretty.Leaf{}),
	pretty.Con(KindInt.String(), pretty.Leaf{}),
	pretty.Con(KindFloat.String(), pretty.Leaf{}),
	pretty.Con(KindString.String(), pretty.Leaf{}),
	pretty.Con(KindTime.String(), pretty.Leaf{}),
	pretty.Con(KindArray.String(), pretty.Leaf{}),
	pretty.Con(KindObject.String(), pretty.Leaf{}),
)

// Value is a null, boolean, number, string, timestamp, array, or object.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// BoolOf returns a boolean.
func BoolOf(b bool) Value { return Value{kind: KindBool, b: b} }

// IntOf returns an integer.
func IntOf(n int64) Value { return Value{kind: KindInt, i: n} }

// FloatOf returns a floating point number.
func FloatOf(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringOf returns a string.
func StringOf(s string) Value { return Value{kind: KindString, s: s} }

// TimeOf returns a timestamp.
func TimeOf(t time.Time) Value { return Value{kind: KindTime, t: t} }

// ArrayOf returns an array holding vs.
func ArrayOf(vs ...Value) Value { return Value{kind: KindArray, arr: vs} }

// ObjectOf returns an object holding a copy of m.
func ObjectOf(m map[string]Value) Value {
	obj := make(map[string]Value, len(m))
	for k, v := range m {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind returns v's constructor.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of elements of an array or object, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Keys returns the keys of an object in ascending order, or nil for any
// other kind.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Index returns element i of an array. ok is false for any other kind or an
// index out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Field returns the value stored under key in an object.
func (v Value) Field(key string) (Value, bool) {
	x, ok := v.obj[key]
	return x, ok && v.kind == KindObject
}

func (v Value) Type() *pretty.Type { return valueType }
func (v Value) Tag() int           { return int(v.kind) }

func (v Value) Args() []pretty.Printer {
	switch v.kind {
	case KindBool:
		return []pretty.Printer{pretty.Bool(v.b)}
	case KindInt:
		return []pretty.Printer{pretty.Int(v.i)}
	case KindFloat:
		return []pretty.Printer{pretty.Float(v.f)}
	case KindString:
		return []pretty.Printer{pretty.String(v.s)}
	case KindTime:
		return []pretty.Printer{pretty.Time(v.t)}
	case KindArray:
		return []pretty.Printer{pretty.List[Value](v.arr)}
	case KindObject:
		m := make(pretty.Map[pretty.String, Value], len(v.obj))
		for k, x := range v.obj {
			m[pretty.String(k)] = x
		}
		return []pretty.Printer{m}
	}
	return nil
}

func (v Value) DocPrec(prec int) doc.Doc { return pretty.GenericDoc(prec, v) }
