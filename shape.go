package pretty

import (
	"fmt"
)

// Shape describes the structure of an algebraic type: a sum of
// constructors, each a product of fields, each field ending in a [Leaf]
// slot filled per value by [Generic.Args].
//
// The implementations are [Unit], [Field], [Constructor], [Sum], [Product],
// and [Leaf].
type Shape interface {
	shape()
}

// Unit is the field list of a constructor without fields.
type Unit struct{}

// Field is a single field. A non-empty Name gives the enclosing constructor
// record syntax.
type Field struct {
	Name  string
	Value Shape
}

// Constructor is one alternative of a sum type.
type Constructor struct {
	Name   string
	Fixity Fixity
	Fields Shape
}

// Sum is a choice between two groups of constructors. Sums are built by
// [NewType] as a balanced tree so that selecting a constructor by tag takes
// time proportional to the depth of the tree.
type Sum struct {
	Left, Right Shape
	split       int // constructors under Left
}

// Product is two sibling fields in sequence.
type Product struct {
	Left, Right Shape
}

// Leaf is a slot for a value that has its own [Printer].
type Leaf struct{}

func (Unit) shape()        {}
func (Field) shape()       {}
func (Constructor) shape() {}
func (Sum) shape()         {}
func (Product) shape()     {}
func (Leaf) shape()        {}

// Fixity tells whether a constructor is written before its arguments or
// between them.
type Fixity struct {
	infix bool
	prec  int
}

// Prefix is the fixity of ordinary constructors: C x y.
var Prefix = Fixity{}

// Infix returns the fixity of a constructor written between its two
// arguments at precedence prec, which must be in [0, 9].
func Infix(prec int) Fixity { return Fixity{infix: true, prec: prec} }

// Precedence returns the declared precedence of an infix fixity.
// ok is false for [Prefix].
func (f Fixity) Precedence() (prec int, ok bool) { return f.prec, f.infix }

// Con returns a prefix constructor. Pass [Leaf] values for positional
// fields or [Named] fields for record syntax.
func Con(name string, fields ...Shape) Constructor {
	return Constructor{Name: name, Fixity: Prefix, Fields: Fields(fields...)}
}

// InfixCon returns a constructor written between its two fields.
func InfixCon(name string, prec int, left, right Shape) Constructor {
	return Constructor{Name: name, Fixity: Infix(prec), Fields: Fields(left, right)}
}

// Named returns a record field holding one value.
func Named(name string) Field {
	return Field{Name: name, Value: Leaf{}}
}

// Fields combines field shapes into a balanced [Product]. No fields gives
// [Unit].
func Fields(fields ...Shape) Shape {
	switch len(fields) {
	case 0:
		return Unit{}
	case 1:
		return fields[0]
	}
	mid := len(fields) / 2
	return Product{Left: Fields(fields[:mid]...), Right: Fields(fields[mid:]...)}
}

// Type is the validated description of an algebraic type. Build one per Go
// type, typically in a package-level variable, and return it from
// [Generic.Type]. A Type is immutable and safe for concurrent use.
type Type struct {
	cons   []Constructor
	leaves []int
	shape  Shape
}

// NewType validates cons, in declaration order, and returns their type.
// Tags passed to [Generic.Tag] index into cons.
func NewType(cons ...Constructor) (*Type, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("%w: no constructors", ErrMalformedShape)
	}
	t := &Type{
		cons:   make([]Constructor, len(cons)),
		leaves: make([]int, len(cons)),
	}
	copy(t.cons, cons)
	seen := make(map[string]bool, len(cons))
	for i, c := range cons {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: constructor %d has no name", ErrMalformedShape, i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: duplicate constructor %q", ErrMalformedShape, c.Name)
		}
		seen[c.Name] = true
		n, err := checkConstructor(c)
		if err != nil {
			return nil, err
		}
		t.leaves[i] = n
	}
	t.shape = sumOf(t.cons)
	return t, nil
}

// MustType is like [NewType] but panics on error.
func MustType(cons ...Constructor) *Type {
	t, err := NewType(cons...)
	if err != nil {
		panic(err)
	}
	return t
}

// Shape returns the type's shape: its constructors joined by [Sum] nodes.
func (t *Type) Shape() Shape { return t.shape }

// Len returns the number of constructors.
func (t *Type) Len() int { return len(t.cons) }

// Constructor returns the constructor with the given tag.
func (t *Type) Constructor(tag int) Constructor { return t.cons[tag] }

func sumOf(cons []Constructor) Shape {
	if len(cons) == 1 {
		return cons[0]
	}
	mid := len(cons) / 2
	return Sum{Left: sumOf(cons[:mid]), Right: sumOf(cons[mid:]), split: mid}
}

// checkConstructor validates c and returns its number of leaves.
func checkConstructor(c Constructor) (int, error) {
	fail := func(format string, args ...any) (int, error) {
		return 0, fmt.Errorf("%w: constructor %q: %s", ErrMalformedShape, c.Name, fmt.Sprintf(format, args...))
	}
	if c.Fields == nil {
		return fail("nil fields")
	}
	if _, ok := c.Fields.(Unit); ok {
		if _, infix := c.Fixity.Precedence(); infix {
			return fail("infix constructor needs two fields")
		}
		return 0, nil
	}

	var (
		leaves, named, positional int
		names                     = map[string]bool{}
	)
	var walk func(s Shape) error
	walk = func(s Shape) error {
		switch s := s.(type) {
		case Leaf:
			leaves++
			positional++
		case Field:
			if _, ok := s.Value.(Leaf); !ok {
				return fmt.Errorf("field %q must hold a Leaf, got %T", s.Name, s.Value)
			}
			leaves++
			if s.Name == "" {
				positional++
				return nil
			}
			if names[s.Name] {
				return fmt.Errorf("duplicate field %q", s.Name)
			}
			names[s.Name] = true
			named++
		case Product:
			if err := walk(s.Left); err != nil {
				return err
			}
			return walk(s.Right)
		default:
			return fmt.Errorf("unexpected %T among fields", s)
		}
		return nil
	}
	if err := walk(c.Fields); err != nil {
		return fail("%s", err)
	}
	if named > 0 && positional > 0 {
		return fail("mixes named and positional fields")
	}
	if prec, infix := c.Fixity.Precedence(); infix {
		if leaves != 2 {
			return fail("infix constructor needs two fields, has %d", leaves)
		}
		if prec < 0 || prec > 9 {
			return fail("precedence %d out of range [0, 9]", prec)
		}
	}
	return leaves, nil
}

// isNullary reports whether s contributes no fields.
func isNullary(s Shape) bool {
	switch s := s.(type) {
	case Unit:
		return true
	case Field:
		return isNullary(s.Value)
	case Constructor:
		return isNullary(s.Fields)
	case Sum:
		return isNullary(s.Left) && isNullary(s.Right)
	}
	return false
}

// isRecord reports whether a constructor's fields are named.
func isRecord(s Shape) bool {
	switch s := s.(type) {
	case Field:
		return s.Name != ""
	case Product:
		return isRecord(s.Left)
	}
	return false
}
