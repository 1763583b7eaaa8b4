package pretty

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/bjaus/pretty/doc"
)

// Generic is implemented by algebraic types whose printer is derived from
// their [Type]. The usual DocPrec implementation delegates to [GenericDoc]:
//
//	var treeType = pretty.MustType(
//		pretty.Con("Leaf", pretty.Leaf{}),
//		pretty.Con("Node", pretty.Leaf{}, pretty.Leaf{}),
//	)
//
//	func (t Tree) Type() *pretty.Type          { return treeType }
//	func (t Tree) DocPrec(p int) doc.Doc       { return pretty.GenericDoc(p, t) }
type Generic interface {
	Printer
	// Type returns the shared description of the value's type.
	Type() *Type
	// Tag returns the index of the value's constructor in the order passed
	// to NewType.
	Tag() int
	// Args returns the values of the constructor's fields in field order.
	Args() []Printer
}

// GenericDoc renders v in structural syntax at precedence prec: constructor
// names, parentheses by precedence, record braces, and infix operators, laid
// out so that arguments that do not fit on one line align under each other.
//
// GenericDoc panics, with an error wrapping [ErrMalformedShape], when v's tag
// is out of range or its arguments do not match the constructor's fields.
func GenericDoc[T Generic](prec int, v T) doc.Doc {
	t := v.Type()
	tag := v.Tag()
	if tag < 0 || tag >= t.Len() {
		panic(fmt.Errorf("%w: %T: tag %d out of range [0, %d)", ErrMalformedShape, v, tag, t.Len()))
	}
	args := v.Args()
	if len(args) != t.leaves[tag] {
		panic(fmt.Errorf("%w: %T: constructor %q takes %d arguments, got %d",
			ErrMalformedShape, v, t.cons[tag].Name, t.leaves[tag], len(args)))
	}
	r := renderer{args: args}
	return doc.Sep(r.render(pick(t.shape, tag), kind{}, prec, false)...)
}

// pick follows the sum tree to the constructor with the given tag.
func pick(s Shape, tag int) Shape {
	for {
		sum, ok := s.(Sum)
		if !ok {
			return s
		}
		if tag < sum.split {
			s = sum.Left
		} else {
			s, tag = sum.Right, tag-sum.split
		}
	}
}

type mode int

const (
	modePrefix mode = iota
	modeRecord
	modeInfix
)

// kind is the field-joining syntax in effect for a product.
type kind struct {
	mode mode
	op   string
}

type renderer struct {
	args []Printer
	next int
}

// render returns one fragment per field of s, ready to be joined by
// doc.Sep. parens reports whether the enclosing constructor is wrapped in
// parentheses.
func (r *renderer) render(s Shape, k kind, prec int, parens bool) []doc.Doc {
	switch s := s.(type) {
	case Unit:
		return nil
	case Leaf:
		return []doc.Doc{r.leaf(prec)}
	case Field:
		if s.Name == "" {
			return r.render(s.Value, k, prec, parens)
		}
		name := displayName(s.Name)
		inner := r.render(s.Value, k, PrecTop, parens)
		return append([]doc.Doc{doc.Text(name + " =")}, nestAll(runewidth.StringWidth(name)+3, inner)...)
	case Constructor:
		return r.constructor(s, prec)
	case Sum:
		panic(fmt.Errorf("%w: sum nested inside a constructor", ErrMalformedShape))
	case Product:
		left := r.render(s.Left, k, prec, parens)
		right := r.render(s.Right, k, prec, parens)
		switch k.mode {
		case modeRecord:
			left = appendLast(left, doc.Text(","), false)
		case modeInfix:
			left = appendLast(left, doc.Text(k.op), true)
			right = indentOperand(right, parens)
		}
		return append(left, right...)
	}
	return nil
}

func (r *renderer) constructor(c Constructor, prec int) []doc.Doc {
	record := isRecord(c.Fields)
	if m, infix := c.Fixity.Precedence(); infix && !record {
		wrap := prec > m
		frags := r.render(c.Fields, kind{mode: modeInfix, op: infixName(c.Name)}, m+1, wrap)
		if wrap {
			frags = wrapParens(frags)
		}
		return frags
	}

	name := displayName(c.Name)
	wrap := prec > PrecApp && !isNullary(c.Fields)
	k := kind{mode: modePrefix}
	if record {
		k.mode = modeRecord
	}
	fields := r.render(c.Fields, k, PrecArg, wrap)
	off := runewidth.StringWidth(name) + 1
	if wrap {
		off++
	}
	if record {
		fields = wrapBraces(fields, off)
	} else {
		fields = nestAll(off, fields)
	}
	frags := append([]doc.Doc{doc.Text(name)}, fields...)
	if wrap {
		frags = wrapParens(frags)
	}
	return frags
}

func (r *renderer) leaf(prec int) doc.Doc {
	a := r.args[r.next]
	if a == nil {
		panic(fmt.Errorf("%w: argument %d is nil", ErrMalformedShape, r.next))
	}
	r.next++
	return a.DocPrec(prec)
}

func nestAll(k int, frags []doc.Doc) []doc.Doc {
	for i, f := range frags {
		frags[i] = doc.Nest(k, f)
	}
	return frags
}

func appendLast(frags []doc.Doc, d doc.Doc, space bool) []doc.Doc {
	if len(frags) == 0 {
		return frags
	}
	n := len(frags) - 1
	if space {
		frags[n] = doc.BesideSpace(frags[n], d)
	} else {
		frags[n] = doc.Beside(frags[n], d)
	}
	return frags
}

func wrapParens(frags []doc.Doc) []doc.Doc {
	if len(frags) == 0 {
		return []doc.Doc{doc.Text("()")}
	}
	frags[0] = doc.Beside(doc.Text("("), frags[0])
	return appendLast(frags, doc.Text(")"), false)
}

// wrapBraces puts record fields between braces. The first fragment carries
// the opening brace at off; the rest sit one column further so that field
// names line up after the brace.
func wrapBraces(frags []doc.Doc, off int) []doc.Doc {
	if len(frags) == 0 {
		return []doc.Doc{doc.Nest(off, doc.Text("{}"))}
	}
	frags = appendLast(frags, doc.Text("}"), false)
	for i, f := range frags {
		if i == 0 {
			frags[i] = doc.Nest(off, doc.Beside(doc.Text("{"), f))
			continue
		}
		frags[i] = doc.Nest(off+1, f)
	}
	return frags
}

// indentOperand indents the right operand of an infix constructor so that it
// lines up under the left operand. An operand starting with parentheses is
// pushed past them.
func indentOperand(frags []doc.Doc, parens bool) []doc.Doc {
	if len(frags) == 0 {
		return frags
	}
	extra := 0
	if parens {
		extra = 1
	}
	if n := leadingParens(doc.Flat(frags[0])); n > 0 {
		return nestAll(n+1+extra, frags)
	}
	return nestAll(extra, frags)
}

func leadingParens(s string) int {
	return len(s) - len(strings.TrimLeft(s, "("))
}

// isSymbolic reports whether name is an operator rather than an identifier.
func isSymbolic(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

// displayName is name as used in prefix position.
func displayName(name string) string {
	if isSymbolic(name) {
		return "(" + name + ")"
	}
	return name
}

// infixName is name as used in infix position.
func infixName(name string) string {
	if isSymbolic(name) {
		return name
	}
	return "`" + name + "`"
}
