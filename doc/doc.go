// Package doc is a small document-layout algebra in the Hughes/Peyton Jones
// style.
//
// A [Doc] is an immutable description of text with optional line breaks.
// Documents are combined horizontally with [Beside] and [BesideSpace],
// vertically with [Above] and [Vcat], indented with [Nest], and grouped with
// [Sep], [Cat], [Fsep], and [Fcat], which pick between a one-line and a
// multi-line layout depending on the available width. [Render] turns a
// document into text for a given line width and ribbon fraction.
//
// Vertical composition dovetails: when the last line of the upper document
// ends before the column at which the lower document starts, the lower
// document continues on the same line. This is what lets
//
//	Vcat(Text("Node"), Nest(5, Text("(Leaf 1)")), Nest(5, Text("(Leaf 2)")))
//
// render as
//
//	Node (Leaf 1)
//	     (Leaf 2)
//
// Text width is measured in terminal columns, so wide runes count double.
package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Doc is a layout document. The zero value is not a valid Doc; use [Empty].
type Doc interface {
	doc()
}

type empty struct{}

type text struct {
	s string
	w int
}

type beside struct {
	left, right Doc
	space       bool
}

type above struct {
	top, bottom Doc
}

type nest struct {
	k int
	d Doc
}

type group struct {
	docs  []Doc
	space bool
	fill  bool
}

func (empty) doc()  {}
func (text) doc()   {}
func (beside) doc() {}
func (above) doc()  {}
func (nest) doc()   {}
func (group) doc()  {}

// Empty returns the unit of every composition. It renders as nothing and
// vanishes from horizontal, vertical, and grouped compositions.
func Empty() Doc { return empty{} }

// Text returns a document holding s on a single line.
// s must not contain newlines.
func Text(s string) Doc { return text{s: s, w: runewidth.StringWidth(s)} }

// IsEmpty reports whether d is the empty document.
func IsEmpty(d Doc) bool {
	_, ok := d.(empty)
	return ok
}

// Beside places b directly after a (the <> operator).
func Beside(a, b Doc) Doc { return join(a, b, false) }

// BesideSpace places b after a separated by one space (the <+> operator).
func BesideSpace(a, b Doc) Doc { return join(a, b, true) }

func join(a, b Doc, space bool) Doc {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	return beside{left: a, right: b, space: space}
}

// Hcat joins docs with [Beside].
func Hcat(docs ...Doc) Doc {
	out := Empty()
	for _, d := range docs {
		out = Beside(out, d)
	}
	return out
}

// Hsep joins docs with [BesideSpace].
func Hsep(docs ...Doc) Doc {
	out := Empty()
	for _, d := range docs {
		out = BesideSpace(out, d)
	}
	return out
}

// Above places b below a, both starting at the same column (the $$ operator).
func Above(a, b Doc) Doc {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	return above{top: a, bottom: b}
}

// Vcat stacks docs with [Above]. The fold is to the right.
func Vcat(docs ...Doc) Doc {
	out := Empty()
	for i := len(docs) - 1; i >= 0; i-- {
		out = Above(docs[i], out)
	}
	return out
}

// Nest indents d by k columns relative to the enclosing vertical
// composition. Nesting has no effect on a document placed to the right of
// another with [Beside].
func Nest(k int, d Doc) Doc {
	if k == 0 || IsEmpty(d) {
		return d
	}
	if n, ok := d.(nest); ok {
		return Nest(k+n.k, n.d)
	}
	return nest{k: k, d: d}
}

// Sep lays docs out on one line separated by spaces when they fit,
// otherwise one below the other.
func Sep(docs ...Doc) Doc { return newGroup(docs, true, false) }

// Cat is [Sep] without the separating spaces.
func Cat(docs ...Doc) Doc { return newGroup(docs, false, false) }

// Fsep fills lines with as many docs as fit, separated by spaces.
func Fsep(docs ...Doc) Doc { return newGroup(docs, true, true) }

// Fcat is [Fsep] without the separating spaces.
func Fcat(docs ...Doc) Doc { return newGroup(docs, false, true) }

func newGroup(docs []Doc, space, fill bool) Doc {
	kept := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if !IsEmpty(d) {
			kept = append(kept, d)
		}
	}
	switch len(kept) {
	case 0:
		return Empty()
	case 1:
		return kept[0]
	}
	return group{docs: kept, space: space, fill: fill}
}

// Punctuate appends p to every doc but the last.
func Punctuate(p Doc, docs []Doc) []Doc {
	out := make([]Doc, len(docs))
	for i, d := range docs {
		if i < len(docs)-1 {
			d = Beside(d, p)
		}
		out[i] = d
	}
	return out
}

// Parens wraps d in parentheses.
func Parens(d Doc) Doc { return Hcat(Text("("), d, Text(")")) }

// Brackets wraps d in square brackets.
func Brackets(d Doc) Doc { return Hcat(Text("["), d, Text("]")) }

// Braces wraps d in curly braces.
func Braces(d Doc) Doc { return Hcat(Text("{"), d, Text("}")) }

// Flat renders d on a single line, ignoring nesting. Vertical compositions
// are joined with a single space.
func Flat(d Doc) string {
	var sb strings.Builder
	writeFlat(&sb, d, true)
	return sb.String()
}

func writeFlat(sb *strings.Builder, d Doc, lenient bool) bool {
	switch d := d.(type) {
	case empty:
	case text:
		sb.WriteString(d.s)
	case nest:
		return writeFlat(sb, d.d, lenient)
	case beside:
		if !writeFlat(sb, d.left, lenient) {
			return false
		}
		if d.space {
			sb.WriteByte(' ')
		}
		return writeFlat(sb, d.right, lenient)
	case above:
		if !lenient {
			return false
		}
		writeFlat(sb, d.top, lenient)
		sb.WriteByte(' ')
		writeFlat(sb, d.bottom, lenient)
	case group:
		for i, x := range d.docs {
			if i > 0 && d.space {
				sb.WriteByte(' ')
			}
			if !writeFlat(sb, x, lenient) {
				return false
			}
		}
	}
	return true
}

// flat returns the one-line rendering of d and its width. ok is false when d
// contains a hard vertical composition and so has no one-line form.
func flat(d Doc) (s string, w int, ok bool) {
	var sb strings.Builder
	if !writeFlat(&sb, d, false) {
		return "", 0, false
	}
	s = sb.String()
	return s, runewidth.StringWidth(s), true
}

// head returns the smallest width the first line of d can have. whole is
// true when d is always exactly that one line.
func head(d Doc) (w int, whole bool) {
	switch d := d.(type) {
	case empty:
		return 0, true
	case text:
		return d.w, true
	case nest:
		return head(d.d)
	case beside:
		lw, lwhole := head(d.left)
		if !lwhole {
			return lw, false
		}
		rw, rwhole := head(d.right)
		if d.space {
			lw++
		}
		return lw + rw, rwhole
	case above:
		w, _ := head(d.top)
		return w, false
	case group:
		w, _ := head(d.docs[0])
		return w, false
	}
	return 0, true
}
