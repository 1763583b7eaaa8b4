package pretty

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/bjaus/pretty/doc"
)

// Maybe is an optional value, printed as Nothing or Just x.
type Maybe[T Printer] struct {
	value T
	ok    bool
}

// Just returns a present optional value.
func Just[T Printer](v T) Maybe[T] { return Maybe[T]{value: v, ok: true} }

// Nothing returns an absent optional value.
func Nothing[T Printer]() Maybe[T] { return Maybe[T]{} }

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

func (m Maybe[T]) DocPrec(prec int) doc.Doc {
	if !m.ok {
		return doc.Text("Nothing")
	}
	return applied(prec, "Just", m.value)
}

// Either holds a value of one of two types, printed as Left x or Right y.
type Either[A, B Printer] struct {
	left  A
	right B
	isR   bool
}

// Left returns an Either holding a.
func Left[A, B Printer](a A) Either[A, B] { return Either[A, B]{left: a} }

// Right returns an Either holding b.
func Right[A, B Printer](b B) Either[A, B] { return Either[A, B]{right: b, isR: true} }

// IsRight reports whether e holds its right alternative.
func (e Either[A, B]) IsRight() bool { return e.isR }

func (e Either[A, B]) DocPrec(prec int) doc.Doc {
	if e.isR {
		return applied(prec, "Right", e.right)
	}
	return applied(prec, "Left", e.left)
}

// applied renders a one-argument prefix application, parenthesized in any
// non-top-level context.
func applied(prec int, name string, arg Printer) doc.Doc {
	d := doc.Sep(doc.Text(name), doc.Nest(len(name)+1, arg.DocPrec(PrecArg)))
	if prec != PrecTop {
		return doc.Parens(d)
	}
	return d
}

// Tuple2 is a pair.
type Tuple2[A, B Printer] struct {
	V1 A
	V2 B
}

// Pair returns the tuple (a, b).
func Pair[A, B Printer](a A, b B) Tuple2[A, B] { return Tuple2[A, B]{V1: a, V2: b} }

func (t Tuple2[A, B]) DocPrec(int) doc.Doc { return tuple(t.V1, t.V2) }

// Tuple3 is a triple.
type Tuple3[A, B, C Printer] struct {
	V1 A
	V2 B
	V3 C
}

func (t Tuple3[A, B, C]) DocPrec(int) doc.Doc { return tuple(t.V1, t.V2, t.V3) }

// Tuple4 is a 4-tuple.
type Tuple4[A, B, C, D Printer] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

func (t Tuple4[A, B, C, D]) DocPrec(int) doc.Doc { return tuple(t.V1, t.V2, t.V3, t.V4) }

// Tuple5 is a 5-tuple.
type Tuple5[A, B, C, D, E Printer] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

func (t Tuple5[A, B, C, D, E]) DocPrec(int) doc.Doc {
	return tuple(t.V1, t.V2, t.V3, t.V4, t.V5)
}

// Tuple6 is a 6-tuple.
type Tuple6[A, B, C, D, E, F Printer] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

func (t Tuple6[A, B, C, D, E, F]) DocPrec(int) doc.Doc {
	return tuple(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6)
}

// Tuple7 is a 7-tuple.
type Tuple7[A, B, C, D, E, F, G Printer] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

func (t Tuple7[A, B, C, D, E, F, G]) DocPrec(int) doc.Doc {
	return tuple(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7)
}

func tuple(items ...Printer) doc.Doc {
	docs := make([]doc.Doc, len(items))
	for i, it := range items {
		docs[i] = it.DocPrec(PrecTop)
	}
	return doc.Parens(doc.Sep(doc.Punctuate(doc.Text(","), docs)...))
}

// List is a sequence, printed as [a,b,c] unless the element type implements
// [ListPrinter].
type List[T Printer] []T

func (l List[T]) DocPrec(int) doc.Doc {
	items := make([]Printer, len(l))
	for i, v := range l {
		items[i] = v
	}
	var zero T
	if lp, ok := any(zero).(ListPrinter); ok {
		return lp.DocList(items)
	}
	return docList(items)
}

func docList(items []Printer) doc.Doc {
	docs := make([]doc.Doc, len(items))
	for i, it := range items {
		docs[i] = it.DocPrec(PrecTop)
	}
	return doc.Brackets(doc.Fcat(doc.Punctuate(doc.Text(","), docs)...))
}

// Key is a map key with a natural order.
type Key interface {
	Printer
	cmp.Ordered
}

// Map is an ordered map, printed as fromList [(k, v),...] in ascending key
// order. NaN keys sort first.
type Map[K Key, V Printer] map[K]V

func (m Map[K, V]) DocPrec(prec int) doc.Doc {
	entries := make([]Tuple2[K, V], 0, len(m))
	for k, v := range maps.All(m) {
		entries = append(entries, Pair(k, v))
	}
	slices.SortFunc(entries, func(a, b Tuple2[K, V]) int { return cmp.Compare(a.V1, b.V1) })
	pairs := make([]Printer, len(entries))
	for i, e := range entries {
		pairs[i] = e
	}
	return fromList(prec, pairs)
}

// HashKey is a map key without a natural order.
type HashKey interface {
	Printer
	comparable
}

// HashMap is an unordered map, printed like [Map] with keys ordered by
// their rendered text so that output is deterministic.
type HashMap[K HashKey, V Printer] map[K]V

type hashEntry struct {
	text string
	pair Printer
}

func (m HashMap[K, V]) DocPrec(prec int) doc.Doc {
	entries := make([]hashEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, hashEntry{text: doc.Flat(k.DocPrec(PrecTop)), pair: Pair(k, v)})
	}
	slices.SortFunc(entries, func(a, b hashEntry) int { return strings.Compare(a.text, b.text) })
	pairs := make([]Printer, len(entries))
	for i, e := range entries {
		pairs[i] = e.pair
	}
	return fromList(prec, pairs)
}

func fromList(prec int, pairs []Printer) doc.Doc {
	d := doc.Sep(doc.Text("fromList"), doc.Nest(9, docList(pairs)))
	if prec > PrecApp {
		return doc.Parens(d)
	}
	return d
}
