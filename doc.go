// Package pretty prints algebraic data types in structural syntax, laid out
// to fit a line width.
//
// Output with whitespace collapsed is the canonical structural form of a
// value: constructor names applied to their arguments, parentheses chosen by
// precedence, record fields in braces, and infix constructors between their
// operands. Layout is computed by package [github.com/bjaus/pretty/doc], so a
// value that does not fit on one line breaks with its arguments aligned:
//
//	Node (Node (Leaf 1) (Leaf 2))
//	     (Leaf 3)
//
// # Printers
//
// Everything printable implements [Printer]. The package provides printers
// for common base types:
//
//   - [Bool], [Int], [Uint], [Float], [Float32], [Char], [String], [UnitValue]
//   - [Maybe] ([Just], [Nothing]) and [Either] ([Left], [Right])
//   - [Tuple2] through [Tuple7]
//   - [List]; implement [ListPrinter] to change how a list of your type
//     prints, as [Char] does to print strings
//   - [Map] and [HashMap], printed as fromList [...]
//   - [Time], and [Opaque] for values that only have a String method
//
// # Deriving a printer
//
// An algebraic type describes its constructors once with [NewType] and
// implements [Generic]. Its DocPrec then delegates to [GenericDoc]:
//
//	type Tree struct {
//		leaf        int
//		left, right *Tree
//	}
//
//	var treeType = pretty.MustType(
//		pretty.Con("Leaf", pretty.Leaf{}),
//		pretty.Con("Node", pretty.Leaf{}, pretty.Leaf{}),
//	)
//
//	func (t Tree) Type() *pretty.Type { return treeType }
//	func (t Tree) Tag() int {
//		if t.left == nil {
//			return 0
//		}
//		return 1
//	}
//	func (t Tree) Args() []pretty.Printer {
//		if t.left == nil {
//			return []pretty.Printer{pretty.Int(t.leaf)}
//		}
//		return []pretty.Printer{*t.left, *t.right}
//	}
//	func (t Tree) DocPrec(p int) doc.Doc { return pretty.GenericDoc(p, t) }
//
// Use [Named] fields for record syntax and [InfixCon] for operators.
//
// # Rendering
//
// [Document] returns the layout document, [Render] lays it out for a width
// and ribbon fraction, [Sprint] and [Print] use [DefaultStyle] (or the
// value's own [Styled] style), and [Write], [Marshal], [WriteIter], and
// [WriteChan] print many values. Styles can be read from JSON or YAML files
// with [LoadStyle].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedShape]: an invalid type description
//   - [ErrInvalidStyle]: a width or ribbon out of range
//   - [ErrUnsupportedFormat]: unknown style or input format
package pretty
