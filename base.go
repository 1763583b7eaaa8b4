package pretty

import (
	"math"
	"strconv"
	"strings"

	"github.com/bjaus/pretty/doc"
)

// Bool prints as True or False.
type Bool bool

// Int is a signed integer.
type Int int64

// Uint is an unsigned integer.
type Uint uint64

// Float is a 64-bit floating point number.
type Float float64

// Float32 is a 32-bit floating point number. It prints with the shortest
// representation that round-trips at 32 bits.
type Float32 float32

// Char is a single character. A [List] of Char prints as a string literal.
type Char rune

// String is text, printed as a double-quoted literal.
type String string

// UnitValue is the empty tuple, printed as ().
type UnitValue struct{}

func (b Bool) DocPrec(int) doc.Doc {
	if b {
		return doc.Text("True")
	}
	return doc.Text("False")
}

func (n Int) DocPrec(prec int) doc.Doc {
	return signed(prec, n < 0, strconv.FormatInt(int64(n), 10))
}

func (n Uint) DocPrec(int) doc.Doc {
	return doc.Text(strconv.FormatUint(uint64(n), 10))
}

func (f Float) DocPrec(prec int) doc.Doc {
	return signed(prec, math.Signbit(float64(f)) && !math.IsNaN(float64(f)), showFloat(float64(f), 64))
}

func (f Float32) DocPrec(prec int) doc.Doc {
	return signed(prec, math.Signbit(float64(f)) && !math.IsNaN(float64(f)), showFloat(float64(f), 32))
}

func (c Char) DocPrec(int) doc.Doc {
	return doc.Text(strconv.QuoteRune(rune(c)))
}

// DocList prints a sequence of characters as one string literal.
func (Char) DocList(items []Printer) doc.Doc {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteRune(rune(it.(Char)))
	}
	return doc.Text(strconv.Quote(sb.String()))
}

func (s String) DocPrec(int) doc.Doc {
	return doc.Text(strconv.Quote(string(s)))
}

func (UnitValue) DocPrec(int) doc.Doc { return doc.Text("()") }

// signed parenthesizes negative numbers anywhere but the top level.
func signed(prec int, negative bool, s string) doc.Doc {
	if negative && prec != PrecTop {
		return doc.Text("(" + s + ")")
	}
	return doc.Text(s)
}

// showFloat formats f the way a structural printer shows floating point
// numbers: plain decimal with at least one fractional digit for magnitudes in
// [0.1, 10^7), scientific notation with a bare exponent otherwise.
func showFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(f); a >= 0.1 && a < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bits)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bits), "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "e" + strconv.Itoa(e)
}
