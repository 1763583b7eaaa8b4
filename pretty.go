package pretty

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/pretty/doc"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedShape    = errors.New("malformed shape")
	ErrInvalidStyle      = errors.New("invalid style")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Precedence levels shared by every printer.
const (
	// PrecTop is the precedence of a value with no enclosing context.
	// Output at this level is never wrapped in parentheses.
	PrecTop = 0
	// PrecApp is the precedence of ordinary constructor application.
	PrecApp = 10
	// PrecArg is the precedence of a constructor argument. Anything other
	// than an atom is parenthesized at this level.
	PrecArg = 11
)

// Printer renders a value as a layout document. prec is the precedence of
// the surrounding context; see [PrecTop], [PrecApp], and [PrecArg].
type Printer interface {
	DocPrec(prec int) doc.Doc
}

// ListPrinter overrides how a sequence of values of the implementing type is
// rendered. It is checked on the zero value of a [List] element type.
// Without it, lists render as "[a,b,c]".
type ListPrinter interface {
	DocList(items []Printer) doc.Doc
}

// Styled lets a value choose the style used by [Sprint], [Print], and
// [Fprint]. Default: [DefaultStyle].
type Styled interface {
	Style() Style
}

// Format names an input or configuration file format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var formats = []Format{JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. "yml" is accepted as [YAML].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatOf returns the format implied by a file name's extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Document returns the document for v at the top-level precedence.
func Document(v Printer) doc.Doc {
	return v.DocPrec(PrecTop)
}

// Render lays v out for the given line width and ribbon fraction.
// A non-positive width or ribbon falls back to [DefaultStyle].
func Render(v Printer, width int, ribbon float64) string {
	return doc.Render(Document(v), width, ribbon)
}

// Sprint renders v with its own [Styled] style, or [DefaultStyle].
func Sprint(v Printer) string {
	s := styleOf(v)
	return Render(v, s.Width, s.Ribbon)
}

// Fprint writes [Sprint] of v followed by a newline to w.
// A failed write is returned unmodified.
func Fprint(w io.Writer, v Printer) error {
	_, err := io.WriteString(w, Sprint(v)+"\n")
	return err
}

// Print writes [Sprint] of v followed by a newline to standard output.
func Print(v Printer) error {
	return Fprint(os.Stdout, v)
}

// Write renders each item with style s and writes it to w, each followed by
// a newline. s is validated before anything is written.
func Write[T Printer](w io.Writer, s Style, items ...T) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, item := range items {
		if err := writeItem(w, s, item); err != nil {
			return err
		}
	}
	return nil
}

func writeItem[T Printer](w io.Writer, s Style, item T) error {
	_, err := io.WriteString(w, Render(item, s.Width, s.Ribbon)+"\n")
	return err
}

// Marshal renders items like [Write] and returns the bytes.
func Marshal[T Printer](s Style, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, s, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func styleOf(v any) Style {
	if st, ok := v.(Styled); ok {
		if s := st.Style(); s.Validate() == nil {
			return s
		}
	}
	return DefaultStyle
}
