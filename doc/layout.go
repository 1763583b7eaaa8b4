package doc

import (
	"math"
	"strings"
)

// Defaults used by [Render] when it is handed a non-positive width or ribbon.
const (
	DefaultWidth  = 70
	DefaultRibbon = 1.0
)

// Render lays d out for a line of width columns, of which at most
// ribbon*width may be taken by text other than indentation, and returns the
// resulting text. Lines are separated by "\n"; there is no final newline.
// Text is written as given: the only spaces Render adds are indentation and
// the gaps of [BesideSpace] and dovetailing, and none of those end a line.
//
// A group is laid out on one line when its one-line form, together with the
// text that must follow it on the same line, fits both limits. The limits
// are targets rather than guarantees. A token wider than the line is never
// broken. When the upper document of [Above] ends before the indentation of
// the lower one, the two share a line even if that line then runs past the
// width, so deeply nested arguments overflow at narrow widths.
func Render(d Doc, width int, ribbon float64) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if ribbon <= 0 {
		ribbon = DefaultRibbon
	}
	r := int(math.Round(float64(width) * ribbon))
	if r < 1 {
		r = 1
	}
	l := layouter{width: width, ribbon: r}
	lines := l.layout(d, pos{fresh: true})

	var sb strings.Builder
	for i, ln := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if ln.text == "" {
			continue
		}
		sb.WriteString(strings.Repeat(" ", ln.indent))
		sb.WriteString(ln.text)
	}
	return sb.String()
}

// line is one output line. indent is the column of the first character of
// text; for the first line of a partial layout it is the column the layout
// started at, which need not be the start of a physical line.
type line struct {
	indent int
	text   string
	width  int
}

func (l line) end() int { return l.indent + l.width }

type pos struct {
	col        int  // column the document starts at
	lineIndent int  // indentation of the physical line the document starts on
	trail      int  // width of text that must follow the document's last line
	fresh      bool // document starts a line of a vertical composition; Nest applies
}

type layouter struct {
	width  int
	ribbon int
}

func (l *layouter) fits(col, lineIndent, w int) bool {
	return col+w <= l.width && col-lineIndent+w <= l.ribbon
}

func (l *layouter) layout(d Doc, p pos) []line {
	switch d := d.(type) {
	case text:
		return []line{{indent: p.col, text: d.s, width: d.w}}
	case nest:
		if p.fresh {
			p.col = max(p.col+d.k, 0)
			p.lineIndent = p.col
		}
		return l.layout(d.d, p)
	case beside:
		return l.layoutBeside(d, p)
	case above:
		top := l.layout(d.top, pos{col: p.col, lineIndent: p.lineIndent, fresh: p.fresh})
		bottom := l.layout(d.bottom, pos{col: p.col, lineIndent: p.col, trail: p.trail, fresh: true})
		return dovetail(top, bottom)
	case group:
		if d.fill {
			return l.layoutFill(d, p)
		}
		if s, w, ok := flat(d); ok && l.fits(p.col, p.lineIndent, w+p.trail) {
			return []line{{indent: p.col, text: s, width: w}}
		}
		return l.layout(Vcat(d.docs...), p)
	}
	return []line{{indent: p.col}}
}

func (l *layouter) layoutBeside(d beside, p pos) []line {
	sp := 0
	if d.space {
		sp = 1
	}
	hw, whole := head(d.right)
	pl := p
	pl.trail = hw + sp
	if whole {
		pl.trail += p.trail
	}
	left := l.layout(d.left, pl)
	last := left[len(left)-1]
	right := l.layout(d.right, pos{
		col:        last.end() + sp,
		lineIndent: lineIndentOf(left, p),
		trail:      p.trail,
	})
	return merge(left, right, sp)
}

func (l *layouter) layoutFill(g group, p pos) []line {
	sp := 0
	if g.space {
		sp = 1
	}
	n := len(g.docs)
	trailAt := func(i int) int {
		if i == n-1 {
			return p.trail
		}
		return 0
	}

	out := l.layout(g.docs[0], pos{col: p.col, lineIndent: p.lineIndent, trail: trailAt(0), fresh: p.fresh})
	for i := 1; i < n; i++ {
		last := out[len(out)-1]
		col := last.end() + sp
		if s, w, ok := flat(g.docs[i]); ok && l.fits(col, lineIndentOf(out, p), w+trailAt(i)) {
			out = merge(out, []line{{indent: col, text: s, width: w}}, sp)
			continue
		}
		out = append(out, l.layout(g.docs[i], pos{col: p.col, lineIndent: p.col, trail: trailAt(i), fresh: true})...)
	}
	return out
}

// lineIndentOf returns the indentation of the physical line holding the last
// line of lines, which were laid out from p.
func lineIndentOf(lines []line, p pos) int {
	if len(lines) == 1 && !p.fresh {
		return p.lineIndent
	}
	return lines[len(lines)-1].indent
}

// merge continues the last line of left with the first line of right. No
// padding is added before an empty line.
func merge(left, right []line, sp int) []line {
	out := make([]line, 0, len(left)+len(right)-1)
	out = append(out, left...)
	n := len(out) - 1
	if right[0].text == "" {
		sp = 0
	}
	out[n].text += strings.Repeat(" ", sp) + right[0].text
	out[n].width += sp + right[0].width
	return append(out, right[1:]...)
}

// dovetail stacks bottom below top, continuing top's last line when it ends
// before bottom's first line starts.
func dovetail(top, bottom []line) []line {
	last, first := top[len(top)-1], bottom[0]
	if last.end() < first.indent {
		return merge(top, bottom, first.indent-last.end())
	}
	out := make([]line, 0, len(top)+len(bottom))
	out = append(out, top...)
	return append(out, bottom...)
}
