package doc_test

import (
	"strings"
	"testing"

	"github.com/bjaus/pretty/doc"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func texts(ss ...string) []doc.Doc {
	out := make([]doc.Doc, len(ss))
	for i, s := range ss {
		out[i] = doc.Text(s)
	}
	return out
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		d      doc.Doc
		width  int
		ribbon float64
		want   string
	}{
		"text": {
			d: doc.Text("hello"), width: 10, ribbon: 1,
			want: "hello",
		},
		"empty": {
			d: doc.Empty(), width: 10, ribbon: 1,
			want: "",
		},
		"beside": {
			d: doc.Beside(doc.Text("ab"), doc.Text("cd")), width: 10, ribbon: 1,
			want: "abcd",
		},
		"beside space": {
			d: doc.BesideSpace(doc.Text("ab"), doc.Text("cd")), width: 10, ribbon: 1,
			want: "ab cd",
		},
		"beside ignores nest on the right": {
			d: doc.Beside(doc.Text("ab"), doc.Nest(5, doc.Text("c"))), width: 10, ribbon: 1,
			want: "abc",
		},
		"sep fits": {
			d: doc.Sep(texts("a", "b", "c")...), width: 10, ribbon: 1,
			want: "a b c",
		},
		"sep breaks": {
			d: doc.Sep(texts("aaaa", "bbbb", "cccc")...), width: 10, ribbon: 1,
			want: "aaaa\nbbbb\ncccc",
		},
		"cat fits without spaces": {
			d: doc.Cat(texts("a", "b", "c")...), width: 10, ribbon: 1,
			want: "abc",
		},
		"sep drops empties": {
			d: doc.Sep(doc.Empty(), doc.Text("a"), doc.Empty(), doc.Text("b")), width: 10, ribbon: 1,
			want: "a b",
		},
		"dovetail": {
			d:     doc.Sep(doc.Text("Node"), doc.Nest(5, doc.Text("(Leaf 1)")), doc.Nest(5, doc.Text("(Leaf 2)"))),
			width: 15, ribbon: 1,
			want: "Node (Leaf 1)\n     (Leaf 2)",
		},
		"no dovetail when the upper line is too long": {
			d: doc.Vcat(doc.Text("long"), doc.Nest(2, doc.Text("x"))), width: 10, ribbon: 1,
			want: "long\n  x",
		},
		"nested group": {
			d: doc.Sep(doc.Text("f"), doc.Nest(2, doc.Sep(doc.Text("x"), doc.Text("y")))), width: 3, ribbon: 1,
			want: "f x\n  y",
		},
		"trailing text counts against the width": {
			d: doc.Beside(doc.Sep(texts("aaa", "bbb")...), doc.Text(")))")), width: 8, ribbon: 1,
			want: "aaa\nbbb)))",
		},
		"ribbon forces a break": {
			d: doc.Sep(texts("aaaa", "bbbb")...), width: 20, ribbon: 0.4,
			want: "aaaa\nbbbb",
		},
		"full ribbon keeps one line": {
			d: doc.Sep(texts("aaaa", "bbbb")...), width: 20, ribbon: 1,
			want: "aaaa bbbb",
		},
		"fsep fills lines": {
			d: doc.Fsep(texts("aaa", "bbb", "ccc", "ddd")...), width: 8, ribbon: 1,
			want: "aaa bbb\nccc ddd",
		},
		"fcat fills lines": {
			d: doc.Brackets(doc.Fcat(doc.Punctuate(doc.Text(","), texts("1", "2", "3", "4", "5"))...)), width: 6, ribbon: 1,
			want: "[1,2,\n 3,4,\n 5]",
		},
		"wide runes count double": {
			d: doc.Sep(texts("日本", "語")...), width: 6, ribbon: 1,
			want: "日本\n語",
		},
		"defaults for invalid width and ribbon": {
			d: doc.Sep(texts(strings.Repeat("a", 30), strings.Repeat("b", 30))...), width: 0, ribbon: 0,
			want: strings.Repeat("a", 30) + " " + strings.Repeat("b", 30),
		},
		"long token is never broken": {
			d: doc.Text(strings.Repeat("x", 20)), width: 5, ribbon: 1,
			want: strings.Repeat("x", 20),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, doc.Render(tt.d, tt.width, tt.ribbon))
		})
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()
	x := doc.Text("x")
	assert.Equal(t, "(x)", doc.Render(doc.Parens(x), 10, 1))
	assert.Equal(t, "[x]", doc.Render(doc.Brackets(x), 10, 1))
	assert.Equal(t, "{x}", doc.Render(doc.Braces(x), 10, 1))
	assert.Equal(t, "()", doc.Render(doc.Parens(doc.Empty()), 10, 1))
}

func TestHcatHsep(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", doc.Render(doc.Hcat(texts("a", "b", "c")...), 10, 1))
	assert.Equal(t, "a b c", doc.Render(doc.Hsep(texts("a", "b", "c")...), 10, 1))
	assert.True(t, doc.IsEmpty(doc.Hcat()))
	assert.True(t, doc.IsEmpty(doc.Vcat()))
	assert.True(t, doc.IsEmpty(doc.Sep()))
}

func TestPunctuate(t *testing.T) {
	t.Parallel()
	got := doc.Punctuate(doc.Text(","), texts("a", "b", "c"))
	var parts []string
	for _, d := range got {
		parts = append(parts, doc.Flat(d))
	}
	assert.Equal(t, []string{"a,", "b,", "c"}, parts)
	assert.Empty(t, doc.Punctuate(doc.Text(","), nil))
}

func TestFlat(t *testing.T) {
	t.Parallel()
	d := doc.Sep(doc.Text("f"), doc.Nest(4, doc.Vcat(texts("a", "b")...)))
	assert.Equal(t, "f a b", doc.Flat(d))
}

func TestNestCollapses(t *testing.T) {
	t.Parallel()
	d := doc.Vcat(doc.Text("abcdef"), doc.Nest(2, doc.Nest(3, doc.Text("b"))))
	assert.Equal(t, "abcdef\n     b", doc.Render(d, 10, 1))
	d = doc.Vcat(doc.Text("a"), doc.Nest(2, doc.Nest(3, doc.Text("b"))))
	assert.Equal(t, "a    b", doc.Render(d, 10, 1))
	assert.True(t, doc.IsEmpty(doc.Nest(4, doc.Empty())))
}

func TestRenderTrailingSpaces(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		d    doc.Doc
		want string
	}{
		"text keeps its own spaces": {
			d:    doc.Vcat(doc.Text("a "), doc.Text("b  ")),
			want: "a \nb  ",
		},
		"indentation of an empty line": {
			d:    doc.Vcat(doc.Nest(4, doc.Text("a")), doc.Nest(4, doc.Text("")), doc.Text("b")),
			want: "    a\n\nb",
		},
		"space before empty text": {
			d:    doc.BesideSpace(doc.Text("a"), doc.Text("")),
			want: "a",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, doc.Render(tt.d, 10, 1))
		})
	}
}

func TestLinesStayWithinWidth(t *testing.T) {
	t.Parallel()
	words := texts(strings.Fields("the quick brown fox jumps over the lazy dog and keeps on running far away")...)
	for _, width := range []int{8, 12, 20, 40} {
		out := doc.Render(doc.Fsep(words...), width, 1)
		for _, ln := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, runewidth.StringWidth(ln), width, "width %d line %q", width, ln)
		}
	}
}
