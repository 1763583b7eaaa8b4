package pretty_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/doc"
)

// --- Test types: styled ---

type narrow struct{ tree }

func (narrow) Style() pretty.Style { return pretty.Style{Width: 15, Ribbon: 1} }

type badlyStyled struct{ tree }

func (badlyStyled) Style() pretty.Style { return pretty.Style{Width: -1} }

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

var errWriteFailed = errors.New("write failed")

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    pretty.Format
		wantErr require.ErrorAssertionFunc
	}{
		"json":       {input: "json", want: pretty.JSON, wantErr: require.NoError},
		"yaml":       {input: "yaml", want: pretty.YAML, wantErr: require.NoError},
		"yml":        {input: "yml", want: pretty.YAML, wantErr: require.NoError},
		"upper case": {input: "JSON", want: pretty.JSON, wantErr: require.NoError},
		"unknown":    {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pretty.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		path    string
		want    pretty.Format
		wantErr error
	}{
		"json":         {path: "a/b.json", want: pretty.JSON},
		"yaml":         {path: "style.yaml", want: pretty.YAML},
		"yml":          {path: "style.yml", want: pretty.YAML},
		"no extension": {path: "Makefile", wantErr: pretty.ErrUnsupportedFormat},
		"unknown":      {path: "a.toml", wantErr: pretty.ErrUnsupportedFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pretty.FormatOf(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := pretty.Formats()
	assert.Equal(t, []pretty.Format{pretty.JSON, pretty.YAML}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, pretty.JSON, pretty.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "json", pretty.JSON.String())
	assert.Equal(t, "yaml", pretty.YAML.String())
}

// --- Driver ---

func TestDocument(t *testing.T) {
	t.Parallel()
	d := pretty.Document(pretty.Just(pretty.Int(-1)))
	assert.Equal(t, "Just (-1)", doc.Flat(d))
}

func TestRenderFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	v := node(leaf(1), leaf(2))
	assert.Equal(t, pretty.Sprint(v), pretty.Render(v, 0, 0))
	assert.Equal(t, pretty.Sprint(v), pretty.Render(v, -3, -1))
}

func TestSprintUsesStyled(t *testing.T) {
	t.Parallel()
	v := narrow{node(leaf(1), leaf(2))}
	assert.Equal(t, "Node (Leaf 1)\n     (Leaf 2)", pretty.Sprint(v))
}

func TestSprintIgnoresInvalidStyled(t *testing.T) {
	t.Parallel()
	v := badlyStyled{node(leaf(1), leaf(2))}
	assert.Equal(t, "Node (Leaf 1) (Leaf 2)", pretty.Sprint(v))
}

func TestFprint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, pretty.Fprint(&buf, leaf(1)))
	assert.Equal(t, "Leaf 1\n", buf.String())
}

func TestFprintWriteError(t *testing.T) {
	t.Parallel()
	err := pretty.Fprint(&errWriter{}, leaf(1))
	assert.Same(t, errWriteFailed, err)
}

func TestWrite(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		style pretty.Style
		items []tree
		want  string
	}{
		"default style": {
			style: pretty.DefaultStyle,
			items: []tree{leaf(1), node(leaf(1), leaf(2))},
			want:  "Leaf 1\nNode (Leaf 1) (Leaf 2)\n",
		},
		"narrow": {
			style: pretty.Style{Width: 15, Ribbon: 1},
			items: []tree{node(leaf(1), leaf(2))},
			want:  "Node (Leaf 1)\n     (Leaf 2)\n",
		},
		"ribbon": {
			style: pretty.Style{Width: 40, Ribbon: 0.4},
			items: []tree{node(leaf(1), leaf(2))},
			want:  "Node (Leaf 1)\n     (Leaf 2)\n",
		},
		"no items": {
			style: pretty.DefaultStyle,
			want:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, pretty.Write(&buf, tt.style, tt.items...))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteInvalidStyle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := pretty.Write(&buf, pretty.Style{Width: 0, Ribbon: 1}, leaf(1))
	require.ErrorIs(t, err, pretty.ErrInvalidStyle)
	assert.Empty(t, buf.String())
}

func TestWriteStopsAtFailedWrite(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 1}
	err := pretty.Write(w, pretty.DefaultStyle, leaf(1), leaf(2), leaf(3))
	assert.Same(t, errWriteFailed, err)
	assert.Equal(t, 1, w.calls)
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	got, err := pretty.Marshal(pretty.DefaultStyle, pretty.Int(1), pretty.Int(-2))
	require.NoError(t, err)
	assert.Equal(t, "1\n-2\n", string(got))
}

func TestMarshalInvalidStyle(t *testing.T) {
	t.Parallel()
	got, err := pretty.Marshal(pretty.Style{Width: 10, Ribbon: 2}, pretty.Int(1))
	require.ErrorIs(t, err, pretty.ErrInvalidStyle)
	assert.Nil(t, got)
}

// --- Streaming ---

func TestWriteIter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	seq := slices.Values([]pretty.Bool{true, false})
	require.NoError(t, pretty.WriteIter(&buf, pretty.DefaultStyle, seq))
	assert.Equal(t, "True\nFalse\n", buf.String())
}

func TestWriteIterStopsAtFailedWrite(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 2}
	pulled := 0
	seq := func(yield func(pretty.Int) bool) {
		for i := range 10 {
			pulled++
			if !yield(pretty.Int(i)) {
				return
			}
		}
	}
	err := pretty.WriteIter(w, pretty.DefaultStyle, seq)
	assert.Same(t, errWriteFailed, err)
	assert.Equal(t, 3, pulled)
}

func TestWriteIterInvalidStyle(t *testing.T) {
	t.Parallel()
	called := false
	seq := func(func(pretty.Int) bool) { called = true }
	err := pretty.WriteIter(&bytes.Buffer{}, pretty.Style{}, seq)
	require.ErrorIs(t, err, pretty.ErrInvalidStyle)
	assert.False(t, called)
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan tree, 2)
	ch <- leaf(1)
	ch <- leaf(2)
	close(ch)

	var buf bytes.Buffer
	require.NoError(t, pretty.WriteChan(&buf, pretty.DefaultStyle, ch))
	assert.Equal(t, "Leaf 1\nLeaf 2\n", buf.String())
}

func TestWriteChanWriteError(t *testing.T) {
	t.Parallel()
	ch := make(chan tree, 2)
	ch <- leaf(1)
	ch <- leaf(2)
	close(ch)

	err := pretty.WriteChan(&errWriter{}, pretty.DefaultStyle, ch)
	assert.Same(t, errWriteFailed, err)
}
