package value

import (
	"errors"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/doc"
)

// ErrAliasCycle is returned for a YAML document whose aliases refer back to
// a node that contains them.
var ErrAliasCycle = errors.New("yaml alias cycle")

// Decode reads every document in r, which is in format f.
func Decode(r io.Reader, f pretty.Format) ([]Value, error) {
	switch f {
	case pretty.JSON:
		return DecodeJSON(r)
	case pretty.YAML:
		return DecodeYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", pretty.ErrUnsupportedFormat, f)
}

// DecodeJSON reads a stream of JSON values from r. Numbers without a
// fraction or exponent that fit in 64 bits decode as Int, the rest as Float.
func DecodeJSON(r io.Reader) ([]Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var out []Value
	for {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		v, err := fromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		out = append(out, v)
	}
}

func fromJSON(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return BoolOf(x), nil
	case string:
		return StringOf(x), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return IntOf(n), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("number %q: %w", x.String(), err)
		}
		return FloatOf(f), nil
	case float64:
		return FloatOf(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i, e := range x {
			v, err := fromJSON(e)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return ArrayOf(arr...), nil
	case map[string]any:
		obj := make(map[string]Value, len(x))
		for k, e := range x {
			v, err := fromJSON(e)
			if err != nil {
				return Value{}, err
			}
			obj[k] = v
		}
		return Value{kind: KindObject, obj: obj}, nil
	}
	return Value{}, fmt.Errorf("unexpected %T", raw)
}

// DecodeYAML reads every document of a YAML stream from r. Scalars decode
// by their resolved tag; timestamps become Time. Mapping keys that are not
// scalars are keyed by their one-line structural rendering, and merge keys
// (<<) are expanded.
func DecodeYAML(r io.Reader) ([]Value, error) {
	dec := yaml.NewDecoder(r)

	var out []Value
	for {
		var n yaml.Node
		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		y := yamlDecoder{active: map[*yaml.Node]bool{}}
		v, err := y.node(&n)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		out = append(out, v)
	}
}

type yamlDecoder struct {
	active map[*yaml.Node]bool
}

func (y yamlDecoder) node(n *yaml.Node) (Value, error) {
	if y.active[n] {
		return Value{}, fmt.Errorf("%w at line %d", ErrAliasCycle, n.Line)
	}
	y.active[n] = true
	defer delete(y.active, n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return y.node(n.Content[0])
	case yaml.AliasNode:
		return y.node(n.Alias)
	case yaml.SequenceNode:
		arr := make([]Value, len(n.Content))
		for i, c := range n.Content {
			v, err := y.node(c)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return ArrayOf(arr...), nil
	case yaml.MappingNode:
		obj := map[string]Value{}
		if err := y.mapping(n, obj); err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, obj: obj}, nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return Value{}, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
}

// mapping adds the pairs of n to obj. Merged mappings are added first so
// that keys written in n take precedence.
func (y yamlDecoder) mapping(n *yaml.Node, obj map[string]Value) error {
	var merges []*yaml.Node
	type pair struct {
		key string
		val Value
	}
	var pairs []pair
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		key, err := y.key(k)
		if err != nil {
			return err
		}
		val, err := y.node(v)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair{key: key, val: val})
	}

	for _, m := range merges {
		if err := y.merge(m, obj); err != nil {
			return err
		}
	}
	for _, p := range pairs {
		obj[p.key] = p.val
	}
	return nil
}

// merge expands the value of a merge key: a mapping, an alias to one, or a
// sequence of them where earlier entries win.
func (y yamlDecoder) merge(n *yaml.Node, obj map[string]Value) error {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if y.active[n] {
		return fmt.Errorf("%w at line %d", ErrAliasCycle, n.Line)
	}
	switch n.Kind {
	case yaml.MappingNode:
		return y.mapping(n, obj)
	case yaml.SequenceNode:
		for i := len(n.Content) - 1; i >= 0; i-- {
			if err := y.merge(n.Content[i], obj); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("line %d: merge value must be a mapping", n.Line)
}

func (y yamlDecoder) key(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	v, err := y.node(n)
	if err != nil {
		return "", err
	}
	return doc.Flat(pretty.Document(v)), nil
}

func scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return BoolOf(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return IntOf(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return FloatOf(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return FloatOf(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return Value{}, err
		}
		return TimeOf(t), nil
	}
	return StringOf(n.Value), nil
}
