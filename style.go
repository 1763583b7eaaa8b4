package pretty

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/pretty/doc"
)

// Style controls the layout of rendered output.
type Style struct {
	// Width is the target line width in columns.
	Width int `json:"width" yaml:"width"`
	// Ribbon is the fraction of Width that text other than indentation may
	// take on one line, in (0, 1].
	Ribbon float64 `json:"ribbon" yaml:"ribbon"`
}

// DefaultStyle is 70 columns with a full ribbon.
var DefaultStyle = Style{Width: doc.DefaultWidth, Ribbon: doc.DefaultRibbon}

// Validate reports whether s can be used for rendering.
func (s Style) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidStyle, s.Width)
	}
	if s.Ribbon <= 0 || s.Ribbon > 1 {
		return fmt.Errorf("%w: ribbon %g must be in (0, 1]", ErrInvalidStyle, s.Ribbon)
	}
	return nil
}

// DecodeStyle reads a style in format f from r. Fields missing from the
// input keep their [DefaultStyle] values.
func DecodeStyle(r io.Reader, f Format) (Style, error) {
	s := DefaultStyle
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return Style{}, fmt.Errorf("decode json style: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
			return Style{}, fmt.Errorf("decode yaml style: %w", err)
		}
	default:
		return Style{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// LoadStyle reads a style file, choosing the format from its extension.
func LoadStyle(path string) (Style, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Style{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Style{}, err
	}
	defer file.Close()
	return DecodeStyle(file, f)
}
