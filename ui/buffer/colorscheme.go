package buffer

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrIncompleteColorscheme is returned when a color scheme does not supply a
// color for every key in SchemeKeys().
var ErrIncompleteColorscheme = fmt.Errorf("incomplete color scheme")

// RGB is a color as three components from 0 to 255.
type RGB [3]float64

// Color converts the RGB to a true color, rounding and clamping each
// component.
func (c RGB) Color() tcell.Color {
	var v [3]int32
	for i := range c {
		v[i] = int32(Clamp(int(math.Round(c[i])), 0, 255))
	}
	return tcell.NewRGBColor(v[0], v[1], v[2])
}

// DefaultColors is the scheme used until one is loaded from preferences.
var DefaultColors = map[string]RGB{
	"plain":      {220, 220, 220},
	"numbers":    {181, 206, 168},
	"functions":  {220, 220, 170},
	"keywords":   {197, 134, 192},
	"types":      {86, 156, 214},
	"references": {78, 201, 176},
	"strings":    {206, 145, 120},
	"comments":   {106, 153, 85},
}

type Colorscheme map[Category]tcell.Style

// NewColorscheme builds a Colorscheme from scheme key names to colors. Every
// key must be present; a missing key is an error naming each missing key.
func NewColorscheme(colors map[string]RGB) (*Colorscheme, error) {
	var missing []string
	for _, key := range SchemeKeys() {
		if _, ok := colors[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing %s: %w", strings.Join(missing, ", "), ErrIncompleteColorscheme)
	}

	scheme := make(Colorscheme, len(Categories))
	for _, c := range Categories {
		scheme[c] = tcell.StyleDefault.Foreground(colors[c.SchemeKey()].Color())
	}
	return &scheme, nil
}

// DefaultColorscheme returns the Colorscheme of DefaultColors.
func DefaultColorscheme() *Colorscheme {
	scheme, err := NewColorscheme(DefaultColors)
	if err != nil {
		panic(err)
	}
	return scheme
}

// Gets the tcell.Style from the Colorscheme map for the given Category.
// If the Category cannot be found in the map, either the `Plain` Category
// is used, or `tcell.StyleDefault` is returned if Plain is not assigned.
func (c *Colorscheme) GetStyle(cat Category) tcell.Style {
	if c != nil {
		if val, ok := (*c)[cat]; ok {
			return val
		} else if cat != Plain {
			if val, ok := (*c)[Plain]; ok {
				return val
			}
		}
	}

	return tcell.StyleDefault
}

// SetColorscheme replaces the whole active scheme and repaints every line
// already classified. An incomplete scheme is refused: the previous scheme
// stays active and nothing is repainted.
func (h *Highlighter) SetColorscheme(colors map[string]RGB) error {
	scheme, err := NewColorscheme(colors)
	if err != nil {
		return err
	}

	h.Colorscheme = scheme
	h.Recolor()
	return nil
}
