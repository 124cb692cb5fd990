package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/mazznoer/colorgrad"
)

// Colormap maps values in [0, 1] to colors along a matplotlib color scale
type Colormap struct {
	Name string
	grad colorgrad.Gradient
}

var colormaps = map[string]*Colormap{
	"viridis": {Name: "viridis", grad: colorgrad.Viridis()},
	"plasma":  {Name: "plasma", grad: colorgrad.Plasma()},
}

// Viridis is the default, perceptually uniform colormap
var Viridis = colormaps["viridis"]

// LookupColormap returns the colormap with the given name
func LookupColormap(name string) (*Colormap, bool) {
	c, ok := colormaps[name]
	return c, ok
}

// ColormapNames lists the available colormaps
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the color at position t. t is clamped to [0, 1].
func (c *Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := c.grad.At(t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Normalize maps values linearly onto [0, 1] using their min and max.
// When all values are equal every value maps to 0.
func Normalize(values []int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		return out
	}

	span := float64(hi) - float64(lo)
	for i, v := range values {
		out[i] = (float64(v) - float64(lo)) / span
	}
	return out
}

// Hex formats a color as #rrggbb
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
