package domain

import "math"

// Position is a point in layout space
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Layout maps vertex IDs to their positions
type Layout map[string]Position

// Bounds returns the bounding box of all positions.
// An empty layout has a zero bounding box.
func (l Layout) Bounds() (lo, hi Position) {
	first := true
	for _, p := range l {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
