package layout

import (
	"sort"

	"graphpaint/internal/domain"

	"github.com/cespare/xxhash/v2"
)

// SeedFor derives a layout seed from the structure of g, so the same graph
// is laid out the same way on every run.
func SeedFor(g *domain.Graph) uint64 {
	vertices := g.Vertices()
	sort.Strings(vertices)

	d := xxhash.New()
	for _, id := range vertices {
		d.WriteString(id)
		d.WriteString("\x00")
	}
	d.WriteString("\x01")
	for _, e := range g.Edges() {
		d.WriteString(e.ID())
		d.WriteString("\x00")
	}

	seed := d.Sum64()
	if seed == 0 {
		seed = 1
	}
	return seed
}
