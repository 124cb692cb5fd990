// Package layout computes 2-D vertex positions for drawing.
//
// Spring implements the Fruchterman-Reingold force-directed algorithm:
// connected vertices attract, every pair of vertices repels, and a cooling
// temperature bounds how far a vertex may move per iteration.
package layout

import (
	"math"
	"math/rand/v2"

	"graphpaint/internal/domain"
)

const (
	DefaultIterations = 50
	DefaultThreshold  = 1e-4
	DefaultScale      = 1.0

	minDistance     = 0.01
	minDisplacement = 0.01
)

// Options controls the spring layout
type Options struct {
	Iterations int
	Threshold  float64
	Scale      float64
	// Seed for the initial positions. Zero derives a seed from the graph.
	Seed uint64
}

// DefaultOptions returns the standard layout options
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Threshold:  DefaultThreshold,
		Scale:      DefaultScale,
	}
}

func (o Options) withDefaults() Options {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return o
}

// Spring lays out g with the Fruchterman-Reingold algorithm. The result is
// centered on the origin and scaled so the largest absolute coordinate
// equals opts.Scale.
func Spring(g *domain.Graph, opts Options) domain.Layout {
	opts = opts.withDefaults()
	vertices := g.Vertices()
	n := len(vertices)

	layout := make(domain.Layout, n)
	switch n {
	case 0:
		return layout
	case 1:
		layout[vertices[0]] = domain.Position{}
		return layout
	}

	seed := opts.Seed
	if seed == 0 {
		seed = SeedFor(g)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	index := make(map[string]int, n)
	for i, id := range vertices {
		index[id] = i
	}
	adjacent := make([][]bool, n)
	for i := range adjacent {
		adjacent[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		a, b := index[e.From], index[e.To]
		adjacent[a][b] = true
		adjacent[b][a] = true
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range vertices {
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}

	k := math.Sqrt(1.0 / float64(n))
	temperature := 0.1 * math.Max(spread(xs), spread(ys))
	cooling := temperature / float64(opts.Iterations+1)

	dx := make([]float64, n)
	dy := make([]float64, n)
	for iter := 0; iter < opts.Iterations; iter++ {
		for i := 0; i < n; i++ {
			var fx, fy float64
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				ddx := xs[i] - xs[j]
				ddy := ys[i] - ys[j]
				dist := math.Max(math.Hypot(ddx, ddy), minDistance)

				// repulsion k^2/d, attraction d^2/k along edges
				force := k * k / (dist * dist)
				if adjacent[i][j] {
					force -= dist / k
				}
				fx += ddx * force
				fy += ddy * force
			}

			length := math.Hypot(fx, fy)
			if length < minDisplacement {
				length = 0.1
			}
			dx[i] = fx * temperature / length
			dy[i] = fy * temperature / length
		}

		var moved float64
		for i := 0; i < n; i++ {
			xs[i] += dx[i]
			ys[i] += dy[i]
			moved += dx[i]*dx[i] + dy[i]*dy[i]
		}
		temperature -= cooling

		if math.Sqrt(moved)/float64(n) < opts.Threshold {
			break
		}
	}

	rescale(xs, ys, opts.Scale)
	for i, id := range vertices {
		layout[id] = domain.Position{X: xs[i], Y: ys[i]}
	}
	return layout
}

func spread(v []float64) float64 {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return hi - lo
}

// rescale centers the points on the origin and scales them so the largest
// absolute coordinate equals scale.
func rescale(xs, ys []float64, scale float64) {
	n := float64(len(xs))
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= n
	my /= n

	var lim float64
	for i := range xs {
		xs[i] -= mx
		ys[i] -= my
		lim = math.Max(lim, math.Max(math.Abs(xs[i]), math.Abs(ys[i])))
	}
	if lim == 0 {
		return
	}
	for i := range xs {
		xs[i] *= scale / lim
		ys[i] *= scale / lim
	}
}
