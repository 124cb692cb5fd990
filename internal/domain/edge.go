package domain

import "fmt"

// Edge is an undirected connection between two vertices.
// From and To are normalized so that From <= To.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// NewEdge creates a normalized edge
func NewEdge(a, b string) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{From: a, To: b}
}

// ID returns a deterministic identifier for the edge
func (e Edge) ID() string {
	return fmt.Sprintf("%s--%s", e.From, e.To)
}

// IsLoop reports whether the edge connects a vertex to itself
func (e Edge) IsLoop() bool {
	return e.From == e.To
}
