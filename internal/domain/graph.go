package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
)

// DefaultColor is the color value used for vertices without an explicit color
const DefaultColor = 1

// Graph is an undirected graph with a color attribute per vertex
type Graph struct {
	g      graph.Graph[string, string]
	order  []string
	colors map[string]int
}

// NewGraph creates an empty undirected graph
func NewGraph() *Graph {
	return &Graph{
		g:      graph.New(graph.StringHash),
		order:  make([]string, 0),
		colors: make(map[string]int),
	}
}

// AddVertex adds a vertex. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	err := g.g.AddVertex(id)
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("add vertex %q: %w", id, err)
	}
	g.order = append(g.order, id)
	return nil
}

// AddEdge adds an undirected edge, creating missing endpoints.
// Adding an edge that already exists, in either orientation, is a no-op.
func (g *Graph) AddEdge(from, to string) error {
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	err := g.g.AddEdge(from, to)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("add edge %s: %w", NewEdge(from, to).ID(), err)
	}
	return nil
}

// HasVertex reports whether id is in the vertex set
func (g *Graph) HasVertex(id string) bool {
	_, err := g.g.Vertex(id)
	return err == nil
}

// HasEdge reports whether an edge between a and b exists, in either orientation
func (g *Graph) HasEdge(a, b string) bool {
	_, err := g.g.Edge(a, b)
	return err == nil
}

// Vertices returns vertex IDs in insertion order
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Order returns the number of vertices
func (g *Graph) Order() int {
	return len(g.order)
}

// Edges returns every edge once, normalized and sorted by ID
func (g *Graph) Edges() []Edge {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return nil
	}

	seen := make(map[Edge]struct{})
	edges := make([]Edge, 0)
	for from, targets := range adjacency {
		for to := range targets {
			edge := NewEdge(from, to)
			if _, ok := seen[edge]; ok {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// SetColor sets the color attribute of an existing vertex.
// It returns false, leaving the graph untouched, when the vertex is unknown.
func (g *Graph) SetColor(id string, color int) bool {
	if !g.HasVertex(id) {
		return false
	}
	g.colors[id] = color
	return true
}

// Color returns the explicit color of a vertex, if one was set
func (g *Graph) Color(id string) (int, bool) {
	c, ok := g.colors[id]
	return c, ok
}

// ColorOrDefault returns the vertex color, or DefaultColor when unset
func (g *Graph) ColorOrDefault(id string) int {
	if c, ok := g.colors[id]; ok {
		return c
	}
	return DefaultColor
}

// ApplyColoring merges a coloring into the vertex attributes.
// Assignments are applied in order and those naming vertices absent from the
// graph are ignored.
func (g *Graph) ApplyColoring(coloring Coloring) {
	for _, a := range coloring {
		g.SetColor(a.Vertex, a.Color)
	}
}
