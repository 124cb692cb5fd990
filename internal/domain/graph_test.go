package domain

import (
	"reflect"
	"testing"
)

func TestNewGraph(t *testing.T) {
	t.Run("creates empty graph", func(t *testing.T) {
		g := NewGraph()

		if g.Order() != 0 {
			t.Errorf("expected 0 vertices, got %d", g.Order())
		}
		if len(g.Edges()) != 0 {
			t.Errorf("expected 0 edges, got %d", len(g.Edges()))
		}
	})
}

func TestGraphAddEdge(t *testing.T) {
	t.Run("creates both endpoints", func(t *testing.T) {
		g := NewGraph()
		if err := g.AddEdge("v0", "v1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !g.HasVertex("v0") || !g.HasVertex("v1") {
			t.Errorf("expected both endpoints in vertex set, got %v", g.Vertices())
		}
		if !g.HasEdge("v0", "v1") {
			t.Error("expected edge v0--v1")
		}
	})

	t.Run("edges are undirected", func(t *testing.T) {
		g := NewGraph()
		g.AddEdge("v0", "v1")

		if !g.HasEdge("v1", "v0") {
			t.Error("expected edge to be found in reverse orientation")
		}
	})

	t.Run("repeated edge is a no-op", func(t *testing.T) {
		g := NewGraph()
		g.AddEdge("v0", "v1")
		if err := g.AddEdge("v1", "v0"); err != nil {
			t.Fatalf("unexpected error re-adding edge: %v", err)
		}
		if err := g.AddEdge("v0", "v1"); err != nil {
			t.Fatalf("unexpected error re-adding edge: %v", err)
		}

		if len(g.Edges()) != 1 {
			t.Errorf("expected 1 edge, got %d", len(g.Edges()))
		}
	})

	t.Run("self loop", func(t *testing.T) {
		g := NewGraph()
		if err := g.AddEdge("v0", "v0"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		edges := g.Edges()
		if len(edges) != 1 || !edges[0].IsLoop() {
			t.Errorf("expected a single loop edge, got %v", edges)
		}
		if g.Order() != 1 {
			t.Errorf("expected 1 vertex, got %d", g.Order())
		}
	})

	t.Run("vertices keep insertion order", func(t *testing.T) {
		g := NewGraph()
		g.AddEdge("c", "a")
		g.AddEdge("a", "b")

		want := []string{"c", "a", "b"}
		if got := g.Vertices(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestGraphEdges(t *testing.T) {
	g := NewGraph()
	g.AddEdge("v1", "v2")
	g.AddEdge("v1", "v0")

	want := []Edge{{From: "v0", To: "v1"}, {From: "v1", To: "v2"}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGraphApplyColoring(t *testing.T) {
	newGraph := func() *Graph {
		g := NewGraph()
		g.AddEdge("v0", "v1")
		g.AddEdge("v1", "v2")
		return g
	}

	t.Run("sets color on existing vertex only", func(t *testing.T) {
		g := newGraph()
		g.ApplyColoring(Coloring{{Vertex: "v0", Color: 3}})

		if c, ok := g.Color("v0"); !ok || c != 3 {
			t.Errorf("expected v0 color 3, got %d (set=%v)", c, ok)
		}
		for _, id := range []string{"v1", "v2"} {
			if _, ok := g.Color(id); ok {
				t.Errorf("expected %s to stay uncolored", id)
			}
		}
	})

	t.Run("absent vertex is ignored", func(t *testing.T) {
		g := newGraph()
		verticesBefore := g.Vertices()
		edgesBefore := g.Edges()

		g.ApplyColoring(Coloring{{Vertex: "v9", Color: 5}})

		if !reflect.DeepEqual(g.Vertices(), verticesBefore) {
			t.Errorf("vertex set changed: %v", g.Vertices())
		}
		if !reflect.DeepEqual(g.Edges(), edgesBefore) {
			t.Errorf("edge set changed: %v", g.Edges())
		}
		if _, ok := g.Color("v9"); ok {
			t.Error("expected no color for absent vertex")
		}
	})

	t.Run("last assignment wins", func(t *testing.T) {
		g := newGraph()
		g.ApplyColoring(Coloring{{Vertex: "v1", Color: 2}, {Vertex: "v1", Color: 7}})

		if c, _ := g.Color("v1"); c != 7 {
			t.Errorf("expected 7, got %d", c)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := newGraph()
		once.ApplyColoring(Coloring{{Vertex: "v2", Color: 4}})

		twice := newGraph()
		twice.ApplyColoring(Coloring{{Vertex: "v2", Color: 4}})
		twice.ApplyColoring(Coloring{{Vertex: "v2", Color: 4}})

		a, _ := once.Color("v2")
		b, _ := twice.Color("v2")
		if a != b {
			t.Errorf("expected same color, got %d and %d", a, b)
		}
	})
}

func TestGraphColorOrDefault(t *testing.T) {
	g := NewGraph()
	g.AddEdge("v0", "v1")
	g.SetColor("v0", 0)

	if got := g.ColorOrDefault("v0"); got != 0 {
		t.Errorf("expected explicit color 0, got %d", got)
	}
	if got := g.ColorOrDefault("v1"); got != DefaultColor {
		t.Errorf("expected default color %d, got %d", DefaultColor, got)
	}
}

func TestEdgeID(t *testing.T) {
	if NewEdge("b", "a").ID() != NewEdge("a", "b").ID() {
		t.Error("expected orientation-independent edge IDs")
	}
}
