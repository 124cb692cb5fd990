package domain

// Scene is the render-ready view of a colored, laid-out graph
type Scene struct {
	Nodes []SceneNode `json:"nodes" yaml:"nodes"`
	Edges []SceneEdge `json:"edges" yaml:"edges"`
}

// SceneNode represents a vertex in the drawing
type SceneNode struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Color    int      `json:"color" yaml:"color"`
	Explicit bool     `json:"explicit" yaml:"explicit"` // color came from the coloring
	Fill     string   `json:"fill,omitempty" yaml:"fill,omitempty"`
	Position Position `json:"position" yaml:"position"`
}

// SceneEdge represents an edge in the drawing
type SceneEdge struct {
	ID   string   `json:"id" yaml:"id"`
	From string   `json:"from" yaml:"from"`
	To   string   `json:"to" yaml:"to"`
	A    Position `json:"a" yaml:"a"`
	B    Position `json:"b" yaml:"b"`
}

// DeriveScene combines a colored graph and its layout into a Scene.
// Vertices without an explicit color get DefaultColor. Vertices missing from
// the layout are placed at the origin.
func DeriveScene(g *Graph, layout Layout) *Scene {
	vertices := g.Vertices()
	edges := g.Edges()

	scene := &Scene{
		Nodes: make([]SceneNode, 0, len(vertices)),
		Edges: make([]SceneEdge, 0, len(edges)),
	}

	for _, id := range vertices {
		_, explicit := g.Color(id)
		scene.Nodes = append(scene.Nodes, SceneNode{
			ID:       id,
			Label:    id,
			Color:    g.ColorOrDefault(id),
			Explicit: explicit,
			Position: layout[id],
		})
	}

	for _, e := range edges {
		scene.Edges = append(scene.Edges, SceneEdge{
			ID:   e.ID(),
			From: e.From,
			To:   e.To,
			A:    layout[e.From],
			B:    layout[e.To],
		})
	}

	return scene
}

// Colors returns the color value of each node, in node order
func (s *Scene) Colors() []int {
	out := make([]int, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = n.Color
	}
	return out
}

// Node looks up a node by ID
func (s *Scene) Node(id string) (SceneNode, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return SceneNode{}, false
}
