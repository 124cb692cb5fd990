package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"graphpaint/internal/domain"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// dotQuoter escapes text for a double-quoted DOT ID, which the DOT writer
// emits without escaping
var dotQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotScale converts layout units into Graphviz points for the pos attribute
const dotScale = 4.0

// DOTCodec exports scenes as Graphviz DOT. Positions are pinned so that
// `neato -n` reproduces the spring layout.
type DOTCodec struct{}

// NewDOTCodec creates a new DOT codec
func NewDOTCodec() *DOTCodec {
	return &DOTCodec{}
}

// Format returns the codec format identifier
func (c *DOTCodec) Format() string {
	return "dot"
}

// Export exports a scene to DOT
func (c *DOTCodec) Export(scene *domain.Scene, w io.Writer) error {
	g := graph.New(graph.StringHash)

	for _, n := range scene.Nodes {
		attrs := []func(*graph.VertexProperties){
			graph.VertexAttribute("label", dotQuoter.Replace(n.Label)),
			graph.VertexAttribute("color_value", strconv.Itoa(n.Color)),
			graph.VertexAttribute("pos", fmt.Sprintf("%.4f,%.4f!", n.Position.X*dotScale, n.Position.Y*dotScale)),
		}
		if n.Fill != "" {
			attrs = append(attrs,
				graph.VertexAttribute("style", "filled"),
				graph.VertexAttribute("fillcolor", n.Fill))
		}
		if err := g.AddVertex(dotQuoter.Replace(n.ID), attrs...); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return fmt.Errorf("failed to add vertex %q: %w", n.ID, err)
		}
	}

	for _, e := range scene.Edges {
		if err := g.AddEdge(dotQuoter.Replace(e.From), dotQuoter.Replace(e.To)); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return fmt.Errorf("failed to add edge %s: %w", e.ID, err)
		}
	}

	if err := draw.DOT(g, w,
		draw.GraphAttribute("layout", "neato"),
		draw.GraphAttribute("overlap", "false")); err != nil {
		return fmt.Errorf("failed to encode DOT: %w", err)
	}

	return nil
}
