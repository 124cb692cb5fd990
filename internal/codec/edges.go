package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"graphpaint/internal/domain"
)

// EdgeListCodec reads graphs written as one "edge(A, B)." fact per line.
// Lines that do not start with "edge" are ignored.
type EdgeListCodec struct{}

// NewEdgeListCodec creates a new edge list codec
func NewEdgeListCodec() *EdgeListCodec {
	return &EdgeListCodec{}
}

// Format returns the codec format identifier
func (c *EdgeListCodec) Format() string {
	return "edges"
}

// Parse builds an undirected graph from edge facts
func (c *EdgeListCodec) Parse(r io.Reader) (*domain.Graph, error) {
	g := domain.NewGraph()

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read edges: %w", readErr)
		}

		if line != "" {
			lineNo++
			if err := addEdgeLine(g, line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}

		if readErr != nil {
			break
		}
	}

	return g, nil
}

// addEdgeLine adds the edge named by line, ignoring lines that are not edge facts
func addEdgeLine(g *domain.Graph, line string) error {
	if !strings.HasPrefix(line, "edge") {
		return nil
	}
	from, to, err := parseEdgeLine(line)
	if err != nil {
		return err
	}
	return g.AddEdge(from, to)
}

func parseEdgeLine(line string) (string, string, error) {
	body := strings.Trim(strings.TrimSpace(line), ".")
	body = strings.ReplaceAll(body, "edge(", "")
	body = strings.ReplaceAll(body, ")", "")

	parts := strings.Split(body, ", ")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q names %d vertices, want 2", ErrMalformedEdge, line, len(parts))
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// Export writes the edges of a scene back as edge facts
func (c *EdgeListCodec) Export(scene *domain.Scene, w io.Writer) error {
	for _, e := range scene.Edges {
		if _, err := fmt.Fprintf(w, "edge(%s, %s).\n", e.From, e.To); err != nil {
			return fmt.Errorf("failed to write edge: %w", err)
		}
	}
	return nil
}
