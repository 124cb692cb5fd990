package codec

import (
	"fmt"
	"strconv"
	"strings"

	"graphpaint/internal/domain"
)

// ParseColoring parses a coloring argument such as "v0-1,v1-2" or "[v0-1,v1-2]".
//
// Brackets are removed wherever they occur. Each comma-separated token is cut
// at its first '-' into a vertex and a base-10 color, so "v0--3" assigns -3
// to v0. Whitespace around the color is ignored but the vertex is kept
// verbatim, so " v1" in "v0-1, v1-2" names a vertex distinct from "v1".
// Assignments keep their input order. A blank argument yields an empty
// coloring.
func ParseColoring(arg string) (domain.Coloring, error) {
	cleared := strings.NewReplacer("[", "", "]", "").Replace(arg)
	if strings.TrimSpace(cleared) == "" {
		return domain.Coloring{}, nil
	}

	tokens := strings.Split(cleared, ",")
	coloring := make(domain.Coloring, 0, len(tokens))
	for _, token := range tokens {
		vertex, color, ok := strings.Cut(token, "-")
		if !ok {
			return nil, fmt.Errorf("%w: token %q has no '-' separator", ErrInvalidColoring, token)
		}

		if vertex == "" {
			return nil, fmt.Errorf("%w: token %q has no vertex", ErrInvalidColoring, token)
		}

		c, err := strconv.Atoi(strings.TrimSpace(color))
		if err != nil {
			return nil, fmt.Errorf("%w: token %q: color %q is not an integer", ErrInvalidColoring, token, color)
		}

		coloring = append(coloring, domain.ColorAssignment{Vertex: vertex, Color: c})
	}

	return coloring, nil
}

// FormatColoring renders a coloring back into its argument form
func FormatColoring(c domain.Coloring) string {
	parts := make([]string, len(c))
	for i, a := range c {
		parts[i] = fmt.Sprintf("%s-%d", a.Vertex, a.Color)
	}
	return strings.Join(parts, ",")
}
