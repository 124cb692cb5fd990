// Package codec converts between graphpaint's domain types and their textual
// forms: the edge-list input format, the coloring argument, and the scene
// export formats.
package codec

import (
	"errors"
	"io"

	"graphpaint/internal/domain"
)

var (
	// ErrInvalidColoring is returned when a coloring argument token is malformed
	ErrInvalidColoring = errors.New("invalid coloring")
	// ErrMalformedEdge is returned when an edge line does not name exactly two vertices
	ErrMalformedEdge = errors.New("malformed edge")
)

// Importer reads a graph from a textual format
type Importer interface {
	Parse(r io.Reader) (*domain.Graph, error)
	Format() string
}

// Exporter writes a rendered scene to a textual format
type Exporter interface {
	Export(scene *domain.Scene, w io.Writer) error
	Format() string
}
