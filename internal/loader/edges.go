package loader

import (
	"fmt"
	"os"

	"graphpaint/internal/codec"
	"graphpaint/internal/domain"
)

// ReadGraphFile reads an edge list file into an undirected graph.
// The file is held open only for the duration of the read.
func ReadGraphFile(path string) (*domain.Graph, error) {
	return ReadFile(path, codec.NewEdgeListCodec())
}

// ReadFile reads path into a graph using importer
func ReadFile(path string, importer codec.Importer) (*domain.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s file: %w", importer.Format(), err)
	}
	defer f.Close()

	g, err := importer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return g, nil
}
