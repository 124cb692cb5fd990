package domain

// ColorAssignment assigns a color value to a vertex
type ColorAssignment struct {
	Vertex string `json:"vertex" yaml:"vertex"`
	Color  int    `json:"color" yaml:"color"`
}

// Coloring is an ordered list of color assignments. Duplicates are allowed;
// when applied, the last assignment for a vertex wins.
type Coloring []ColorAssignment
