// Package domain defines the core types for graphpaint.
//
// # Core Types
//
// Graph is an undirected graph of string-identified vertices with a per-vertex
// color attribute. Edges are unordered pairs; adding an edge creates both of
// its endpoints, so an edge never refers to a vertex outside the vertex set.
//
// Coloring is an ordered list of vertex/color assignments as given on the
// command line. Applying it to a Graph overwrites colors in order, so the last
// assignment for a vertex wins, and assignments naming unknown vertices are
// dropped.
//
// Layout maps vertex IDs to 2-D positions produced by the spring layout.
//
// Scene is the render-ready view of a colored graph: every vertex with its
// effective color value and position, and every edge with both endpoint
// positions.
//
// # Design Principles
//
// - No I/O: parsing and rendering live in other packages
// - Deterministic iteration order (vertices in insertion order)
package domain
