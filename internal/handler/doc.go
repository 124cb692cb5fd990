// Package handler implements the HTTP surface of the graph viewer.
//
// ViewerHandler serves a single page that shows the rendered graph, the
// drawing itself as SVG, the scene behind it as JSON, and a Server-Sent
// Events stream that tells the page to reload when the drawing changes.
//
// # Routes
//
//	GET /            viewer page
//	GET /graph.svg   current drawing
//	GET /api/scene   current scene (JSON)
//	GET /events      SSE stream of viewer events
//
// Error responses return JSON with {error, details} structure.
package handler
