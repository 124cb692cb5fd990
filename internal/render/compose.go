package render

import "graphpaint/internal/domain"

// Compose derives the scene for a colored graph and tints every node by
// mapping its color value through cmap.
func Compose(g *domain.Graph, layout domain.Layout, cmap *Colormap) *domain.Scene {
	scene := domain.DeriveScene(g, layout)
	Paint(scene, cmap)
	return scene
}

// Paint sets the fill of every node in the scene from its color value
func Paint(scene *domain.Scene, cmap *Colormap) {
	if cmap == nil {
		cmap = Viridis
	}
	for i, t := range Normalize(scene.Colors()) {
		scene.Nodes[i].Fill = Hex(cmap.At(t))
	}
}
