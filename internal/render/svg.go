package render

import (
	"fmt"
	"html"
	"io"
	"math"

	"graphpaint/internal/domain"

	svg "github.com/ajstarks/svgo"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultNodeSize = 500
	DefaultFontSize = 12

	// screen pixels per typographic point at 100 dpi
	pixelsPerPoint = 100.0 / 72.0
)

// SVGOptions controls the drawing
type SVGOptions struct {
	Width    int
	Height   int
	NodeSize float64 // marker area in square points
	FontSize int
	Title    string
}

// DefaultSVGOptions returns the standard drawing options
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		NodeSize: DefaultNodeSize,
		FontSize: DefaultFontSize,
	}
}

// NodeRadius converts a marker area in square points to a radius in pixels
func NodeRadius(nodeSize float64) int {
	r := int(math.Round(math.Sqrt(nodeSize) / 2 * pixelsPerPoint))
	return max(r, 1)
}

// SVGRenderer draws scenes as SVG documents
type SVGRenderer struct {
	opts SVGOptions
}

// NewSVGRenderer creates a renderer; zero option fields take defaults
func NewSVGRenderer(opts SVGOptions) *SVGRenderer {
	def := DefaultSVGOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.NodeSize <= 0 {
		opts.NodeSize = def.NodeSize
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	return &SVGRenderer{opts: opts}
}

// Format returns the codec format identifier
func (r *SVGRenderer) Format() string {
	return "svg"
}

// Export draws the scene: edges first, then markers, then labels
func (r *SVGRenderer) Export(scene *domain.Scene, w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	radius := NodeRadius(r.opts.NodeSize)
	project := r.projection(scene, radius)

	canvas.Start(r.opts.Width, r.opts.Height)
	if r.opts.Title != "" {
		canvas.Title(r.opts.Title)
	}
	canvas.Rect(0, 0, r.opts.Width, r.opts.Height, "fill:white")

	canvas.Gstyle("stroke:black;stroke-width:1;fill:none")
	for _, e := range scene.Edges {
		x1, y1 := project(e.A)
		if e.From == e.To {
			canvas.Circle(x1, y1-radius, radius, attr("data-edge", e.ID))
			continue
		}
		x2, y2 := project(e.B)
		canvas.Line(x1, y1, x2, y2, attr("data-edge", e.ID))
	}
	canvas.Gend()

	canvas.Gstyle("stroke:none")
	for _, n := range scene.Nodes {
		x, y := project(n.Position)
		fill := n.Fill
		if fill == "" {
			fill = Hex(Viridis.At(0))
		}
		canvas.Circle(x, y, radius, "fill:"+fill, attr("data-node", n.ID), attr("data-color", fmt.Sprint(n.Color)))
	}
	canvas.Gend()

	canvas.Gstyle(fmt.Sprintf("font-family:sans-serif;font-size:%dpx;text-anchor:middle;dominant-baseline:central;fill:black", r.opts.FontSize))
	for _, n := range scene.Nodes {
		x, y := project(n.Position)
		canvas.Text(x, y, n.Label)
	}
	canvas.Gend()

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("failed to write SVG: %w", ew.err)
	}
	return nil
}

// projection maps layout coordinates onto the canvas, keeping a margin of
// one marker around the drawing and flipping the y axis.
func (r *SVGRenderer) projection(scene *domain.Scene, radius int) func(domain.Position) (int, int) {
	layout := make(domain.Layout, len(scene.Nodes))
	for _, n := range scene.Nodes {
		layout[n.ID] = n.Position
	}
	lo, hi := layout.Bounds()

	margin := float64(2*radius + r.opts.FontSize)
	w := float64(r.opts.Width) - 2*margin
	h := float64(r.opts.Height) - 2*margin
	spanX := hi.X - lo.X
	spanY := hi.Y - lo.Y

	return func(p domain.Position) (int, int) {
		x := float64(r.opts.Width) / 2
		y := float64(r.opts.Height) / 2
		if spanX > 0 {
			x = margin + (p.X-lo.X)/spanX*w
		}
		if spanY > 0 {
			y = margin + (hi.Y-p.Y)/spanY*h
		}
		return int(math.Round(x)), int(math.Round(y))
	}
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

// errWriter remembers the first write error, since svgo does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
