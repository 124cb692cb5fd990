// Package app wires the graphpaint pipeline together: parse the coloring,
// read the edges file, color, lay out, render, and display or save.
package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"graphpaint/internal/codec"
	"graphpaint/internal/config"
	"graphpaint/internal/domain"
	"graphpaint/internal/handler"
	"graphpaint/internal/layout"
	"graphpaint/internal/loader"
	"graphpaint/internal/logger"
	"graphpaint/internal/render"
	"graphpaint/internal/viewer"
)

// Usage is printed when the command is called with the wrong arguments
const Usage = "Usage: graphpaint [flags] <edges-file> 'v0-1,v1-2,...'"

type flags struct {
	configPath string
	output     string
	watch      bool
	addr       string
	noBrowser  bool
	seed       uint64
	colormap   string
	logLevel   string
	set        map[string]bool
}

func parseFlags(args []string, stdout io.Writer) (*flags, *flag.FlagSet, error) {
	f := &flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("graphpaint", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, Usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configPath, "config", "", "config file path (default: search standard locations)")
	fs.StringVar(&f.output, "o", "", "write the drawing to `file` (.svg, .dot, .json, .yaml, .lp) instead of opening the viewer")
	fs.BoolVar(&f.watch, "watch", false, "redraw when the edges file changes")
	fs.StringVar(&f.addr, "addr", "", "viewer listen address (default "+config.DefaultAddr+")")
	fs.BoolVar(&f.noBrowser, "no-browser", false, "do not open the system browser")
	fs.Uint64Var(&f.seed, "seed", 0, "layout seed (0 derives one from the graph)")
	fs.StringVar(&f.colormap, "colormap", "", "node color scale: "+strings.Join(render.ColormapNames(), ", ")+" (default "+config.DefaultColormap+")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs, nil
}

// Run executes graphpaint with the given command line arguments (without
// the program name). A wrong number of positional arguments prints the
// usage to stdout and returns nil without doing anything else.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, fs, err := parseFlags(args, stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(stdout, Usage)
		return nil
	}
	edgesPath, coloringArg := fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	log, err := logger.NewWithWriter(cfg.Log.Level, stderr)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Debug("Configuration", zap.String("summary", cfg.Summary()))

	coloring, err := codec.ParseColoring(coloringArg)
	if err != nil {
		return fmt.Errorf("parse coloring: %w", err)
	}
	log.Debug("Parsed coloring", zap.String("coloring", codec.FormatColoring(coloring)), zap.Int("assignments", len(coloring)))

	p, err := newPainter(cfg, edgesPath, coloring, log)
	if err != nil {
		return err
	}

	if f.output != "" {
		if f.watch {
			log.Warn("-watch has no effect with -o")
		}
		return p.save(f.output)
	}

	drawing, err := p.draw()
	if err != nil {
		return err
	}

	opts := viewer.Options{
		Addr:       cfg.Viewer.Addr,
		Title:      filepath.Base(edgesPath),
		CloseGrace: cfg.Viewer.CloseGrace.Duration(),
		Log:        log,
	}
	if cfg.Viewer.OpenBrowser {
		opts.Open = viewer.OpenBrowser
	}
	if f.watch {
		opts.WatchPath = edgesPath
		opts.Rerender = p.draw
	}

	return viewer.Show(ctx, opts, drawing)
}

func loadConfig(f *flags) (*config.Config, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if f.configPath != "" {
		cfg, path, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return nil, err
	}

	if f.set["addr"] {
		cfg.Viewer.Addr = f.addr
	}
	if f.set["no-browser"] {
		cfg.Viewer.OpenBrowser = !f.noBrowser
	}
	if f.set["seed"] {
		cfg.Layout.Seed = f.seed
	}
	if f.set["colormap"] {
		cfg.Render.Colormap = f.colormap
	}
	if f.set["log-level"] {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// painter turns the edges file and coloring into drawings
type painter struct {
	edgesPath string
	coloring  domain.Coloring
	layout    layout.Options
	cmap      *render.Colormap
	svg       *render.SVGRenderer
	log       *zap.Logger
}

func newPainter(cfg *config.Config, edgesPath string, coloring domain.Coloring, log *zap.Logger) (*painter, error) {
	cmap, ok := render.LookupColormap(cfg.Render.Colormap)
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q, want one of %s", cfg.Render.Colormap, strings.Join(render.ColormapNames(), ", "))
	}

	return &painter{
		edgesPath: edgesPath,
		coloring:  coloring,
		layout: layout.Options{
			Iterations: cfg.Layout.Iterations,
			Threshold:  cfg.Layout.Threshold,
			Seed:       cfg.Layout.Seed,
		},
		cmap: cmap,
		svg: render.NewSVGRenderer(render.SVGOptions{
			Width:    cfg.Render.Width,
			Height:   cfg.Render.Height,
			NodeSize: cfg.Render.NodeSize,
			FontSize: cfg.Render.FontSize,
			Title:    filepath.Base(edgesPath),
		}),
		log: log,
	}, nil
}

// scene reads the edges file, applies the coloring and lays the graph out
func (p *painter) scene() (*domain.Scene, error) {
	g, err := loader.ReadGraphFile(p.edgesPath)
	if err != nil {
		return nil, err
	}

	g.ApplyColoring(p.coloring)
	for _, a := range p.coloring {
		if !g.HasVertex(a.Vertex) {
			p.log.Debug("Ignoring color for unknown vertex", zap.String("vertex", a.Vertex))
		}
	}

	positions := layout.Spring(g, p.layout)
	p.log.Debug("Laid out graph",
		zap.Int("vertices", g.Order()),
		zap.Int("edges", len(g.Edges())),
	)

	return render.Compose(g, positions, p.cmap), nil
}

// draw renders the current state of the edges file as SVG
func (p *painter) draw() (handler.Drawing, error) {
	scene, err := p.scene()
	if err != nil {
		return handler.Drawing{}, err
	}

	var buf bytes.Buffer
	if err := p.svg.Export(scene, &buf); err != nil {
		return handler.Drawing{}, fmt.Errorf("render svg: %w", err)
	}

	return handler.Drawing{Scene: scene, SVG: buf.Bytes()}, nil
}
