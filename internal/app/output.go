package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"graphpaint/internal/codec"
	"graphpaint/internal/domain"
)

// ErrUnknownFormat is returned when the output file extension has no exporter
var ErrUnknownFormat = errors.New("unknown output format")

func (p *painter) exporterFor(path string) (codec.Exporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return p.svg, nil
	case ".dot", ".gv":
		return codec.NewDOTCodec(), nil
	case ".json":
		return codec.NewJSONCodec(), nil
	case ".yaml", ".yml":
		return codec.NewYAMLCodec(), nil
	case ".lp":
		return codec.NewEdgeListCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// save renders the scene and writes it to path in the format its extension names
func (p *painter) save(path string) error {
	exp, err := p.exporterFor(path)
	if err != nil {
		return err
	}

	scene, err := p.scene()
	if err != nil {
		return err
	}

	if err := writeOutput(path, exp, scene); err != nil {
		return err
	}

	p.log.Info("Wrote drawing",
		zap.String("path", path),
		zap.String("format", exp.Format()),
		zap.Int("vertices", len(scene.Nodes)),
	)
	return nil
}

// writeOutput exports scene to path. A failed write leaves no file behind.
func writeOutput(path string, exp codec.Exporter, scene *domain.Scene) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := exp.Export(scene, f); err != nil {
		return fmt.Errorf("export %s: %w", exp.Format(), err)
	}
	return nil
}
