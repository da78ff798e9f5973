// Package export writes composed diagrams to files.
//
// The output format is chosen by the path extension: .svg, .pdf, .png for
// the hand-laid-out scene (PDF/PNG converted via rsvg-convert), .dot or .gv
// for the Graphviz node-link form of the same architecture. Parent
// directories are created as needed and an existing file at the target path
// is overwritten (last-writer-wins, no locking).
package export

import (
	"os"
	"path/filepath"
	"strings"

	"netsketch/pkg/diagram"
	"netsketch/pkg/errors"
	"netsketch/pkg/render"
	"netsketch/pkg/render/dot"
	"netsketch/pkg/render/svg"
)

// DefaultDir is where diagrams land when no output path is given.
const DefaultDir = "out/diagrams"

// pngScale is the raster resolution multiplier for PNG output.
const pngScale = 2.0

// Option configures a write.
type Option func(*writer)

// WithNodeLink renders the schematic Graphviz node-link view instead of the
// hand-laid-out scene for .svg, .pdf, and .png outputs.
func WithNodeLink() Option {
	return func(w *writer) { w.nodeLink = true }
}

type writer struct {
	nodeLink bool
}

// DTNet composes and writes the DTNet diagram. An empty path defaults to
// DefaultDir with the variant's standard file name. Returns the written path.
func DTNet(path string, opts ...Option) (string, error) {
	return Write(diagram.DefaultConfig(), diagram.DTNet(), path, opts...)
}

// ITNet composes and writes the ITNet diagram. An empty path defaults to
// DefaultDir with the variant's standard file name. Returns the written path.
func ITNet(path string, opts ...Option) (string, error) {
	return Write(diagram.DefaultConfig(), diagram.ITNet(), path, opts...)
}

// Write composes the variant described by p under cfg and serializes it to
// path. Any failure aborts this diagram only; callers generating several
// variants decide whether to continue with the rest.
func Write(cfg diagram.Config, p diagram.Params, path string, opts ...Option) (string, error) {
	w := writer{}
	for _, opt := range opts {
		opt(&w)
	}

	if path == "" {
		path = filepath.Join(DefaultDir, p.DefaultFile)
	}

	data, err := w.renderTo(cfg, p, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return path, nil
}

// renderTo produces the output bytes for one extension.
func (w writer) renderTo(cfg diagram.Config, p diagram.Params, ext string) ([]byte, error) {
	switch ext {
	case ".dot", ".gv":
		return []byte(dot.ToDOT(cfg, p)), nil
	case ".svg":
		return w.renderSVG(cfg, p)
	case ".pdf":
		data, err := w.renderSVG(cfg, p)
		if err != nil {
			return nil, err
		}
		out, err := render.ToPDF(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConvert, err, "convert %s to PDF", p.Title)
		}
		return out, nil
	case ".png":
		data, err := w.renderSVG(cfg, p)
		if err != nil {
			return nil, err
		}
		out, err := render.ToPNG(data, pngScale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConvert, err, "convert %s to PNG", p.Title)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output extension %q (use .svg, .pdf, .png, .dot, or .gv)", ext)
	}
}

// renderSVG returns SVG for either the laid-out scene or the node-link view.
func (w writer) renderSVG(cfg diagram.Config, p diagram.Params) ([]byte, error) {
	if w.nodeLink {
		data, err := dot.RenderSVG(dot.ToDOT(cfg, p))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s node-link view", p.Title)
		}
		return data, nil
	}

	d := diagram.Compose(cfg, p)
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "compose %s", p.Title)
	}
	return svg.Render(d), nil
}
