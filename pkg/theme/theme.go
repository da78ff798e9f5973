// Package theme loads optional TOML theme files that override the diagram
// palette and spacing constants. An absent file means defaults; a present
// file only overrides the keys it sets.
package theme

import (
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"netsketch/pkg/diagram"
	"netsketch/pkg/errors"
)

// file mirrors the TOML document structure. Pointer fields distinguish
// "not set" from zero values.
type file struct {
	Palette paletteTable `toml:"palette"`
	Layout  layoutTable  `toml:"layout"`
}

type paletteTable struct {
	Input      *string `toml:"input"`
	Projection *string `toml:"projection"`
	Recur      *string `toml:"recur"`
	RecurFill  *string `toml:"recur_fill"`
	Residual   *string `toml:"residual"`
	Head       *string `toml:"head"`
	Output     *string `toml:"output"`
	Arrow      *string `toml:"arrow"`
	Concat     *string `toml:"concat"`
	Text       *string `toml:"text"`
	Gray       *string `toml:"gray"`
	Edge       *string `toml:"edge"`
}

type layoutTable struct {
	BlockW        *float64 `toml:"block_w"`
	BlockH        *float64 `toml:"block_h"`
	EdgeGap       *float64 `toml:"edge_gap"`
	LoopClearance *float64 `toml:"loop_clearance"`
	InjectDrop    *float64 `toml:"inject_drop"`
	BranchOffset  *float64 `toml:"branch_offset"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Load reads a theme file and applies it on top of [diagram.DefaultConfig].
// An empty path returns the defaults unchanged.
func Load(path string) (diagram.Config, error) {
	cfg := diagram.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}

	if err := apply(&cfg, f); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func apply(cfg *diagram.Config, f file) error {
	colors := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"input", f.Palette.Input, &cfg.Palette.Input},
		{"projection", f.Palette.Projection, &cfg.Palette.Projection},
		{"recur", f.Palette.Recur, &cfg.Palette.Recur},
		{"recur_fill", f.Palette.RecurFill, &cfg.Palette.RecurFill},
		{"residual", f.Palette.Residual, &cfg.Palette.Residual},
		{"head", f.Palette.Head, &cfg.Palette.Head},
		{"output", f.Palette.Output, &cfg.Palette.Output},
		{"arrow", f.Palette.Arrow, &cfg.Palette.Arrow},
		{"concat", f.Palette.Concat, &cfg.Palette.Concat},
		{"text", f.Palette.Text, &cfg.Palette.Text},
		{"gray", f.Palette.Gray, &cfg.Palette.Gray},
		{"edge", f.Palette.Edge, &cfg.Palette.Edge},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		if !hexColor.MatchString(*c.src) {
			return errors.New(errors.ErrCodeInvalidTheme, "palette.%s: %q is not a #RRGGBB color", c.name, *c.src)
		}
		*c.dst = *c.src
	}

	lengths := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"block_w", f.Layout.BlockW, &cfg.BlockW},
		{"block_h", f.Layout.BlockH, &cfg.BlockH},
		{"edge_gap", f.Layout.EdgeGap, &cfg.EdgeGap},
		{"loop_clearance", f.Layout.LoopClearance, &cfg.LoopClearance},
		{"inject_drop", f.Layout.InjectDrop, &cfg.InjectDrop},
		{"branch_offset", f.Layout.BranchOffset, &cfg.BranchOffset},
	}
	for _, l := range lengths {
		if l.src == nil {
			continue
		}
		if *l.src <= 0 {
			return errors.New(errors.ErrCodeInvalidTheme, "layout.%s: must be positive, got %g", l.name, *l.src)
		}
		*l.dst = *l.src
	}
	return nil
}
