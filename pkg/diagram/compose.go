package diagram

import (
	"fmt"

	"netsketch/pkg/geom"
)

// Config collects every spacing constant the composer uses. The zero value
// is not usable; start from [DefaultConfig] and override selectively (e.g.
// via a theme file). All lengths are diagram units unless noted otherwise.
type Config struct {
	Palette Palette

	Frame  geom.Rect // drawable world bounds
	TitleY float64   // baseline of the diagram title
	MainY  float64   // y of the main left-to-right flow

	BlockW, BlockH float64 // standard pipeline block size

	InputX    float64 // anchor x per pipeline stage
	ProjX     float64
	ConcatX   float64
	ConvX     float64
	ResidualX float64
	HeadX     float64
	OutputX   float64

	ConcatR                float64 // concat marker radius
	ConvW, ConvH           float64 // conv recall block size
	ResidualW, ResidualH   float64 // residual block size
	RecurX, RecurW, RecurH float64 // recurrent bounding region

	EdgeGap        float64 // clearance between an arrow tip/tail and a border
	LoopClearance  float64 // feedback run distance below the region bottom
	BranchOffset   float64 // horizontal shift of the two rises into the concat marker
	InjectDrop     float64 // vertical drop of the injection path below MainY
	CaptionLift    float64 // region caption height above the region top
	LoopLabelLift  float64 // "Latent" label height above the feedback run
	BadgeDrop      float64 // badge label distance below the injection run
	InjectLabelX   float64 // x of the injection badge
	MaskLabelInset float64 // mask badge distance left of the output anchor

	ArrowWidth float64 // main-flow stroke width, device pixels
	LoopWidth  float64 // feedback loop stroke width, device pixels
	RouteWidth float64 // injection path stroke width, device pixels

	TitleSize   float64 // font sizes, device pixels
	CaptionSize float64
	LatentSize  float64
	BadgeSize   float64
}

// DefaultConfig reproduces the hand-tuned layout of the original diagrams.
func DefaultConfig() Config {
	return Config{
		Palette: DefaultPalette(),

		Frame:  geom.RectAt(7, 3.5, 14, 5),
		TitleY: 5.5,
		MainY:  3.5,

		BlockW: 1.4,
		BlockH: 1.0,

		InputX:    1.0,
		ProjX:     2.8,
		ConcatX:   5.0,
		ConvX:     6.5,
		ResidualX: 8.0,
		HeadX:     10.6,
		OutputX:   12.4,

		ConcatR:   0.22,
		ConvW:     1.1,
		ConvH:     0.8,
		ResidualW: 1.0,
		ResidualH: 0.8,
		RecurX:    6.8,
		RecurW:    5.2,
		RecurH:    2.2,

		EdgeGap:        0.08,
		LoopClearance:  0.15,
		BranchOffset:   0.1,
		InjectDrop:     1.8,
		CaptionLift:    0.2,
		LoopLabelLift:  0.18,
		BadgeDrop:      0.35,
		InjectLabelX:   3.0,
		MaskLabelInset: 4.6,

		ArrowWidth: 2,
		LoopWidth:  2,
		RouteWidth: 2.5,

		TitleSize:   22,
		CaptionSize: 15,
		LatentSize:  11,
		BadgeSize:   12,
	}
}

// Params selects one diagram variant. Everything that differs between DTNet
// and ITNet lives here; the geometry is shared.
type Params struct {
	Title            string // diagram title, e.g. "DTNet"
	ResBlocks        int    // residual sub-block count shown in the residual label
	RecurrentCaption string // caption of the recurrent bounding region
	DefaultFile      string // output file name used when no path is given
}

// slackMargin is added to the configured edge gap when deriving the scene's
// endpoint anchoring tolerance, absorbing float rounding in the routing math.
const slackMargin = 0.02

// Compose assembles one diagram variant. It is a pure function of cfg and p:
// identical inputs produce deeply equal scenes. Elements are emitted in the
// fixed pipeline order (title, input, projection, recurrent region, concat
// marker, conv, residual, feedback loop, head, output, injection path,
// annotations); connectors carry the arrows between consecutive stages.
func Compose(cfg Config, p Params) *Diagram {
	pal := cfg.Palette
	y := cfg.MainY
	d := &Diagram{Title: p.Title, Frame: cfg.Frame, Slack: cfg.EdgeGap + slackMargin}

	d.Labels = append(d.Labels, LabelSpec{
		ID:    "title",
		At:    geom.Point{X: cfg.Frame.Center.X, Y: cfg.TitleY},
		Text:  p.Title,
		Size:  cfg.TitleSize,
		Color: pal.Text,
		Bold:  true,
	})

	input := block(pal, "input",
		geom.RectAt(cfg.InputX, y, cfg.BlockW, cfg.BlockH),
		"Input", "H×W\n3 ch", pal.Input)
	proj := block(pal, "projection",
		geom.RectAt(cfg.ProjX, y, cfg.BlockW, cfg.BlockH),
		"Projection", "Conv2d, ReLU\n3→128 ch", pal.Projection)
	d.Blocks = append(d.Blocks, input, proj)
	d.Connectors = append(d.Connectors, arrow(cfg, "input-projection", input.Box.RightMid(), proj.Box.LeftMid()))

	recur := geom.RectAt(cfg.RecurX, y, cfg.RecurW, cfg.RecurH)
	d.Regions = append(d.Regions, RegionSpec{
		ID:          "recurrent",
		Box:         recur,
		Caption:     p.RecurrentCaption,
		CaptionAt:   geom.Point{X: cfg.RecurX, Y: recur.Top() + cfg.CaptionLift},
		CaptionSize: cfg.CaptionSize,
		Fill:        pal.RecurFill,
		Stroke:      pal.Recur,
	})

	concat := MarkerSpec{
		ID:     "concat",
		Center: geom.Point{X: cfg.ConcatX, Y: y},
		R:      cfg.ConcatR,
		Glyph:  "+",
		Fill:   pal.Concat,
		Stroke: pal.Edge,
	}
	d.Markers = append(d.Markers, concat)
	d.Connectors = append(d.Connectors,
		arrow(cfg, "projection-concat", proj.Box.RightMid(), geom.Point{X: cfg.ConcatX - cfg.ConcatR, Y: y}))

	conv := block(pal, "conv",
		geom.RectAt(cfg.ConvX, y, cfg.ConvW, cfg.ConvH),
		"Conv", "131→128 ch", pal.Residual)
	residual := block(pal, "residual",
		geom.RectAt(cfg.ResidualX, y, cfg.ResidualW, cfg.ResidualH),
		"Residual", fmt.Sprintf("%d× ResBlock", p.ResBlocks), pal.Residual)
	d.Blocks = append(d.Blocks, conv, residual)
	d.Connectors = append(d.Connectors,
		arrow(cfg, "concat-conv", geom.Point{X: cfg.ConcatX + cfg.ConcatR, Y: y}, conv.Box.LeftMid()),
		arrow(cfg, "conv-residual", conv.Box.RightMid(), residual.Box.LeftMid()))

	// Feedback loop: down from the residual block, horizontally below the
	// recurrent region, then up into the concat marker from below. The run
	// stays strictly below the region bottom for every variant.
	loopY := recur.Bottom() - cfg.LoopClearance
	loopRiseX := cfg.ConcatX + cfg.BranchOffset
	d.Connectors = append(d.Connectors, ConnectorSpec{
		ID: "feedback-loop",
		Points: []geom.Point{
			residual.Box.BottomMid().Add(0, -cfg.EdgeGap),
			{X: cfg.ResidualX, Y: loopY},
			{X: loopRiseX, Y: loopY},
			{X: loopRiseX, Y: y - cfg.ConcatR},
		},
		Color: pal.Recur,
		Width: cfg.LoopWidth,
		Arrow: true,
	})
	d.Labels = append(d.Labels, LabelSpec{
		ID:     "latent",
		At:     geom.Point{X: cfg.RecurX, Y: loopY + cfg.LoopLabelLift},
		Text:   "Latent",
		Size:   cfg.LatentSize,
		Color:  pal.Recur,
		Italic: true,
	})

	head := block(pal, "head",
		geom.RectAt(cfg.HeadX, y, cfg.BlockW, cfg.BlockH),
		"Head", "3× Conv2d\n128→32→8→2 ch", pal.Head)
	output := block(pal, "output",
		geom.RectAt(cfg.OutputX, y, cfg.BlockW, cfg.BlockH),
		"Prediction", "Argmax\nH×W, 2 cls", pal.Output)
	d.Blocks = append(d.Blocks, head, output)
	d.Connectors = append(d.Connectors,
		arrow(cfg, "residual-head", residual.Box.RightMid(), head.Box.LeftMid()),
		arrow(cfg, "head-output", head.Box.RightMid(), output.Box.LeftMid()))

	// Injection path: one run below the main flow carries the original input
	// to both the concat marker (re-injection each iteration) and the
	// prediction (masking). The trunk ends with the mask arrow rising into
	// the output block; the concat rise tees off the trunk.
	injectY := y - cfg.InjectDrop
	injectRiseX := cfg.ConcatX - cfg.BranchOffset
	d.Connectors = append(d.Connectors,
		ConnectorSpec{
			ID: "injection-mask",
			Points: []geom.Point{
				input.Box.BottomMid().Add(0, -cfg.EdgeGap),
				{X: cfg.InputX, Y: injectY},
				{X: cfg.OutputX, Y: injectY},
				output.Box.BottomMid().Add(0, -cfg.EdgeGap),
			},
			Color: pal.Concat,
			Width: cfg.RouteWidth,
			Arrow: true,
		},
		ConnectorSpec{
			ID: "injection-concat",
			Points: []geom.Point{
				{X: injectRiseX, Y: injectY},
				{X: injectRiseX, Y: y - cfg.ConcatR},
			},
			Color: pal.Concat,
			Width: cfg.RouteWidth,
			Arrow: true,
		})

	d.Labels = append(d.Labels,
		LabelSpec{
			ID:        "injection-badge",
			At:        geom.Point{X: cfg.InjectLabelX, Y: injectY - cfg.BadgeDrop},
			Text:      "Input Injection (every iteration)",
			Size:      cfg.BadgeSize,
			Color:     "white",
			Bold:      true,
			BadgeFill: pal.Concat,
		},
		LabelSpec{
			ID:        "mask-badge",
			At:        geom.Point{X: cfg.OutputX - cfg.MaskLabelInset, Y: injectY - cfg.BadgeDrop},
			Text:      "Mask (zero out walls)",
			Size:      cfg.BadgeSize,
			Color:     "white",
			Bold:      true,
			BadgeFill: pal.Concat,
		})

	return d
}

// block builds a pipeline block with the palette's shared outline and text
// colors.
func block(pal Palette, id string, box geom.Rect, title, subtitle, fill string) BlockSpec {
	return BlockSpec{
		ID:            id,
		Box:           box,
		Title:         title,
		Subtitle:      subtitle,
		Fill:          fill,
		Stroke:        pal.Edge,
		TitleColor:    pal.Text,
		SubtitleColor: pal.Gray,
	}
}

// arrow builds a straight main-flow arrow between two stage anchor points.
func arrow(cfg Config, id string, from, to geom.Point) ConnectorSpec {
	return ConnectorSpec{
		ID:     id,
		Points: []geom.Point{from, to},
		Color:  cfg.Palette.Arrow,
		Width:  cfg.ArrowWidth,
		Arrow:  true,
	}
}
