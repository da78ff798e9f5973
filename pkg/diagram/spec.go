// Package diagram builds the declarative scene for the DTNet and ITNet
// architecture diagrams.
//
// The composer ([Compose]) turns a set of named spacing constants ([Config])
// and variant parameters ([Params]) into a [Diagram]: an ordered collection
// of blocks, connectors, markers, and labels with fully computed geometry.
// The scene is pure data; rendering surfaces (SVG, Graphviz) walk it without
// recomputing any coordinate.
//
// Lengths and positions are diagram units with the y-axis pointing up.
// Stroke widths and font sizes are device pixels, left untouched by the
// renderer's coordinate scaling.
package diagram

import (
	"fmt"

	"netsketch/pkg/geom"
)

// BlockSpec describes one rounded-rectangle diagram element.
type BlockSpec struct {
	ID            string
	Box           geom.Rect
	Title         string
	Subtitle      string // optional second line group; may contain "\n"
	Fill          string
	Stroke        string
	TitleColor    string
	SubtitleColor string
}

// RegionSpec describes a dashed bounding region with a caption above it,
// used for the recurrent-block grouping.
type RegionSpec struct {
	ID          string
	Box         geom.Rect
	Caption     string
	CaptionAt   geom.Point
	CaptionSize float64 // font size in device pixels
	Fill        string
	Stroke      string
}

// MarkerSpec describes a small filled circle with a centered glyph,
// used for the concat (input injection) point.
type MarkerSpec struct {
	ID     string
	Center geom.Point
	R      float64
	Glyph  string
	Fill   string
	Stroke string
}

// ConnectorSpec describes a straight arrow (two points) or a routed
// multi-segment line. When Arrow is set, an arrowhead is drawn at the
// final point.
type ConnectorSpec struct {
	ID     string
	Points []geom.Point
	Color  string
	Width  float64 // stroke width in device pixels
	Arrow  bool
}

// LabelSpec describes a free-standing text annotation. A non-empty
// BadgeFill draws the text on a rounded background of that color.
type LabelSpec struct {
	ID        string
	At        geom.Point
	Text      string
	Size      float64 // font size in device pixels
	Color     string
	Bold      bool
	Italic    bool
	BadgeFill string
}

// Diagram is one fully composed scene. Element slices preserve the
// composer's emission order; renderers must not reorder them.
type Diagram struct {
	Title      string
	Frame      geom.Rect
	Slack      float64 // endpoint anchoring tolerance, see Validate
	Blocks     []BlockSpec
	Regions    []RegionSpec
	Markers    []MarkerSpec
	Connectors []ConnectorSpec
	Labels     []LabelSpec
}

// Block returns the block with the given ID.
func (d *Diagram) Block(id string) (BlockSpec, bool) {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return BlockSpec{}, false
}

// Validate checks the structural invariants of a composed scene:
// every element has positive dimensions and lies inside the frame, and
// every connector endpoint is anchored to a placed element (within its
// bounds grown by Slack) or tees off another connector's path. The composer
// derives Slack from the configured edge gap so that arrow tips sitting the
// gap's distance outside a border still count as anchored.
func (d *Diagram) Validate() error {
	for _, b := range d.Blocks {
		if b.Box.W <= 0 || b.Box.H <= 0 {
			return fmt.Errorf("block %q: non-positive dimensions %gx%g", b.ID, b.Box.W, b.Box.H)
		}
	}
	for _, m := range d.Markers {
		if m.R <= 0 {
			return fmt.Errorf("marker %q: non-positive radius %g", m.ID, m.R)
		}
	}
	for i, c := range d.Connectors {
		if len(c.Points) < 2 {
			return fmt.Errorf("connector %q: needs at least 2 points, has %d", c.ID, len(c.Points))
		}
		for _, p := range c.Points {
			if !d.Frame.Contains(p) {
				return fmt.Errorf("connector %q: point (%g, %g) outside frame", c.ID, p.X, p.Y)
			}
		}
		for _, p := range []geom.Point{c.Points[0], c.Points[len(c.Points)-1]} {
			if !d.anchored(p, i) {
				return fmt.Errorf("connector %q: endpoint (%g, %g) not anchored to any element", c.ID, p.X, p.Y)
			}
		}
	}
	return nil
}

// anchored reports whether p lies within a placed element's grown bounds or
// on the path of a connector other than the one at index self.
func (d *Diagram) anchored(p geom.Point, self int) bool {
	for _, b := range d.Blocks {
		if b.Box.Grow(d.Slack).Contains(p) {
			return true
		}
	}
	for _, r := range d.Regions {
		if r.Box.Grow(d.Slack).Contains(p) {
			return true
		}
	}
	for _, m := range d.Markers {
		box := geom.RectAt(m.Center.X, m.Center.Y, 2*m.R, 2*m.R)
		if box.Grow(d.Slack).Contains(p) {
			return true
		}
	}
	for i, c := range d.Connectors {
		if i == self {
			continue
		}
		for j := 1; j < len(c.Points); j++ {
			if onSegment(p, c.Points[j-1], c.Points[j]) {
				return true
			}
		}
	}
	return false
}

const segmentEps = 1e-9

// onSegment reports whether p lies on the segment from a to b.
func onSegment(p, a, b geom.Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross > segmentEps || cross < -segmentEps {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < -segmentEps {
		return false
	}
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= lenSq+segmentEps
}
