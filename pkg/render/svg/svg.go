// Package svg renders a composed diagram scene to SVG markup.
//
// The scene's world coordinates (diagram units, y-up) are mapped to SVG
// pixel space (y-down) with a fixed scale. Stroke widths and font sizes in
// the scene are already device pixels and pass through unscaled.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"netsketch/pkg/diagram"
	"netsketch/pkg/geom"
)

// DefaultScale is the pixel size of one diagram unit.
const DefaultScale = 80.0

const (
	fontFamily   = "Helvetica,Arial,sans-serif"
	blockStroke  = 2.5
	regionStroke = 2.5
	markerStroke = 1.5
	cornerRadius = 8.0 // block corner radius, px
	regionRadius = 12.0
	glyphSize    = 17.0 // marker glyph font size, px
	titleSize    = 16.0 // block title font size, px
	subtitleSize = 12.0
	lineSpacing  = 1.15 // multi-line subtitle spacing, em
	titleLift    = 0.15 // block title offset above center when a subtitle exists, units
	subtitleDrop = 0.2  // subtitle group offset below center, units
	badgePadX    = 8.0  // badge background padding, px
	badgePadY    = 5.0
	badgeRadius  = 8.0
	charWidth    = 0.55 // estimated glyph width as a fraction of font size
)

// Option configures rendering.
type Option func(*renderer)

// WithScale overrides the pixels-per-unit scale.
func WithScale(s float64) Option {
	return func(r *renderer) { r.scale = s }
}

type renderer struct {
	scale float64
}

// Render serializes the diagram as a standalone SVG document. Output is
// deterministic: element order follows the scene and arrow marker defs are
// emitted in first-use order.
func Render(d *diagram.Diagram, opts ...Option) []byte {
	r := renderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}

	c := canvas{frame: d.Frame, scale: r.scale}
	w := d.Frame.W * r.scale
	h := d.Frame.H * r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	writeArrowDefs(&buf, d)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	for _, rg := range d.Regions {
		c.region(&buf, rg)
	}
	for _, cn := range d.Connectors {
		c.connector(&buf, cn)
	}
	for _, b := range d.Blocks {
		c.blockShape(&buf, b)
	}
	for _, m := range d.Markers {
		c.marker(&buf, m)
	}
	for _, b := range d.Blocks {
		c.blockText(&buf, b)
	}
	for _, l := range d.Labels {
		c.label(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeArrowDefs emits one arrowhead marker per connector color, in the
// order colors first appear in the scene.
func writeArrowDefs(buf *bytes.Buffer, d *diagram.Diagram) {
	seen := make(map[string]bool)
	var colors []string
	for _, cn := range d.Connectors {
		if cn.Arrow && !seen[cn.Color] {
			seen[cn.Color] = true
			colors = append(colors, cn.Color)
		}
	}
	if len(colors) == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	for _, color := range colors {
		fmt.Fprintf(buf, `    <marker id=%q viewBox="0 0 10 10" refX="8" refY="5" markerWidth="7" markerHeight="7" orient="auto"><path d="M 0 1 L 9 5 L 0 9 z" fill=%q/></marker>`+"\n",
			markerID(color), color)
	}
	buf.WriteString("  </defs>\n")
}

// markerID derives a stable def id from a color value.
func markerID(color string) string {
	id := strings.ToLower(strings.TrimPrefix(color, "#"))
	return "arrow-" + id
}

// canvas maps world coordinates to SVG pixel space.
type canvas struct {
	frame geom.Rect
	scale float64
}

func (c canvas) x(wx float64) float64 { return (wx - c.frame.Left()) * c.scale }
func (c canvas) y(wy float64) float64 { return (c.frame.Top() - wy) * c.scale }

func (c canvas) blockShape(buf *bytes.Buffer, b diagram.BlockSpec) {
	fmt.Fprintf(buf, `  <rect id="block-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill=%q stroke=%q stroke-width="%.1f"/>`+"\n",
		escape(b.ID), c.x(b.Box.Left()), c.y(b.Box.Top()), b.Box.W*c.scale, b.Box.H*c.scale,
		cornerRadius, cornerRadius, b.Fill, b.Stroke, blockStroke)
}

func (c canvas) blockText(buf *bytes.Buffer, b diagram.BlockSpec) {
	cx, cy := b.Box.Center.X, b.Box.Center.Y
	if b.Subtitle == "" {
		c.text(buf, geom.Point{X: cx, Y: cy}, b.Title, titleSize, b.TitleColor, true, false)
		return
	}
	c.text(buf, geom.Point{X: cx, Y: cy + titleLift}, b.Title, titleSize, b.TitleColor, true, false)
	c.multiline(buf, geom.Point{X: cx, Y: cy - subtitleDrop}, b.Subtitle, subtitleSize, b.SubtitleColor)
}

func (c canvas) region(buf *bytes.Buffer, rg diagram.RegionSpec) {
	fmt.Fprintf(buf, `  <rect id="region-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill=%q stroke=%q stroke-width="%.1f" stroke-dasharray="8,5"/>`+"\n",
		escape(rg.ID), c.x(rg.Box.Left()), c.y(rg.Box.Top()), rg.Box.W*c.scale, rg.Box.H*c.scale,
		regionRadius, regionRadius, rg.Fill, rg.Stroke, regionStroke)
	c.text(buf, rg.CaptionAt, rg.Caption, rg.CaptionSize, rg.Stroke, true, false)
}

func (c canvas) connector(buf *bytes.Buffer, cn diagram.ConnectorSpec) {
	var end string
	if cn.Arrow {
		end = fmt.Sprintf(` marker-end="url(#%s)"`, markerID(cn.Color))
	}
	if len(cn.Points) == 2 {
		a, b := cn.Points[0], cn.Points[1]
		fmt.Fprintf(buf, `  <line id="connector-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f" stroke-linecap="round"%s/>`+"\n",
			escape(cn.ID), c.x(a.X), c.y(a.Y), c.x(b.X), c.y(b.Y), cn.Color, cn.Width, end)
		return
	}
	pts := make([]string, len(cn.Points))
	for i, p := range cn.Points {
		pts[i] = fmt.Sprintf("%.2f,%.2f", c.x(p.X), c.y(p.Y))
	}
	fmt.Fprintf(buf, `  <polyline id="connector-%s" points=%q fill="none" stroke=%q stroke-width="%.1f" stroke-linecap="round" stroke-linejoin="round"%s/>`+"\n",
		escape(cn.ID), strings.Join(pts, " "), cn.Color, cn.Width, end)
}

func (c canvas) marker(buf *bytes.Buffer, m diagram.MarkerSpec) {
	fmt.Fprintf(buf, `  <circle id="marker-%s" cx="%.2f" cy="%.2f" r="%.2f" fill=%q stroke=%q stroke-width="%.1f"/>`+"\n",
		escape(m.ID), c.x(m.Center.X), c.y(m.Center.Y), m.R*c.scale, m.Fill, m.Stroke, markerStroke)
	if m.Glyph != "" {
		c.text(buf, m.Center, m.Glyph, glyphSize, "white", true, false)
	}
}

func (c canvas) label(buf *bytes.Buffer, l diagram.LabelSpec) {
	if l.BadgeFill != "" {
		c.badge(buf, l)
		return
	}
	c.text(buf, l.At, l.Text, l.Size, l.Color, l.Bold, l.Italic)
}

// badge draws label text on a rounded background sized from an estimated
// text width.
func (c canvas) badge(buf *bytes.Buffer, l diagram.LabelSpec) {
	textW := float64(len([]rune(l.Text))) * l.Size * charWidth
	w := textW + 2*badgePadX
	h := l.Size + 2*badgePadY
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill=%q/>`+"\n",
		c.x(l.At.X)-w/2, c.y(l.At.Y)-h/2, w, h, badgeRadius, badgeRadius, l.BadgeFill)
	c.text(buf, l.At, l.Text, l.Size, l.Color, l.Bold, l.Italic)
}

func (c canvas) text(buf *bytes.Buffer, at geom.Point, s string, size float64, color string, bold, italic bool) {
	var attrs strings.Builder
	if bold {
		attrs.WriteString(` font-weight="bold"`)
	}
	if italic {
		attrs.WriteString(` font-style="italic"`)
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dy="0.35em" font-family=%q font-size="%.1f" fill=%q%s>%s</text>`+"\n",
		c.x(at.X), c.y(at.Y), fontFamily, size, color, attrs.String(), escape(s))
}

// multiline renders newline-separated text vertically centered around at.
func (c canvas) multiline(buf *bytes.Buffer, at geom.Point, s string, size float64, color string) {
	lines := strings.Split(s, "\n")
	step := size * lineSpacing
	top := c.y(at.Y) - step*float64(len(lines)-1)/2
	for i, line := range lines {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dy="0.35em" font-family=%q font-size="%.1f" fill=%q>%s</text>`+"\n",
			c.x(at.X), top+step*float64(i), fontFamily, size, color, escape(line))
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
