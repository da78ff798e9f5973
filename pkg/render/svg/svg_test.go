package svg

import (
	"strings"
	"testing"

	"netsketch/pkg/diagram"
	"netsketch/pkg/geom"
)

func TestRenderDTNet(t *testing.T) {
	d := diagram.Compose(diagram.DefaultConfig(), diagram.DTNet())
	output := string(Render(d))

	contains := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 1120.0 400.0"`,
		`>DTNet</text>`,
		`id="block-input"`,
		`id="block-projection"`,
		`id="block-residual"`,
		`>2× ResBlock</text>`,
		`id="region-recurrent"`,
		`stroke-dasharray`,
		`id="marker-concat"`,
		`id="connector-feedback-loop"`,
		`<polyline`,
		`id="connector-injection-mask"`,
		`>Input Injection (every iteration)</text>`,
		`>Latent</text>`,
	}
	for _, want := range contains {
		if !strings.Contains(output, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestRenderITNet(t *testing.T) {
	d := diagram.Compose(diagram.DefaultConfig(), diagram.ITNet())
	output := string(Render(d))

	contains := []string{
		`>ITNet</text>`,
		`>4× ResBlock</text>`,
		"until ‖z⁽ᵏ⁾ − z⁽ᵏ⁻¹⁾‖ &lt; ε",
	}
	for _, want := range contains {
		if !strings.Contains(output, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	d := diagram.Compose(diagram.DefaultConfig(), diagram.DTNet())

	a := Render(d)
	b := Render(d)
	if string(a) != string(b) {
		t.Error("Render() output differs between identical calls")
	}
}

func TestRenderArrowDefs(t *testing.T) {
	d := diagram.Compose(diagram.DefaultConfig(), diagram.DTNet())
	output := string(Render(d))

	// One marker def per connector color: main flow, feedback, injection.
	for _, id := range []string{"arrow-37474f", "arrow-4caf50", "arrow-7b1fa2"} {
		if !strings.Contains(output, `<marker id="`+id+`"`) {
			t.Errorf("Render() output missing marker def %q", id)
		}
		if !strings.Contains(output, `marker-end="url(#`+id+`)"`) {
			t.Errorf("Render() output never references marker %q", id)
		}
	}
	if n := strings.Count(output, "<marker id="); n != 3 {
		t.Errorf("Render() emitted %d marker defs, want 3", n)
	}
}

func TestRenderWithScale(t *testing.T) {
	d := diagram.Compose(diagram.DefaultConfig(), diagram.DTNet())
	output := string(Render(d, WithScale(40)))

	if !strings.Contains(output, `viewBox="0 0 560.0 200.0"`) {
		t.Error("WithScale(40) should halve the viewport")
	}
}

// Palette overrides for outlines and block text must surface in the markup,
// not just in the composed scene.
func TestRenderHonorsPaletteOverrides(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.Palette.Edge = "#0000FF"
	cfg.Palette.Text = "#00FF00"
	cfg.Palette.Gray = "#FF0000"
	output := string(Render(diagram.Compose(cfg, diagram.DTNet())))

	contains := []string{
		`stroke="#0000FF"`, // block outlines
		`fill="#00FF00"`,   // block titles
		`fill="#FF0000"`,   // block subtitles
	}
	for _, want := range contains {
		if !strings.Contains(output, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
	for _, stale := range []string{"#424242", "#212121", "#757575"} {
		if strings.Contains(output, stale) {
			t.Errorf("Render() output still contains default color %q", stale)
		}
	}
}

func TestRenderCoordinateFlip(t *testing.T) {
	c := canvas{frame: geom.RectAt(7, 3.5, 14, 5), scale: 80}

	// World origin of the frame is its bottom-left corner (0, 1).
	if got := c.x(0); got != 0 {
		t.Errorf("x(0) = %v, want 0", got)
	}
	if got := c.y(1); got != 400 {
		t.Errorf("y(1) = %v, want 400 (bottom edge maps to max pixel y)", got)
	}
	if got := c.y(6); got != 0 {
		t.Errorf("y(6) = %v, want 0 (top edge maps to pixel y 0)", got)
	}
}

func TestRenderEscapesXML(t *testing.T) {
	d := &diagram.Diagram{
		Frame: geom.RectAt(5, 5, 10, 10),
		Blocks: []diagram.BlockSpec{
			{ID: "a<b", Box: geom.RectAt(5, 5, 2, 1), Title: "A & B", Fill: "#ffffff", Stroke: "#424242", TitleColor: "#212121"},
		},
	}
	output := string(Render(d))

	if strings.Contains(output, "a<b") {
		t.Error("Render() should escape < in element IDs")
	}
	if !strings.Contains(output, "A &amp; B") {
		t.Error("Render() should escape & in labels")
	}
}

func TestRenderSubtitleLines(t *testing.T) {
	d := &diagram.Diagram{
		Frame: geom.RectAt(5, 5, 10, 10),
		Blocks: []diagram.BlockSpec{
			{ID: "a", Box: geom.RectAt(5, 5, 2, 1), Title: "T", Subtitle: "one\ntwo", Fill: "#ffffff", Stroke: "#424242", TitleColor: "#212121", SubtitleColor: "#757575"},
		},
	}
	output := string(Render(d))

	if !strings.Contains(output, ">one</text>") || !strings.Contains(output, ">two</text>") {
		t.Errorf("Render() should emit one text element per subtitle line")
	}
}

func TestRenderBadge(t *testing.T) {
	d := &diagram.Diagram{
		Frame: geom.RectAt(5, 5, 10, 10),
		Labels: []diagram.LabelSpec{
			{ID: "badge", At: geom.Point{X: 5, Y: 5}, Text: "Mask", Size: 12, Color: "white", BadgeFill: "#7B1FA2"},
		},
	}
	output := string(Render(d))

	if !strings.Contains(output, `fill="#7B1FA2"`) {
		t.Error("Render() should draw the badge background")
	}
	if !strings.Contains(output, ">Mask</text>") {
		t.Error("Render() should draw the badge text")
	}
}
