package dot

import (
	"strings"
	"testing"

	"netsketch/pkg/diagram"
)

func TestToDOTNodes(t *testing.T) {
	out := ToDOT(diagram.DefaultConfig(), diagram.DTNet())

	for _, want := range []string{
		"digraph G {",
		`label="DTNet";`,
		`rankdir=LR;`,
		`"input" [`,
		`"projection" [`,
		`"concat" [`,
		`"conv" [`,
		`"residual" [`,
		`"head" [`,
		`"output" [`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOTEdges(t *testing.T) {
	out := ToDOT(diagram.DefaultConfig(), diagram.ITNet())

	for _, want := range []string{
		`"input" -> "projection"`,
		`"residual" -> "concat"`, // feedback loop
		`"input" -> "concat"`,    // injection
		`"input" -> "output"`,    // mask
		`label="latent"`,
		`label="mask"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOTVariants(t *testing.T) {
	cfg := diagram.DefaultConfig()

	dt := ToDOT(cfg, diagram.DTNet())
	if !strings.Contains(dt, "2× ResBlock") {
		t.Error("DTNet DOT should label the residual node with 2 sub-blocks")
	}

	it := ToDOT(cfg, diagram.ITNet())
	if !strings.Contains(it, "4× ResBlock") {
		t.Error("ITNet DOT should label the residual node with 4 sub-blocks")
	}
	if !strings.Contains(it, `label="ITNet";`) {
		t.Error("ITNet DOT should carry the variant title")
	}
}

func TestToDOTUsesPalette(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.Palette.Concat = "#123456"

	out := ToDOT(cfg, diagram.DTNet())
	if !strings.Contains(out, `fillcolor="#123456"`) {
		t.Error("ToDOT() should color the concat node from the palette")
	}
}
