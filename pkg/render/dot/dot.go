// Package dot renders the architecture's logical topology as a Graphviz
// node-link diagram.
//
// This is a schematic alternative to the hand-laid-out SVG scene: the same
// two fixed variants, but with node placement delegated to Graphviz. The
// topology is static; nothing is introspected from a model definition.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"netsketch/pkg/diagram"
)

type node struct {
	id    string
	label string
	fill  string
}

type edge struct {
	from, to string
	label    string
	color    string
}

// ToDOT converts a diagram variant to Graphviz DOT format. The resulting
// string can be rendered with [RenderSVG].
func ToDOT(cfg diagram.Config, p diagram.Params) string {
	pal := cfg.Palette

	nodes := []node{
		{"input", "Input\n(H×W, 3 ch)", pal.Input},
		{"projection", "Projection\n(Conv2d, ReLU)", pal.Projection},
		{"concat", "+", pal.Concat},
		{"conv", "Conv\n(131→128 ch)", pal.Residual},
		{"residual", fmt.Sprintf("Residual\n(%d× ResBlock)", p.ResBlocks), pal.Residual},
		{"head", "Head\n(3× Conv2d)", pal.Head},
		{"output", "Prediction\n(Argmax)", pal.Output},
	}
	edges := []edge{
		{"input", "projection", "", pal.Arrow},
		{"projection", "concat", "", pal.Arrow},
		{"concat", "conv", "", pal.Arrow},
		{"conv", "residual", "", pal.Arrow},
		{"residual", "concat", "latent", pal.Recur},
		{"residual", "head", "", pal.Arrow},
		{"head", "output", "", pal.Arrow},
		{"input", "concat", "inject", pal.Concat},
		{"input", "output", "mask", pal.Concat},
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", p.Title)
	buf.WriteString("  labelloc=\"t\";\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", n.label),
			fmt.Sprintf("fillcolor=%q", n.fill),
		}
		if n.id == "concat" {
			attrs = append(attrs, "shape=circle", "fontcolor=white", "margin=\"0,0\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		attrs := []string{fmt.Sprintf("color=%q", e.color)}
		if e.label != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.label), fmt.Sprintf("fontcolor=%q", e.color), "style=dashed")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.from, e.to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz in-process.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
