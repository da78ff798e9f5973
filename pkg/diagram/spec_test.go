package diagram

import (
	"strings"
	"testing"

	"netsketch/pkg/geom"
)

func validScene() *Diagram {
	return &Diagram{
		Frame: geom.RectAt(5, 5, 10, 10),
		Slack: 0.1,
		Blocks: []BlockSpec{
			{ID: "a", Box: geom.RectAt(2, 5, 1, 1)},
			{ID: "b", Box: geom.RectAt(8, 5, 1, 1)},
		},
		Connectors: []ConnectorSpec{
			{ID: "a-b", Points: []geom.Point{{X: 2.5, Y: 5}, {X: 7.5, Y: 5}}, Arrow: true},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validScene().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Diagram)
		wantErr string
	}{
		{
			name: "non-positive block",
			mutate: func(d *Diagram) {
				d.Blocks[0].Box.W = 0
			},
			wantErr: "non-positive dimensions",
		},
		{
			name: "non-positive marker",
			mutate: func(d *Diagram) {
				d.Markers = append(d.Markers, MarkerSpec{ID: "m", Center: geom.Point{X: 5, Y: 5}})
			},
			wantErr: "non-positive radius",
		},
		{
			name: "too few points",
			mutate: func(d *Diagram) {
				d.Connectors = append(d.Connectors, ConnectorSpec{ID: "short", Points: []geom.Point{{X: 2, Y: 5}}})
			},
			wantErr: "at least 2 points",
		},
		{
			name: "point outside frame",
			mutate: func(d *Diagram) {
				d.Connectors[0].Points[1] = geom.Point{X: 99, Y: 5}
			},
			wantErr: "outside frame",
		},
		{
			name: "unanchored endpoint",
			mutate: func(d *Diagram) {
				d.Connectors[0].Points[1] = geom.Point{X: 5, Y: 9}
			},
			wantErr: "not anchored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validScene()
			tt.mutate(d)
			err := d.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

// A connector starting on another connector's path is anchored: that is how
// the injection branch tees off the trunk.
func TestValidateTeeAnchoring(t *testing.T) {
	d := validScene()
	d.Connectors = append(d.Connectors, ConnectorSpec{
		ID:     "tee",
		Points: []geom.Point{{X: 5, Y: 5}, {X: 8, Y: 5.4}},
		Arrow:  true,
	})

	if err := d.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil (tee start lies on a-b)", err)
	}
}

func TestOnSegment(t *testing.T) {
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}

	tests := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"midpoint", geom.Point{X: 5, Y: 0}, true},
		{"start", a, true},
		{"end", b, true},
		{"off line", geom.Point{X: 5, Y: 0.1}, false},
		{"beyond end", geom.Point{X: 10.5, Y: 0}, false},
		{"before start", geom.Point{X: -0.5, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onSegment(tt.p, a, b); got != tt.want {
				t.Errorf("onSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBlockLookup(t *testing.T) {
	d := validScene()

	if _, ok := d.Block("a"); !ok {
		t.Error(`Block("a") not found`)
	}
	if _, ok := d.Block("missing"); ok {
		t.Error(`Block("missing") should not be found`)
	}
}
