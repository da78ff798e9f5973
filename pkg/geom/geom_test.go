package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := RectAt(5, 3, 2, 1)

	if got := r.Left(); got != 4 {
		t.Errorf("Left() = %v, want 4", got)
	}
	if got := r.Right(); got != 6 {
		t.Errorf("Right() = %v, want 6", got)
	}
	if got := r.Bottom(); got != 2.5 {
		t.Errorf("Bottom() = %v, want 2.5", got)
	}
	if got := r.Top(); got != 3.5 {
		t.Errorf("Top() = %v, want 3.5", got)
	}
}

func TestRectMidpoints(t *testing.T) {
	r := RectAt(5, 3, 2, 1)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"LeftMid", r.LeftMid(), Point{4, 3}},
		{"RightMid", r.RightMid(), Point{6, 3}},
		{"BottomMid", r.BottomMid(), Point{5, 2.5}},
		{"TopMid", r.TopMid(), Point{5, 3.5}},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := RectAt(0, 0, 2, 2)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{0, 0}, true},
		{"on edge", Point{1, 0}, true},
		{"corner", Point{1, 1}, true},
		{"outside x", Point{1.01, 0}, false},
		{"outside y", Point{0, -1.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectGrow(t *testing.T) {
	r := RectAt(0, 0, 2, 2).Grow(0.5)

	if r.W != 3 || r.H != 3 {
		t.Errorf("Grow(0.5) = %vx%v, want 3x3", r.W, r.H)
	}
	if !r.Contains(Point{1.5, 1.5}) {
		t.Error("grown rect should contain its new corner")
	}

	shrunk := r.Grow(-0.5)
	if shrunk.W != 2 || shrunk.H != 2 {
		t.Errorf("Grow(-0.5) = %vx%v, want 2x2", shrunk.W, shrunk.H)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{1, 2}.Add(0.5, -1)
	if p != (Point{1.5, 1}) {
		t.Errorf("Add = %v, want {1.5 1}", p)
	}
}
