package geometry

import (
	"math"
	"testing"

	"github.com/ayusman/playsight/internal/annotation"
)

func TestCenter(t *testing.T) {
	box := annotation.BoundingBox{Left: 0.1, Top: 0.1, Right: 0.3, Bottom: 0.3}
	c := Center(box)
	if c.X != 0.2 || c.Y != 0.2 {
		t.Errorf("expected center (0.2, 0.2), got (%f, %f)", c.X, c.Y)
	}
}

func TestCenter_MalformedBox(t *testing.T) {
	// Inverted box collapses to the zero box, so its center is the origin
	box := annotation.BoundingBox{Left: 0.8, Top: 0.5, Right: 0.2, Bottom: 0.9}
	c := Center(box)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("expected zero center for malformed box, got (%f, %f)", c.X, c.Y)
	}
}

func TestSanitize_ClampsCoordinates(t *testing.T) {
	box := Sanitize(annotation.BoundingBox{Left: -0.5, Top: 0.2, Right: 1.7, Bottom: 0.8})
	if box.Left != 0 || box.Right != 1 {
		t.Errorf("expected clamped coordinates, got %+v", box)
	}
}

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 0.2, Y: 0.2}, Point{X: 0.6, Y: 0.6})
	want := math.Sqrt(0.32)
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("expected distance %f, got %f", want, d)
	}
}

func TestCompute_Stationary(t *testing.T) {
	box := annotation.BoundingBox{Left: 0.4, Top: 0.4, Right: 0.6, Bottom: 0.6}
	m := Compute(box, box)
	if m.Speed != 0 {
		t.Errorf("expected zero speed, got %f", m.Speed)
	}
	if m.Direction != DirStationary {
		t.Errorf("expected stationary direction, got %q", m.Direction)
	}
}

func TestCompute_DirectionBuckets(t *testing.T) {
	base := annotation.BoundingBox{Left: 0.4, Top: 0.4, Right: 0.5, Bottom: 0.5}
	shift := func(dx, dy float64) annotation.BoundingBox {
		return annotation.BoundingBox{
			Left: base.Left + dx, Top: base.Top + dy,
			Right: base.Right + dx, Bottom: base.Bottom + dy,
		}
	}

	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"right", 0.1, 0, DirRight},
		{"left", -0.1, 0, DirLeft},
		{"down", 0, 0.1, DirDown},
		{"up", 0, -0.1, DirUp},
		{"down_right", 0.1, 0.1, DirDownRight},
		{"down_left", -0.1, 0.1, DirDownLeft},
		{"up_right", 0.1, -0.1, DirUpRight},
		{"up_left", -0.1, -0.1, DirUpLeft},
	}

	for _, tc := range tests {
		m := Compute(base, shift(tc.dx, tc.dy))
		if m.Direction != tc.want {
			t.Errorf("%s: expected direction %q, got %q", tc.name, tc.want, m.Direction)
		}
	}
}

func TestCompute_SizeChange(t *testing.T) {
	small := annotation.BoundingBox{Left: 0.4, Top: 0.4, Right: 0.5, Bottom: 0.5}
	large := annotation.BoundingBox{Left: 0.35, Top: 0.35, Right: 0.55, Bottom: 0.55}
	m := Compute(small, large)
	if m.DSize <= 0 {
		t.Errorf("expected positive size change, got %f", m.DSize)
	}
}

func TestFinite(t *testing.T) {
	if got := Finite(math.Inf(1), 0); got != 0 {
		t.Errorf("expected infinity replaced with 0, got %f", got)
	}
	if got := Finite(math.NaN(), 0); got != 0 {
		t.Errorf("expected NaN replaced with 0, got %f", got)
	}
	if got := Finite(0.5, 0); got != 0.5 {
		t.Errorf("expected finite value preserved, got %f", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("expected 100, got %f", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}
