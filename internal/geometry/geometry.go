// Package geometry provides bounding-box and movement primitives shared by
// the gesture and play analyzers. All functions are pure and total: malformed
// boxes degrade to the zero box instead of returning an error.
package geometry

import (
	"math"

	"github.com/ayusman/playsight/internal/annotation"
)

// Point is a 2D point in normalized [0,1] frame coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Direction is a movement direction bucketed into 8 compass octants, or
// "stationary" when the speed is below MinSpeed. Y grows downward, matching
// image coordinates, so "up" means toward the top of the frame.
type Direction string

const (
	DirStationary Direction = "stationary"
	DirRight      Direction = "right"
	DirDownRight  Direction = "down_right"
	DirDown       Direction = "down"
	DirDownLeft   Direction = "down_left"
	DirLeft       Direction = "left"
	DirUpLeft     Direction = "up_left"
	DirUp         Direction = "up"
	DirUpRight    Direction = "up_right"
)

// MinSpeed is the displacement floor below which movement is stationary.
const MinSpeed = 0.005

// Movement describes the frame-to-frame displacement of a bounding box.
type Movement struct {
	DX        float64   `json:"dx"`
	DY        float64   `json:"dy"`
	DSize     float64   `json:"d_size"` // area change, signed
	Speed     float64   `json:"speed"`  // hypot(dx, dy)
	Direction Direction `json:"direction"`
}

// Horizontal reports whether the movement is along the left/right axis.
func (m Movement) Horizontal() bool {
	return m.Direction == DirLeft || m.Direction == DirRight
}

// Vertical reports whether the movement is along the up/down axis.
func (m Movement) Vertical() bool {
	return m.Direction == DirUp || m.Direction == DirDown
}

// Sanitize clamps a bounding box into [0,1] and collapses malformed boxes
// (inverted or missing vertices) to the zero box.
func Sanitize(b annotation.BoundingBox) annotation.BoundingBox {
	b.Left = clamp01(b.Left)
	b.Top = clamp01(b.Top)
	b.Right = clamp01(b.Right)
	b.Bottom = clamp01(b.Bottom)
	if b.Right < b.Left || b.Bottom < b.Top {
		return annotation.BoundingBox{}
	}
	return b
}

// Center returns the midpoint of a bounding box.
func Center(b annotation.BoundingBox) Point {
	b = Sanitize(b)
	return Point{
		X: (b.Left + b.Right) / 2,
		Y: (b.Top + b.Bottom) / 2,
	}
}

// Distance returns the Euclidean distance between two points in normalized
// coordinate space.
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Hypot(dx, dy)
}

// BoxDistance returns the distance between the centers of two boxes.
func BoxDistance(a, b annotation.BoundingBox) float64 {
	return Distance(Center(a), Center(b))
}

// Compute derives the movement between two consecutive bounding boxes of the
// same subject.
func Compute(prev, curr annotation.BoundingBox) Movement {
	prev = Sanitize(prev)
	curr = Sanitize(curr)

	cp := Center(prev)
	cc := Center(curr)

	m := Movement{
		DX:    cc.X - cp.X,
		DY:    cc.Y - cp.Y,
		DSize: curr.Area() - prev.Area(),
	}
	m.Speed = math.Hypot(m.DX, m.DY)
	m.Direction = bucketDirection(m.DX, m.DY, m.Speed)
	return m
}

// bucketDirection partitions the movement angle into 8 non-overlapping
// 45-degree sectors centered on the cardinal and diagonal directions.
func bucketDirection(dx, dy, speed float64) Direction {
	if speed < MinSpeed {
		return DirStationary
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi // (-180, 180], 0 = right, 90 = down

	switch {
	case deg >= -22.5 && deg < 22.5:
		return DirRight
	case deg >= 22.5 && deg < 67.5:
		return DirDownRight
	case deg >= 67.5 && deg < 112.5:
		return DirDown
	case deg >= 112.5 && deg < 157.5:
		return DirDownLeft
	case deg >= 157.5 || deg < -157.5:
		return DirLeft
	case deg >= -157.5 && deg < -112.5:
		return DirUpLeft
	case deg >= -112.5 && deg < -67.5:
		return DirUp
	default:
		return DirUpRight
	}
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite replaces NaN and infinities with the fallback. Min/max reductions
// over empty frame sets must never leak Inf into downstream scores.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
