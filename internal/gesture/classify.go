package gesture

import (
	"fmt"
	"math"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Movement classification thresholds, in normalized frame units per frame
// step. The rules are ordered and the first match wins: fast vertical movement
// is jumping even when a horizontal rule would also fire.
const (
	jumpSpeed     = 0.12
	runSpeed      = 0.15
	walkSpeed     = 0.06
	waveSpeed     = 0.03
	leanSpeed     = 0.03
	pointSpeedMin = 0.01
	leanShrink    = -0.005
	stretchGrowth = 0.02
)

// Plausible human movement band: confidence peaks inside it and degrades
// outside it.
const (
	plausibleSpeedMin = 0.01
	plausibleSpeedMax = 0.30
)

// Posture classification thresholds over box aspect ratio and vertical center.
const (
	postureStretchRatio = 2.2
	postureStandRatio   = 1.4
	postureSitRatio     = 1.0
	postureJumpCenterY  = 0.30
)

// classifyMovement maps a frame-to-frame movement onto a gesture type.
// Ordered first-match rules; unmatched movement is TypeUnknown.
func classifyMovement(m geometry.Movement) Type {
	switch {
	case m.Vertical() && m.Speed >= jumpSpeed:
		return TypeJumping
	case m.Horizontal() && m.Speed >= runSpeed:
		return TypeRunning
	case m.Speed >= walkSpeed:
		return TypeWalking
	case isDiagonal(m.Direction) && m.DSize <= leanShrink && m.Speed >= leanSpeed:
		return TypeLeaning
	case m.DSize >= stretchGrowth && m.Speed < walkSpeed:
		return TypeStretching
	case m.Horizontal() && m.Speed >= waveSpeed:
		return TypeWaving
	case m.Direction != geometry.DirStationary && m.Speed >= pointSpeedMin:
		return TypePointing
	default:
		return TypeUnknown
	}
}

// classifyPosture maps a static bounding box onto a posture gesture type.
func classifyPosture(box annotation.BoundingBox) Type {
	box = geometry.Sanitize(box)
	w := box.Width()
	h := box.Height()
	if w <= 0 || h <= 0 {
		return TypeUnknown
	}

	ratio := h / w
	centerY := geometry.Center(box).Y

	switch {
	case ratio >= postureStretchRatio:
		return TypeStretching
	case ratio >= postureStandRatio:
		return TypeStanding
	case ratio <= postureSitRatio:
		return TypeSitting
	case centerY <= postureJumpCenterY:
		return TypeJumping
	default:
		return TypeUnknown
	}
}

// movementConfidence scores how plausible a classified movement is. The base
// peaks inside the plausible speed band; the speed-derived bonus keeps the
// score deterministic for identical input.
func movementConfidence(gestureType Type, m geometry.Movement) float64 {
	if gestureType == TypeUnknown {
		return 0.3
	}

	var base float64
	switch {
	case m.Speed < plausibleSpeedMin:
		base = 0.45
	case m.Speed <= plausibleSpeedMax:
		base = 0.70
	default:
		// Implausibly fast for human movement between frames.
		base = 0.70 - (m.Speed - plausibleSpeedMax)
	}

	bonus := math.Min(0.2, m.Speed*2)
	return geometry.Clamp(base+bonus, 0, 1)
}

// postureConfidence scores a posture classification from box size: larger
// detections carry more reliable aspect ratios.
func postureConfidence(gestureType Type, box annotation.BoundingBox) float64 {
	if gestureType == TypeUnknown {
		return 0.3
	}
	return geometry.Clamp(0.55+geometry.Sanitize(box).Area()*2, 0, 0.95)
}

// movementIntensity normalizes movement magnitude into [0,1].
func movementIntensity(m geometry.Movement) float64 {
	return math.Min(1, m.Speed/0.2)
}

func isDiagonal(d geometry.Direction) bool {
	switch d {
	case geometry.DirUpLeft, geometry.DirUpRight, geometry.DirDownLeft, geometry.DirDownRight:
		return true
	}
	return false
}

func describeGesture(actor Actor, gestureType Type, m geometry.Movement) string {
	if m.Direction == geometry.DirStationary {
		return fmt.Sprintf("%s %s", actor, gestureType)
	}
	return fmt.Sprintf("%s %s moving %s", actor, gestureType, m.Direction)
}
