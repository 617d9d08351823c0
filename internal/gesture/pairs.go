package gesture

import (
	"fmt"
	"math"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Parent-child pair classification thresholds over inter-center distance.
const (
	hugDistance   = 0.10
	closeDistance = 0.15
	giveDistance  = 0.20

	// highFiveVerticalOffset separates high fives (centers level) from holding
	// hands (centers offset because the child stands lower).
	highFiveVerticalOffset = 0.03
)

// classifyPair inspects one synchronized parent/child frame pair and returns
// a joint gesture when the actors are close enough, or nil otherwise.
func classifyPair(parent, child actorFrame) *DetectedGesture {
	dist := geometry.BoxDistance(parent.box, child.box)

	var gestureType Type
	switch {
	case dist < hugDistance:
		gestureType = TypeHugging
	case dist < closeDistance:
		dy := math.Abs(geometry.Center(parent.box).Y - geometry.Center(child.box).Y)
		if dy < highFiveVerticalOffset {
			gestureType = TypeHighFive
		} else {
			gestureType = TypeHoldingHands
		}
	case dist < giveDistance:
		gestureType = TypeGiving
	default:
		return nil
	}

	return &DetectedGesture{
		Actor:       ActorBoth,
		Type:        gestureType,
		StartTime:   parent.time,
		EndTime:     parent.time,
		Confidence:  geometry.Clamp(1-dist*2, 0, 1),
		Intensity:   geometry.Clamp(1-dist/giveDistance, 0, 1),
		Box:         joinBoxes(parent, child),
		Description: fmt.Sprintf("parent and child %s at distance %.2f", gestureType, dist),
		Context:     contextForType(gestureType),
	}
}

// joinBoxes returns the union box covering both actors.
func joinBoxes(a, b actorFrame) annotation.BoundingBox {
	return annotation.BoundingBox{
		Left:   math.Min(a.box.Left, b.box.Left),
		Top:    math.Min(a.box.Top, b.box.Top),
		Right:  math.Max(a.box.Right, b.box.Right),
		Bottom: math.Max(a.box.Bottom, b.box.Bottom),
	}
}
