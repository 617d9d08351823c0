package gesture

import (
	"fmt"
	"math"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Object-interaction thresholds in normalized frame units.
const (
	// ObjectProximityThreshold is the maximum actor-to-object distance for an
	// object interaction to be considered at all.
	ObjectProximityThreshold = 0.2

	touchDistance = 0.05
	reachDistance = 0.10
	showDistance  = 0.15

	// objectTimeTolerance is the maximum time skew between an actor frame and
	// an object frame for them to count as the same moment.
	objectTimeTolerance = 0.5
)

// nearbyObject is an object close enough to an actor to interact with.
type nearbyObject struct {
	entity   string
	box      annotation.BoundingBox
	distance float64
}

// findNearbyObjects returns non-person objects within ObjectProximityThreshold
// of the actor box at time t, using each track's frame closest in time.
func findNearbyObjects(tracks []annotation.ObjectTrack, actorBox annotation.BoundingBox, t float64) []nearbyObject {
	var nearby []nearbyObject
	for _, track := range tracks {
		if track.Entity == "person" {
			continue
		}
		frame, ok := frameNearTime(track, t)
		if !ok {
			continue
		}
		dist := geometry.BoxDistance(actorBox, frame.Box)
		if dist <= ObjectProximityThreshold {
			nearby = append(nearby, nearbyObject{entity: track.Entity, box: frame.Box, distance: dist})
		}
	}
	return nearby
}

// frameNearTime finds the track frame closest to t within objectTimeTolerance.
func frameNearTime(track annotation.ObjectTrack, t float64) (annotation.ObjectFrame, bool) {
	best := annotation.ObjectFrame{}
	bestSkew := math.Inf(1)
	for _, f := range track.Frames {
		skew := math.Abs(f.TimeOffset - t)
		if skew < bestSkew {
			best = f
			bestSkew = skew
		}
	}
	if bestSkew > objectTimeTolerance {
		return annotation.ObjectFrame{}, false
	}
	return best, true
}

// classifyObjectInteraction maps (movement, proximity) onto an interaction
// gesture type. Ordered first-match rules.
func classifyObjectInteraction(m geometry.Movement, dist float64) Type {
	switch {
	case dist < touchDistance && m.DSize > 0.005:
		return TypePickingUp
	case dist < touchDistance && m.DSize < -0.005:
		return TypePuttingDown
	case dist < touchDistance:
		return TypeTouching
	case dist < reachDistance && m.Speed >= geometry.MinSpeed:
		return TypeReaching
	case dist < showDistance && m.Direction == geometry.DirUp:
		return TypeShowing
	case dist <= ObjectProximityThreshold && m.Direction != geometry.DirStationary:
		return TypePointing
	default:
		return TypeUnknown
	}
}

// objectConfidence scores an object interaction: the closer the object, the
// more certain the interaction.
func objectConfidence(gestureType Type, dist float64) float64 {
	if gestureType == TypeUnknown {
		return 0.3
	}
	return geometry.Clamp(0.95-dist*1.5, 0, 1)
}

// objectIntensity derives intensity from proximity.
func objectIntensity(dist float64) float64 {
	return geometry.Clamp(1-dist/ObjectProximityThreshold, 0, 1)
}

func describeObjectGesture(actor Actor, gestureType Type, entity string) string {
	return fmt.Sprintf("%s %s %s", actor, gestureType, entity)
}
