package gesture

import (
	"math"

	"github.com/ayusman/playsight/internal/geometry"
)

// Temporal windows for synchrony classification, in seconds.
const (
	syncWindow     = 1.0
	responseWindow = 3.0
	imitationMin   = 0.5
	imitationMax   = 5.0
)

// analyzeSync classifies every parent-gesture/child-gesture pair by time gap
// and reduces the counts to one synchrony score.
func analyzeSync(gestures []DetectedGesture) Sync {
	var parentGestures, childGestures []DetectedGesture
	both := 0
	for _, g := range gestures {
		switch g.Actor {
		case ActorParent:
			parentGestures = append(parentGestures, g)
		case ActorChild:
			childGestures = append(childGestures, g)
		case ActorBoth:
			both++
		}
	}

	var s Sync
	for _, pg := range parentGestures {
		for _, cg := range childGestures {
			gap := math.Abs(pg.StartTime - cg.StartTime)
			sameType := pg.Type == cg.Type

			if gap <= syncWindow {
				s.Synchronized++
				if sameType {
					s.Mirrored++
				}
			} else if gap <= responseWindow {
				s.Responses++
			}
			if sameType && gap >= imitationMin && gap <= imitationMax {
				s.Imitations++
			}
		}
	}

	total := len(parentGestures) + len(childGestures) + both
	if total > 0 {
		s.Score = geometry.Clamp(
			float64(s.Synchronized+s.Mirrored+both)/float64(total), 0, 1)
	}
	return s
}
