package analysis

import (
	"math"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// CloseProximity is the center distance below which parent and child count as
// close, in normalized frame units.
const CloseProximity = 0.3

// analyzeSpatial pairs the first two person-labeled object tracks as parent
// and child by array order (not identity-verified) and reduces their aligned
// frames to distance statistics.
//
// With no pairable frames every statistic is 0 — the Inf seeds from the
// min/max reduction must never leak into downstream scores.
func analyzeSpatial(results *annotation.Results) Spatial {
	persons := results.PersonTracks()
	if len(persons) < 2 {
		return Spatial{}
	}

	parent, child := persons[0], persons[1]
	n := len(parent.Frames)
	if len(child.Frames) < n {
		n = len(child.Frames)
	}
	if n == 0 {
		return Spatial{}
	}

	var (
		sum   float64
		minD  = math.Inf(1)
		maxD  = math.Inf(-1)
		close int
	)
	for i := 0; i < n; i++ {
		d := geometry.BoxDistance(parent.Frames[i].Box, child.Frames[i].Box)
		sum += d
		minD = math.Min(minD, d)
		maxD = math.Max(maxD, d)
		if d <= CloseProximity {
			close++
		}
	}

	return Spatial{
		AverageDistance: sum / float64(n),
		MinDistance:     geometry.Finite(minD, 0),
		MaxDistance:     geometry.Finite(maxD, 0),
		ProximityRatio:  float64(close) / float64(n),
		SampleCount:     n,
	}
}
