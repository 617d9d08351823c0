package analysis

import (
	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Activity thresholds. MovementScore is the average per-frame displacement
// scaled by movementScoreScale; activeFrameThreshold is in raw normalized
// units.
const (
	movementScoreScale   = 1000.0
	dynamicScoreFloor    = 15.0
	moderateScoreFloor   = 5.0
	activeFrameThreshold = 0.05
)

// analyzeActivity reduces the first person track's frame-to-frame movement to
// an overall activity level and active-frame count.
func analyzeActivity(results *annotation.Results) Activity {
	persons := results.PersonTracks()
	if len(persons) == 0 {
		return Activity{Level: ActivityStatic}
	}

	frames := persons[0].Frames
	a := Activity{Level: ActivityStatic, TotalFrames: len(frames)}
	if len(frames) < 2 {
		return a
	}

	var sum float64
	for i := 1; i < len(frames); i++ {
		m := geometry.Compute(frames[i-1].Box, frames[i].Box)
		sum += m.Speed
		if m.Speed > activeFrameThreshold {
			a.ActiveFrames++
		}
	}

	a.MovementScore = sum / float64(len(frames)-1) * movementScoreScale
	a.Level = levelForScore(a.MovementScore)
	return a
}

func levelForScore(score float64) ActivityLevel {
	switch {
	case score > dynamicScoreFloor:
		return ActivityDynamic
	case score > moderateScoreFloor:
		return ActivityModerate
	default:
		return ActivityStatic
	}
}
