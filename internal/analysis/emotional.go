package analysis

import (
	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// childAreaCutoff separates child detections from parent detections when
// counting child smiling frames. Matches the gesture detector's per-frame
// actor heuristic.
const childAreaCutoff = 0.15

// analyzeEmotional counts smiling and looking_at_camera frames across person
// and face detections and derives the child smiling ratio.
func analyzeEmotional(results *annotation.Results) Emotional {
	var e Emotional

	count := func(tracks []annotation.Track) {
		for _, track := range tracks {
			for _, obj := range track.Objects {
				e.TotalFrames++
				smiling := obj.HasAttribute(annotation.AttrSmiling)
				if smiling {
					e.SmilingFrames++
				}
				if obj.HasAttribute(annotation.AttrLookingAtCamera) {
					e.LookingFrames++
				}

				if geometry.Sanitize(obj.Box).Area() < childAreaCutoff {
					e.ChildTotalFrames++
					if smiling {
						e.ChildSmilingFrames++
					}
				}
			}
		}
	}

	for _, d := range results.PersonDetections {
		count(d.Tracks)
	}
	for _, d := range results.FaceDetections {
		count(d.Tracks)
	}

	// Zero child frames means ratio 0, not a division error.
	if e.ChildTotalFrames > 0 {
		e.ChildSmilingRatio = float64(e.ChildSmilingFrames) / float64(e.ChildTotalFrames)
	}
	return e
}
