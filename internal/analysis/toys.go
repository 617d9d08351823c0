package analysis

import (
	"math"
	"strings"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Toy-interaction thresholds.
const (
	toyInteractionDistance = 0.4
	peakIntensityFloor     = 0.5
	maxPeaks               = 20
)

// toyKeywords matches object entity descriptions that count as toys.
var toyKeywords = []string{"toy", "ball", "doll", "block"}

func isToy(entity string) bool {
	entity = strings.ToLower(entity)
	for _, kw := range toyKeywords {
		if strings.Contains(entity, kw) {
			return true
		}
	}
	return false
}

// analyzeToys measures per-frame child-to-toy distance: frames within
// toyInteractionDistance count as interaction frames, and strong spikes are
// recorded as timestamped intensity peaks (capped at maxPeaks).
func analyzeToys(results *annotation.Results) ToyInteraction {
	var toys []annotation.ObjectTrack
	for _, track := range results.ObjectTracks {
		if isToy(track.Entity) {
			toys = append(toys, track)
		}
	}

	t := ToyInteraction{ToyCount: len(toys)}
	child := childTrack(results)
	if child == nil || len(toys) == 0 {
		return t
	}

	t.TotalFrames = len(child.Frames)
	for i, frame := range child.Frames {
		minDist := math.Inf(1)
		for _, toy := range toys {
			if i >= len(toy.Frames) {
				continue
			}
			d := geometry.BoxDistance(frame.Box, toy.Frames[i].Box)
			minDist = math.Min(minDist, d)
		}
		if math.IsInf(minDist, 1) {
			continue
		}

		if minDist <= toyInteractionDistance {
			t.InteractionFrames++
		}

		intensity := geometry.Clamp(1-minDist/toyInteractionDistance, 0, 1)
		if intensity > peakIntensityFloor && len(t.Peaks) < maxPeaks {
			t.Peaks = append(t.Peaks, IntensityPeak{Time: frame.TimeOffset, Intensity: intensity})
		}
	}

	if t.TotalFrames > 0 {
		t.InteractionRatio = float64(t.InteractionFrames) / float64(t.TotalFrames)
	}
	return t
}

// childTrack picks the child person track by array order: the second person
// track when two exist, otherwise the only one.
func childTrack(results *annotation.Results) *annotation.ObjectTrack {
	persons := results.PersonTracks()
	switch {
	case len(persons) >= 2:
		return &persons[1]
	case len(persons) == 1:
		return &persons[0]
	default:
		return nil
	}
}
