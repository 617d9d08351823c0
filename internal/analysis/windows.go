package analysis

import (
	"sort"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Fixed 30-second sample windows evaluated as optimal-play candidates.
var sampleWindows = [][2]float64{
	{0, 30},
	{30, 60},
	{60, 90},
}

// Window scoring: every window starts at the base and accumulates bonuses for
// the signals that mark engaged play.
const (
	windowBaseScore     = 50.0
	smilingBonus        = 20.0
	proximityBonus      = 15.0
	activityBonus       = 15.0
	windowSmilingFloor  = 0.2
	windowProximityLow  = 0.3
	windowProximityHigh = 0.8
	returnedWindows     = 2
)

// findOptimalWindows scores the fixed sample windows against smiling,
// proximity and activity aggregates restricted to each window, and returns
// the top candidates with their accumulated reasons.
func findOptimalWindows(results *annotation.Results) []OptimalWindow {
	windows := make([]OptimalWindow, 0, len(sampleWindows))
	for _, span := range sampleWindows {
		w := OptimalWindow{StartTime: span[0], EndTime: span[1], Score: windowBaseScore}

		if windowSmilingRatio(results, span) > windowSmilingFloor {
			w.Score += smilingBonus
			w.Reasons = append(w.Reasons, "frequent smiling")
		}

		prox := windowProximityRatio(results, span)
		if prox > windowProximityLow && prox < windowProximityHigh {
			w.Score += proximityBonus
			w.Reasons = append(w.Reasons, "comfortable proximity")
		}

		if windowActivityLevel(results, span) != ActivityStatic {
			w.Score += activityBonus
			w.Reasons = append(w.Reasons, "active play")
		}

		w.Score = geometry.Clamp(w.Score, 0, 100)
		windows = append(windows, w)
	}

	sort.SliceStable(windows, func(i, j int) bool { return windows[i].Score > windows[j].Score })
	if len(windows) > returnedWindows {
		windows = windows[:returnedWindows]
	}
	return windows
}

func inWindow(t float64, span [2]float64) bool {
	return t >= span[0] && t < span[1]
}

// windowSmilingRatio is the smiling-frame fraction across all person and face
// detections inside the window.
func windowSmilingRatio(results *annotation.Results, span [2]float64) float64 {
	total, smiling := 0, 0
	count := func(tracks []annotation.Track) {
		for _, track := range tracks {
			for _, obj := range track.Objects {
				if !inWindow(obj.TimeOffset, span) {
					continue
				}
				total++
				if obj.HasAttribute(annotation.AttrSmiling) {
					smiling++
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
	if total == 0 {
		return 0
	}
	return float64(smiling) / float64(total)
}

// windowProximityRatio is the close-frame fraction of the aligned
// parent/child track frames inside the window.
func windowProximityRatio(results *annotation.Results, span [2]float64) float64 {
	persons := results.PersonTracks()
	if len(persons) < 2 {
		return 0
	}

	parent, child := persons[0], persons[1]
	n := len(parent.Frames)
	if len(child.Frames) < n {
		n = len(child.Frames)
	}

	total, close := 0, 0
	for i := 0; i < n; i++ {
		if !inWindow(parent.Frames[i].TimeOffset, span) {
			continue
		}
		total++
		if geometry.BoxDistance(parent.Frames[i].Box, child.Frames[i].Box) <= CloseProximity {
			close++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(close) / float64(total)
}

// windowActivityLevel is the activity level of the first person track
// restricted to the window.
func windowActivityLevel(results *annotation.Results, span [2]float64) ActivityLevel {
	persons := results.PersonTracks()
	if len(persons) == 0 {
		return ActivityStatic
	}

	var sum float64
	samples := 0
	frames := persons[0].Frames
	for i := 1; i < len(frames); i++ {
		if !inWindow(frames[i].TimeOffset, span) {
			continue
		}
		sum += geometry.Compute(frames[i-1].Box, frames[i].Box).Speed
		samples++
	}
	if samples == 0 {
		return ActivityStatic
	}
	return levelForScore(sum / float64(samples) * movementScoreScale)
}
