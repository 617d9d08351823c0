package analysis

import (
	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Engagement score weights over the three primary signals. Smiling and
// proximity ratios enter as percentages so all three terms share the 0-100
// scale.
const (
	engagementSmilingWeight   = 0.3
	engagementProximityWeight = 0.3
	engagementMovementWeight  = 0.4
)

// Analyze runs every sub-analysis over the annotation results and derives the
// overall engagement score. Pure and deterministic; a nil or empty input
// yields a zeroed analysis rather than an error, which downstream consumers
// surface as an insufficient-data state.
func Analyze(results *annotation.Results) *DetailedPlayAnalysis {
	if results == nil {
		results = &annotation.Results{}
	}

	a := &DetailedPlayAnalysis{
		Emotional:      analyzeEmotional(results),
		Spatial:        analyzeSpatial(results),
		Activity:       analyzeActivity(results),
		Toys:           analyzeToys(results),
		Voice:          analyzeSpeech(results.SpeechTranscriptions),
		OptimalWindows: findOptimalWindows(results),
	}

	a.EngagementScore = geometry.Clamp(
		engagementSmilingWeight*a.Emotional.ChildSmilingRatio*100+
			engagementProximityWeight*a.Spatial.ProximityRatio*100+
			engagementMovementWeight*a.Activity.MovementScore,
		0, 100)

	return a
}
