package app

import (
	"github.com/ayusman/playsight/internal/analysis"
	"github.com/ayusman/playsight/internal/evaluation"
	"github.com/ayusman/playsight/internal/geometry"
	"github.com/ayusman/playsight/internal/gesture"
)

// Integrated overall-score weights over the three headline signals.
const (
	integratedEngagementWeight = 0.4
	integratedSyncWeight       = 0.3
	integratedProximityWeight  = 0.3
)

// Integrate maps the analyzer outputs onto the aggregated signal bundle the
// evaluation system consumes. Signals the analyzers could not derive fall
// back to the neutral defaults; a session with no person data at all yields a
// zero overall score so the dashboard can render an insufficient-data state.
func Integrate(video *analysis.DetailedPlayAnalysis, gestures *gesture.Analysis) evaluation.IntegratedAnalysis {
	in := evaluation.DefaultIntegratedAnalysis()

	hasPersons := video != nil &&
		(video.Spatial.SampleCount > 0 || video.Activity.TotalFrames > 0 || video.Emotional.TotalFrames > 0)
	if !hasPersons {
		return evaluation.IntegratedAnalysis{}
	}

	syncScore := gestures.Sync.Score * 100

	// Physical.
	if video.Spatial.SampleCount > 0 {
		in.Physical.ProximityScore = video.Spatial.ProximityRatio * 100
	}
	if len(gestures.Gestures) > 0 {
		in.Physical.ActivitySync = syncScore
		in.Physical.MovementVariety = pct(distinctTypes(gestures), 8)
	}
	if video.EngagementScore > 0 {
		in.Physical.EngagementLevel = video.EngagementScore
	}

	// Emotional.
	if video.Emotional.TotalFrames > 0 {
		in.Emotional.SmileFrequency = video.Emotional.ChildSmilingRatio * 100
		in.Emotional.EyeContactRatio = pct(video.Emotional.LookingFrames, video.Emotional.TotalFrames)
	}
	if n := affectionGestures(gestures); n > 0 {
		in.Emotional.AffectionSignals = geometry.Clamp(float64(n)*20, 0, 100)
	}
	if len(gestures.Gestures) > 0 {
		in.Emotional.EmotionalSync = syncScore
	}

	// Language.
	if video.Voice.UtteranceCount > 0 {
		in.Language.UtteranceCount = float64(video.Voice.UtteranceCount)
		in.Language.TurnTakingBalance = video.Voice.TurnTakingBalance * 100
		in.Language.VocabularyVariety = geometry.Clamp(float64(video.Voice.DistinctWords)*4, 0, 100)
		if video.Voice.AverageResponseTime > 0 {
			in.Language.AverageResponseTime = video.Voice.AverageResponseTime
		}
	}

	// Play patterns.
	if video.Toys.TotalFrames > 0 {
		in.Play.ToyEngagement = video.Toys.InteractionRatio * 100
		in.Play.CreativePlay = geometry.Clamp(float64(len(video.Toys.Peaks))*8, 0, 100)
	}
	if len(gestures.Patterns) > 0 {
		in.Play.PlayVariety = pct(len(gestures.Patterns), 8)
	}
	if len(gestures.Interactions) > 0 {
		in.Play.AttentionDuration = geometry.Clamp(avgInteractionDuration(gestures)*10, 0, 100)
	}

	in.OverallScore = geometry.Clamp(
		integratedEngagementWeight*in.Physical.EngagementLevel+
			integratedSyncWeight*in.Emotional.EmotionalSync+
			integratedProximityWeight*in.Physical.ProximityScore,
		0, 100)

	return in
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return geometry.Clamp(float64(n)/float64(total)*100, 0, 100)
}

func distinctTypes(a *gesture.Analysis) int {
	types := make(map[gesture.Type]bool)
	for _, g := range a.Gestures {
		types[g.Type] = true
	}
	return len(types)
}

func affectionGestures(a *gesture.Analysis) int {
	n := 0
	for _, g := range a.Gestures {
		switch g.Type {
		case gesture.TypeHugging, gesture.TypeHoldingHands, gesture.TypeHighFive:
			n++
		}
	}
	return n
}

func avgInteractionDuration(a *gesture.Analysis) float64 {
	if len(a.Interactions) == 0 {
		return 0
	}
	var total float64
	for _, i := range a.Interactions {
		total += i.EndTime - i.StartTime
	}
	return total / float64(len(a.Interactions))
}
