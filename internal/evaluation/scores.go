package evaluation

import (
	"math"

	"github.com/ayusman/playsight/internal/geometry"
)

// Sub-score weight tables. Each formula's weights sum to 1.0; the overall
// combination is fixed and sums to 1.0 across the seven sub-scores.
const (
	iqProximityWeight  = 0.4
	iqActivityWeight   = 0.3
	iqEngagementWeight = 0.3

	dsVarietyWeight   = 0.4
	dsCreativeWeight  = 0.3
	dsAttentionWeight = 0.3

	peToyWeight        = 0.5
	peMovementWeight   = 0.3
	peEngagementWeight = 0.2

	csResponseWeight  = 0.4
	csUtteranceWeight = 0.3
	csTurnWeight      = 0.3

	ecSmileWeight     = 0.3
	ecEyeWeight       = 0.3
	ecAffectionWeight = 0.2
	ecSyncWeight      = 0.2

	asAttentionWeight = 0.6
	asActivityWeight  = 0.4

	crCreativeWeight   = 0.5
	crVarietyWeight    = 0.3
	crVocabularyWeight = 0.2
)

// Overall combination weights over the seven sub-scores.
const (
	overallInteractionWeight   = 0.25
	overallDevelopmentWeight   = 0.20
	overallEnvironmentWeight   = 0.15
	overallCommunicationWeight = 0.20
	overallEmotionalWeight     = 0.15
	overallAttentionWeight     = 0.03
	overallCreativityWeight    = 0.02
)

// computeScores runs the eight weighted-average formulas over the integrated
// signals. Every score is rounded and clamped to [0,100].
func computeScores(in IntegratedAnalysis) Scores {
	s := Scores{
		InteractionQuality: scoreOf(
			iqProximityWeight*in.Physical.ProximityScore +
				iqActivityWeight*in.Physical.ActivitySync +
				iqEngagementWeight*in.Physical.EngagementLevel),

		DevelopmentSupport: scoreOf(
			dsVarietyWeight*in.Play.PlayVariety +
				dsCreativeWeight*in.Play.CreativePlay +
				dsAttentionWeight*in.Play.AttentionDuration),

		PlayEnvironment: scoreOf(
			peToyWeight*in.Play.ToyEngagement +
				peMovementWeight*in.Physical.MovementVariety +
				peEngagementWeight*in.Physical.EngagementLevel),

		CommunicationScore: scoreOf(
			csResponseWeight*ResponseScore(in.Language.AverageResponseTime) +
				csUtteranceWeight*utteranceScore(in.Language.UtteranceCount) +
				csTurnWeight*in.Language.TurnTakingBalance),

		EmotionalConnection: scoreOf(
			ecSmileWeight*in.Emotional.SmileFrequency +
				ecEyeWeight*in.Emotional.EyeContactRatio +
				ecAffectionWeight*in.Emotional.AffectionSignals +
				ecSyncWeight*in.Emotional.EmotionalSync),

		AttentionSpan: scoreOf(
			asAttentionWeight*in.Play.AttentionDuration +
				asActivityWeight*in.Physical.ActivitySync),

		Creativity: scoreOf(
			crCreativeWeight*in.Play.CreativePlay +
				crVarietyWeight*in.Play.PlayVariety +
				crVocabularyWeight*in.Language.VocabularyVariety),
	}

	s.Overall = scoreOf(
		overallInteractionWeight*float64(s.InteractionQuality) +
			overallDevelopmentWeight*float64(s.DevelopmentSupport) +
			overallEnvironmentWeight*float64(s.PlayEnvironment) +
			overallCommunicationWeight*float64(s.CommunicationScore) +
			overallEmotionalWeight*float64(s.EmotionalConnection) +
			overallAttentionWeight*float64(s.AttentionSpan) +
			overallCreativityWeight*float64(s.Creativity))

	return s
}

// ResponseScore converts the average response time in seconds to a 0-100
// score: one second or faster is 100, each extra second costs 20 points.
// A non-positive time means no response was measured and scores 0, so an
// insufficient-data signal bundle cannot earn communication points.
func ResponseScore(seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return geometry.Clamp(100-(seconds-1)*20, 0, 100)
}

// utteranceScore converts a raw utterance count to a 0-100 score.
func utteranceScore(count float64) float64 {
	return math.Min(100, count*2)
}

func scoreOf(v float64) int {
	return int(math.Round(geometry.Clamp(geometry.Finite(v, 0), 0, 100)))
}
