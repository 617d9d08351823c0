// Package evaluation maps aggregated interaction signals onto the eight
// weighted evaluation scores, the letter grade, and rule-based insight text.
// It consumes already-integrated signals, never raw annotations.
package evaluation

// PhysicalInteraction carries the physical-play signals, each on a 0-100
// scale.
type PhysicalInteraction struct {
	ProximityScore  float64 `json:"proximity_score"`
	ActivitySync    float64 `json:"activity_sync"`
	MovementVariety float64 `json:"movement_variety"`
	EngagementLevel float64 `json:"engagement_level"`
}

// EmotionalInteraction carries the emotional signals, each on a 0-100 scale.
type EmotionalInteraction struct {
	SmileFrequency   float64 `json:"smile_frequency"`
	EyeContactRatio  float64 `json:"eye_contact_ratio"`
	AffectionSignals float64 `json:"affection_signals"`
	EmotionalSync    float64 `json:"emotional_sync"`
}

// LanguageInteraction carries the verbal signals. UtteranceCount is a raw
// count and AverageResponseTime is in seconds; both are converted to 0-100
// scores inside the formulas.
type LanguageInteraction struct {
	UtteranceCount      float64 `json:"utterance_count"`
	AverageResponseTime float64 `json:"average_response_time"`
	TurnTakingBalance   float64 `json:"turn_taking_balance"`
	VocabularyVariety   float64 `json:"vocabulary_variety"`
}

// PlayPatterns carries the play-structure signals, each on a 0-100 scale.
type PlayPatterns struct {
	ToyEngagement     float64 `json:"toy_engagement"`
	PlayVariety       float64 `json:"play_variety"`
	AttentionDuration float64 `json:"attention_duration"`
	CreativePlay      float64 `json:"creative_play"`
}

// IntegratedAnalysis bundles every upstream aggregate signal consumed by the
// evaluation formulas.
type IntegratedAnalysis struct {
	OverallScore float64              `json:"overall_score"`
	Physical     PhysicalInteraction  `json:"physical"`
	Emotional    EmotionalInteraction `json:"emotional"`
	Language     LanguageInteraction  `json:"language"`
	Play         PlayPatterns         `json:"play"`
}

// Scores are the eight named evaluation scores, each clamped to [0,100].
type Scores struct {
	Overall             int `json:"overall"`
	InteractionQuality  int `json:"interaction_quality"`
	DevelopmentSupport  int `json:"development_support"`
	PlayEnvironment     int `json:"play_environment"`
	CommunicationScore  int `json:"communication_score"`
	EmotionalConnection int `json:"emotional_connection"`
	AttentionSpan       int `json:"attention_span"`
	Creativity          int `json:"creativity"`
}

// Insights are the rule-generated advisory strings.
type Insights struct {
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	DevelopmentGoals []string `json:"development_goals"`
	Recommendations  []string `json:"recommendations"`
}

// Metadata describes the evaluation run.
type Metadata struct {
	Version      string `json:"version"`
	GeneratedAt  string `json:"generated_at"` // ISO-8601
	ProcessingMS int64  `json:"processing_ms"`
}

// Result is the full evaluation output.
type Result struct {
	Scores   Scores   `json:"scores"`
	Grade    string   `json:"grade"` // 4-tier A-D
	Insights Insights `json:"insights"`
	Metadata Metadata `json:"metadata"`
}

// DefaultIntegratedAnalysis returns the neutral signal values used when
// upstream data is absent. An evaluation over these defaults produces the
// pinned baseline score.
func DefaultIntegratedAnalysis() IntegratedAnalysis {
	return IntegratedAnalysis{
		OverallScore: 70,
		Physical: PhysicalInteraction{
			ProximityScore:  70,
			ActivitySync:    65,
			MovementVariety: 60,
			EngagementLevel: 75,
		},
		Emotional: EmotionalInteraction{
			SmileFrequency:   65,
			EyeContactRatio:  60,
			AffectionSignals: 55,
			EmotionalSync:    65,
		},
		Language: LanguageInteraction{
			UtteranceCount:      40,
			AverageResponseTime: 2.0,
			TurnTakingBalance:   60,
			VocabularyVariety:   55,
		},
		Play: PlayPatterns{
			ToyEngagement:     65,
			PlayVariety:       60,
			AttentionDuration: 70,
			CreativePlay:      55,
		},
	}
}
