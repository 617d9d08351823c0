// Package analysis computes emotional, spatial, activity, toy-interaction and
// optimal-window metrics directly from raw annotation results. Every analyzer
// is a pure reduction with graceful degradation: missing or degenerate input
// yields zeroed metrics, never NaN, Inf or an error.
package analysis

// ActivityLevel buckets the overall movement intensity of the session.
type ActivityLevel string

const (
	ActivityStatic   ActivityLevel = "static"
	ActivityModerate ActivityLevel = "moderate"
	ActivityDynamic  ActivityLevel = "dynamic"
)

// Emotional summarizes smiling and gaze attributes across person and face
// detections.
type Emotional struct {
	SmilingFrames      int     `json:"smiling_frames"`
	LookingFrames      int     `json:"looking_frames"`
	TotalFrames        int     `json:"total_frames"`
	ChildSmilingFrames int     `json:"child_smiling_frames"`
	ChildTotalFrames   int     `json:"child_total_frames"`
	ChildSmilingRatio  float64 `json:"child_smiling_ratio"` // [0,1]
}

// Spatial summarizes parent-child proximity over time.
type Spatial struct {
	AverageDistance float64 `json:"average_distance"`
	MinDistance     float64 `json:"min_distance"`
	MaxDistance     float64 `json:"max_distance"`
	ProximityRatio  float64 `json:"proximity_ratio"` // fraction of frames within CloseProximity
	SampleCount     int     `json:"sample_count"`
}

// Activity summarizes movement intensity for the primary person track.
type Activity struct {
	MovementScore float64       `json:"movement_score"` // scaled average movement
	Level         ActivityLevel `json:"level"`
	ActiveFrames  int           `json:"active_frames"`
	TotalFrames   int           `json:"total_frames"`
}

// IntensityPeak is a timestamped toy-interaction intensity spike.
type IntensityPeak struct {
	Time      float64 `json:"time"`
	Intensity float64 `json:"intensity"` // [0,1]
}

// ToyInteraction summarizes how often the child engages with detected toys.
type ToyInteraction struct {
	ToyCount          int             `json:"toy_count"`
	InteractionFrames int             `json:"interaction_frames"`
	TotalFrames       int             `json:"total_frames"`
	InteractionRatio  float64         `json:"interaction_ratio"` // [0,1]
	Peaks             []IntensityPeak `json:"peaks,omitempty"`
}

// OptimalWindow is a candidate high-engagement time span.
type OptimalWindow struct {
	StartTime float64  `json:"start_time"`
	EndTime   float64  `json:"end_time"`
	Score     float64  `json:"score"` // [0,100]
	Reasons   []string `json:"reasons,omitempty"`
}

// Voice summarizes the speech transcription signals used by the report.
type Voice struct {
	UtteranceCount      int     `json:"utterance_count"`
	WordCount           int     `json:"word_count"`
	DistinctWords       int     `json:"distinct_words"`
	SpeakerTurns        int     `json:"speaker_turns"`
	TurnTakingBalance   float64 `json:"turn_taking_balance"`   // [0,1]
	AverageResponseTime float64 `json:"average_response_time"` // seconds
}

// DetailedPlayAnalysis bundles every sub-analysis plus the engagement score.
type DetailedPlayAnalysis struct {
	Emotional       Emotional       `json:"emotional"`
	Spatial         Spatial         `json:"spatial"`
	Activity        Activity        `json:"activity"`
	Toys            ToyInteraction  `json:"toys"`
	Voice           Voice           `json:"voice"`
	OptimalWindows  []OptimalWindow `json:"optimal_windows,omitempty"`
	EngagementScore float64         `json:"engagement_score"` // [0,100]
}
