// Package report composes the evaluation and analysis outputs into the
// comprehensive report object handed to the persistence and dashboard
// collaborators. Pure composition and templating; no new signal derivation.
package report

import (
	"github.com/ayusman/playsight/internal/analysis"
	"github.com/ayusman/playsight/internal/evaluation"
	"github.com/ayusman/playsight/internal/gesture"
)

// Input bundles everything the generator composes.
type Input struct {
	Video      *analysis.DetailedPlayAnalysis
	Voice      analysis.Voice
	Gestures   *gesture.Analysis
	Integrated evaluation.IntegratedAnalysis
	Evaluation *evaluation.Result
}

// ExecutiveSummary is the report's headline block.
type ExecutiveSummary struct {
	OverallScore int      `json:"overall_score"` // [0,100]
	Grade        string   `json:"grade"`         // 8-tier A+..F
	TopStrengths []string `json:"top_strengths"`
	TopRisks     []string `json:"top_risks"`
	Headline     string   `json:"headline"`
}

// Section is one scored detailed-analysis section.
type Section struct {
	Name         string   `json:"name"`
	Score        int      `json:"score"` // [0,100]
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// ActionableInsight is emitted when a specific signal threshold is crossed.
type ActionableInsight struct {
	Signal      string `json:"signal"`
	Observation string `json:"observation"`
	Suggestion  string `json:"suggestion"`
}

// Profile is a templated participant profile.
type Profile struct {
	Role        string   `json:"role"` // "parent" or "child"
	Strengths   []string `json:"strengths,omitempty"`
	GrowthAreas []string `json:"growth_areas,omitempty"`
}

// Segment is one span of the temporal analysis.
type Segment struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Label     string  `json:"label"`
	Score     float64 `json:"score"` // [0,100]
}

// PeakMoment is a high-intensity point on the timeline.
type PeakMoment struct {
	Time        float64 `json:"time"`
	Intensity   float64 `json:"intensity"` // [0,1]
	Description string  `json:"description"`
}

// Temporal is the timeline portion of the report.
type Temporal struct {
	Segments    []Segment    `json:"segments,omitempty"`
	PeakMoments []PeakMoment `json:"peak_moments,omitempty"`
}

// Recommendations are tiered by time horizon.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// ComprehensiveReport is the composed report object. All fields are plain
// serializable data; timestamps are ISO-8601 strings.
type ComprehensiveReport struct {
	GeneratedAt     string              `json:"generated_at"`
	Summary         ExecutiveSummary    `json:"summary"`
	Sections        []Section           `json:"sections"`
	Insights        []ActionableInsight `json:"insights,omitempty"`
	Profiles        []Profile           `json:"profiles"`
	Temporal        Temporal            `json:"temporal"`
	Recommendations Recommendations     `json:"recommendations"`
}
