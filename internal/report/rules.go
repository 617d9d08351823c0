package report

import (
	"fmt"

	"github.com/ayusman/playsight/internal/analysis"
)

// letterGrade maps a 0-100 score onto the report's 8-tier scale. Independent
// of the evaluation package's 4-tier table; the two scales are separate
// contracts for their respective consumers.
func letterGrade(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// sectionRule adds strength or improvement text to a section when its score
// crosses a threshold.
type sectionRule struct {
	minScore int // inclusive; -1 means "below maxScore"
	maxScore int // exclusive when minScore < 0
	text     string
	strength bool
}

var physicalRules = []sectionRule{
	{minScore: 80, text: "Physical play is close and well synchronized.", strength: true},
	{minScore: -1, maxScore: 60, text: "Spend more of the session within arm's reach of the child."},
}

var verbalRules = []sectionRule{
	{minScore: 80, text: "Conversation flows both ways with quick responses.", strength: true},
	{minScore: -1, maxScore: 60, text: "Ask simple open questions and wait for an answer."},
}

var emotionalRules = []sectionRule{
	{minScore: 80, text: "Shared positive affect is frequent and mutual.", strength: true},
	{minScore: -1, maxScore: 60, text: "Build in face-to-face games like peekaboo to invite smiles."},
}

func applySectionRules(s *Section, rules []sectionRule) {
	for _, r := range rules {
		switch {
		case r.minScore >= 0 && s.Score >= r.minScore && r.strength:
			s.Strengths = append(s.Strengths, r.text)
		case r.minScore >= 0 && s.Score >= r.minScore:
			s.Improvements = append(s.Improvements, r.text)
		case r.minScore < 0 && s.Score < r.maxScore && r.strength:
			s.Strengths = append(s.Strengths, r.text)
		case r.minScore < 0 && s.Score < r.maxScore:
			s.Improvements = append(s.Improvements, r.text)
		}
	}
}

// insightRule emits an actionable insight when its predicate fires.
type insightRule struct {
	matches func(Input) bool
	build   func(Input) ActionableInsight
}

var insightRules = []insightRule{
	{
		matches: func(in Input) bool { return in.Gestures != nil && in.Gestures.Sync.Score >= 0.5 },
		build: func(in Input) ActionableInsight {
			return ActionableInsight{
				Signal:      "gesture_sync",
				Observation: fmt.Sprintf("%.0f%% of gestures were synchronized between parent and child.", in.Gestures.Sync.Score*100),
				Suggestion:  "Keep mirroring the child's movements; it reinforces connection.",
			}
		},
	},
	{
		matches: func(in Input) bool { return in.Video != nil && in.Video.Toys.InteractionRatio >= 0.5 },
		build: func(in Input) ActionableInsight {
			return ActionableInsight{
				Signal:      "toy_engagement",
				Observation: "The child spent most of the session engaged with toys.",
				Suggestion:  "Join the toy play and take turns to turn solo play into shared play.",
			}
		},
	},
	{
		matches: func(in Input) bool { return in.Video != nil && in.Video.Emotional.ChildSmilingRatio < 0.1 },
		build: func(in Input) ActionableInsight {
			return ActionableInsight{
				Signal:      "low_smiling",
				Observation: "Very few smiling moments were detected for the child.",
				Suggestion:  "Try higher-energy games the child already enjoys and watch for what sparks laughter.",
			}
		},
	},
	{
		matches: func(in Input) bool { return in.Video != nil && in.Video.Spatial.ProximityRatio < 0.2 && in.Video.Spatial.SampleCount > 0 },
		build: func(in Input) ActionableInsight {
			return ActionableInsight{
				Signal:      "low_proximity",
				Observation: "Parent and child were rarely close to each other during play.",
				Suggestion:  "Sit on the floor at the child's level to make closeness the default.",
			}
		},
	},
}

// profileRule adds templated text to a participant profile.
type profileRule struct {
	matches  func(Input) bool
	text     string
	strength bool
}

var parentRules = []profileRule{
	{func(in Input) bool { return in.Evaluation.Scores.CommunicationScore >= 75 },
		"Talks with the child and responds promptly.", true},
	{func(in Input) bool { return in.Evaluation.Scores.InteractionQuality >= 75 },
		"Stays physically engaged in the child's play.", true},
	{func(in Input) bool { return in.Evaluation.Scores.CommunicationScore < 60 },
		"Could narrate play more and leave pauses for responses.", false},
	{func(in Input) bool { return in.Evaluation.Scores.InteractionQuality < 60 },
		"Could join the child's activity instead of observing.", false},
}

var childRules = []profileRule{
	{func(in Input) bool { return in.Video != nil && in.Video.Emotional.ChildSmilingRatio >= 0.3 },
		"Shows frequent positive affect during play.", true},
	{func(in Input) bool { return in.Video != nil && in.Video.Toys.InteractionRatio >= 0.4 },
		"Engages readily with available toys.", true},
	{func(in Input) bool { return in.Evaluation.Scores.AttentionSpan < 60 },
		"Attention shifts quickly; short structured activities may help.", false},
	{func(in Input) bool { return in.Video != nil && in.Video.Activity.Level == analysis.ActivityStatic },
		"Movement during play was limited; add physical games.", false},
}

func applyProfileRules(p *Profile, in Input, rules []profileRule) {
	for _, r := range rules {
		if !r.matches(in) {
			continue
		}
		if r.strength {
			p.Strengths = append(p.Strengths, r.text)
		} else {
			p.GrowthAreas = append(p.GrowthAreas, r.text)
		}
	}
}
