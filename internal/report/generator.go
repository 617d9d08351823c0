package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ayusman/playsight/internal/evaluation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Summary blend weights: the integrated score carries more weight than the
// evaluation score in the headline number.
const (
	summaryIntegratedWeight = 0.6
	summaryEvaluationWeight = 0.4
)

// Generate composes the comprehensive report from the analysis bundles.
func Generate(in Input) *ComprehensiveReport {
	return &ComprehensiveReport{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Summary:         buildSummary(in),
		Sections:        buildSections(in),
		Insights:        buildInsights(in),
		Profiles:        buildProfiles(in),
		Temporal:        buildTemporal(in),
		Recommendations: buildRecommendations(in),
	}
}

func buildSummary(in Input) ExecutiveSummary {
	overall := int(math.Round(geometry.Clamp(
		summaryIntegratedWeight*in.Integrated.OverallScore+
			summaryEvaluationWeight*float64(in.Evaluation.Scores.Overall), 0, 100)))

	strengths, risks := rankedAreas(in.Evaluation.Scores)

	return ExecutiveSummary{
		OverallScore: overall,
		Grade:        letterGrade(overall),
		TopStrengths: strengths,
		TopRisks:     risks,
		Headline: fmt.Sprintf("Overall interaction quality scored %d/100 (grade %s).",
			overall, letterGrade(overall)),
	}
}

// scoreArea names one evaluation sub-score for ranking.
type scoreArea struct {
	label string
	score int
}

// rankedAreas sorts the seven sub-scores and returns the top 3 as strengths
// and the bottom 3 as risks.
func rankedAreas(s evaluation.Scores) (strengths, risks []string) {
	areas := []scoreArea{
		{"interaction quality", s.InteractionQuality},
		{"development support", s.DevelopmentSupport},
		{"play environment", s.PlayEnvironment},
		{"communication", s.CommunicationScore},
		{"emotional connection", s.EmotionalConnection},
		{"attention span", s.AttentionSpan},
		{"creativity", s.Creativity},
	}
	sort.SliceStable(areas, func(i, j int) bool { return areas[i].score > areas[j].score })

	for _, a := range areas[:3] {
		strengths = append(strengths, fmt.Sprintf("%s (%d)", a.label, a.score))
	}
	for _, a := range areas[len(areas)-3:] {
		risks = append(risks, fmt.Sprintf("%s (%d)", a.label, a.score))
	}
	return strengths, risks
}

// Section score formulas: fixed per-metric weighted averages over the
// integrated signals.
func buildSections(in Input) []Section {
	ig := in.Integrated

	physical := Section{Name: "physical", Score: roundScore(
		0.4*ig.Physical.ProximityScore +
			0.3*ig.Physical.EngagementLevel +
			0.3*ig.Physical.ActivitySync)}
	applySectionRules(&physical, physicalRules)

	verbal := Section{Name: "verbal", Score: roundScore(
		0.5*ig.Language.TurnTakingBalance +
			0.3*evaluation.ResponseScore(ig.Language.AverageResponseTime) +
			0.2*ig.Language.VocabularyVariety)}
	applySectionRules(&verbal, verbalRules)

	emotional := Section{Name: "emotional", Score: roundScore(
		0.4*ig.Emotional.SmileFrequency +
			0.3*ig.Emotional.EyeContactRatio +
			0.3*ig.Emotional.EmotionalSync)}
	applySectionRules(&emotional, emotionalRules)

	return []Section{physical, verbal, emotional}
}

func buildInsights(in Input) []ActionableInsight {
	var out []ActionableInsight
	for _, r := range insightRules {
		if r.matches(in) {
			out = append(out, r.build(in))
		}
	}
	return out
}

func buildProfiles(in Input) []Profile {
	parent := Profile{Role: "parent"}
	applyProfileRules(&parent, in, parentRules)

	child := Profile{Role: "child"}
	applyProfileRules(&child, in, childRules)

	return []Profile{parent, child}
}

// buildTemporal derives the timeline from the optimal-window candidates and
// toy-interaction peaks.
func buildTemporal(in Input) Temporal {
	var t Temporal
	if in.Video == nil {
		return t
	}

	for _, w := range in.Video.OptimalWindows {
		label := "steady play"
		if w.Score >= 70 {
			label = "high engagement"
		}
		t.Segments = append(t.Segments, Segment{
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Label:     label,
			Score:     w.Score,
		})
	}

	for _, p := range in.Video.Toys.Peaks {
		if len(t.PeakMoments) >= 5 {
			break
		}
		t.PeakMoments = append(t.PeakMoments, PeakMoment{
			Time:        p.Time,
			Intensity:   p.Intensity,
			Description: "intense toy play",
		})
	}
	return t
}

func buildRecommendations(in Input) Recommendations {
	r := Recommendations{
		Immediate: []string{
			"Pick the next play session's activity together with your child.",
		},
		ShortTerm: []string{
			"Over the next month, keep a short daily play slot at a consistent time.",
		},
		LongTerm: []string{
			"Revisit the analysis quarterly to track how interaction patterns develop.",
		},
	}

	overall := in.Evaluation.Scores.Overall
	if overall < 70 {
		r.Immediate = append(r.Immediate,
			"Remove screens and other distractions for the length of one play session.")
		r.ShortTerm = append(r.ShortTerm,
			"Practice one focused interaction skill per week, such as narrating play.")
	}
	if in.Video != nil && in.Video.Toys.ToyCount == 0 {
		r.ShortTerm = append(r.ShortTerm,
			"Introduce a few simple toys (a ball or blocks) to anchor shared play.")
	}
	return r
}

func roundScore(v float64) int {
	return int(math.Round(geometry.Clamp(v, 0, 100)))
}
