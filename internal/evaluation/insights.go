package evaluation

// scoreRule pairs a predicate over the computed scores with a fixed insight
// string. Rules are evaluated in order; every matching rule contributes its
// text.
type scoreRule struct {
	matches func(Scores) bool
	text    string
}

var strengthRules = []scoreRule{
	{func(s Scores) bool { return s.InteractionQuality >= 80 },
		"Parent and child stay closely engaged with each other throughout play."},
	{func(s Scores) bool { return s.EmotionalConnection >= 80 },
		"Warm emotional exchange: plenty of shared smiles and eye contact."},
	{func(s Scores) bool { return s.CommunicationScore >= 80 },
		"Responsive back-and-forth conversation during play."},
	{func(s Scores) bool { return s.AttentionSpan >= 85 },
		"The child sustains attention on play activities for long stretches."},
	{func(s Scores) bool { return s.Creativity >= 80 },
		"Play shows strong variety and imaginative use of toys."},
}

var improvementRules = []scoreRule{
	{func(s Scores) bool { return s.InteractionQuality < 60 },
		"Try positioning closer to your child and mirroring their movements."},
	{func(s Scores) bool { return s.CommunicationScore < 60 },
		"Narrate what your child is doing and leave pauses for them to respond."},
	{func(s Scores) bool { return s.EmotionalConnection < 60 },
		"Add more face-to-face moments so shared smiles come naturally."},
	{func(s Scores) bool { return s.PlayEnvironment < 60 },
		"Rotate a small set of toys to keep the play space inviting but not overwhelming."},
	{func(s Scores) bool { return s.Creativity < 55 },
		"Introduce open-ended materials like blocks to invite imaginative play."},
}

// Development goals: fixed boilerplate plus score-conditioned additions.
var baseDevelopmentGoals = []string{
	"Keep a regular daily play time so interaction becomes routine.",
	"Follow the child's lead: let them choose the activity and pace.",
}

var developmentGoalRules = []scoreRule{
	{func(s Scores) bool { return s.DevelopmentSupport < 70 },
		"Add one new play activity each week to broaden developmental range."},
	{func(s Scores) bool { return s.AttentionSpan < 70 },
		"Gradually extend single-activity play before switching toys."},
}

// Recommendation tiers keyed on the overall score.
const (
	recommendationHighTier = 85
	recommendationMidTier  = 70
)

var (
	highTierRecommendations = []string{
		"Interaction quality is excellent. Keep the current play routine going.",
		"Consider recording sessions monthly to watch development over time.",
	}
	midTierRecommendations = []string{
		"Interaction is on a good track. Focus on the one or two lowest-scoring areas.",
		"Short, frequent play sessions tend to work better than rare long ones.",
	}
	lowTierRecommendations = []string{
		"Start with five minutes of fully focused one-on-one play each day.",
		"Reduce background distractions (screens, noise) during play time.",
		"Celebrate small moments of connection: a shared look or laugh counts.",
	}
)

// generateInsights evaluates every rule table against the computed scores.
func generateInsights(s Scores) Insights {
	in := Insights{
		DevelopmentGoals: append([]string{}, baseDevelopmentGoals...),
	}

	for _, r := range strengthRules {
		if r.matches(s) {
			in.Strengths = append(in.Strengths, r.text)
		}
	}
	for _, r := range improvementRules {
		if r.matches(s) {
			in.Improvements = append(in.Improvements, r.text)
		}
	}
	for _, r := range developmentGoalRules {
		if r.matches(s) {
			in.DevelopmentGoals = append(in.DevelopmentGoals, r.text)
		}
	}

	switch {
	case s.Overall >= recommendationHighTier:
		in.Recommendations = append([]string{}, highTierRecommendations...)
	case s.Overall >= recommendationMidTier:
		in.Recommendations = append([]string{}, midTierRecommendations...)
	default:
		in.Recommendations = append([]string{}, lowTierRecommendations...)
	}

	return in
}
