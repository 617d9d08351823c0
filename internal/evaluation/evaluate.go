package evaluation

import "time"

// Version identifies the evaluation formula set in persisted results.
const Version = "1.2.0"

// Evaluate computes the full evaluation result from integrated signals.
// The scoring itself is pure; only the metadata timestamps the run.
func Evaluate(in IntegratedAnalysis) *Result {
	start := time.Now()

	scores := computeScores(in)

	return &Result{
		Scores:   scores,
		Grade:    GradeForScore(scores.Overall),
		Insights: generateInsights(scores),
		Metadata: Metadata{
			Version:      Version,
			GeneratedAt:  start.UTC().Format(time.RFC3339),
			ProcessingMS: time.Since(start).Milliseconds(),
		},
	}
}
