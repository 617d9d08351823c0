package gesture

import (
	"sort"

	"github.com/ayusman/playsight/internal/geometry"
)

// minPatternSignificance drops noise patterns: patterns scoring at or below
// this are not reported.
const minPatternSignificance = 0.3

// Per-type importance weights used in the significance score. Joint affection
// and cooperation gestures matter most; background postures least.
var gestureImportance = map[Type]float64{
	TypeHugging:      1.00,
	TypeHighFive:     0.90,
	TypeHoldingHands: 0.90,
	TypeGiving:       0.85,
	TypeShowing:      0.75,
	TypePointing:     0.70,
	TypeWaving:       0.70,
	TypeJumping:      0.60,
	TypeReaching:     0.60,
	TypeTouching:     0.60,
	TypePickingUp:    0.55,
	TypePuttingDown:  0.50,
	TypeRunning:      0.50,
	TypeLeaning:      0.45,
	TypeWalking:      0.40,
	TypeStretching:   0.40,
	TypeStanding:     0.30,
	TypeSitting:      0.30,
}

// Fixed context-inference table keyed by gesture type.
var gestureContexts = map[Type]string{
	TypeHugging:      "affection",
	TypeHoldingHands: "affection",
	TypeHighFive:     "celebration",
	TypeGiving:       "cooperation",
	TypePointing:     "object_focus",
	TypeShowing:      "object_focus",
	TypeReaching:     "object_focus",
	TypePickingUp:    "object_play",
	TypePuttingDown:  "object_play",
	TypeTouching:     "object_play",
	TypeWaving:       "greeting",
	TypeJumping:      "excitement",
	TypeRunning:      "locomotion",
	TypeWalking:      "locomotion",
	TypeLeaning:      "attention",
	TypeStretching:   "movement",
	TypeStanding:     "posture",
	TypeSitting:      "posture",
}

func contextForType(t Type) string {
	if ctx, ok := gestureContexts[t]; ok {
		return ctx
	}
	return "general"
}

// aggregatePatterns groups surviving gestures by type and scores each group's
// significance. Groups at or below minPatternSignificance are dropped.
func aggregatePatterns(gestures []DetectedGesture) []Pattern {
	byType := make(map[Type][]DetectedGesture)
	for _, g := range gestures {
		byType[g.Type] = append(byType[g.Type], g)
	}

	var patterns []Pattern
	for gestureType, group := range byType {
		p := Pattern{
			Type:            gestureType,
			Frequency:       len(group),
			AverageDuration: averageDuration(group),
			DominantActor:   dominantActor(group),
			DominantContext: dominantContext(group),
		}

		// Significance blends how often and how long the gesture occurs with
		// how much the gesture type matters for parent-child interaction.
		normFreq := geometry.Clamp(float64(p.Frequency)/10, 0, 1)
		normDur := geometry.Clamp(p.AverageDuration/5, 0, 1)
		p.Significance = 0.4*normFreq + 0.3*normDur + 0.3*gestureImportance[gestureType]

		if p.Significance > minPatternSignificance {
			patterns = append(patterns, p)
		}
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Significance != patterns[j].Significance {
			return patterns[i].Significance > patterns[j].Significance
		}
		return patterns[i].Type < patterns[j].Type
	})
	return patterns
}

func averageDuration(group []DetectedGesture) float64 {
	if len(group) == 0 {
		return 0
	}
	var total float64
	for _, g := range group {
		total += g.EndTime - g.StartTime
	}
	return total / float64(len(group))
}

// dominantActor returns the actor performing the plurality of the group.
func dominantActor(group []DetectedGesture) Actor {
	counts := make(map[Actor]int)
	for _, g := range group {
		counts[g.Actor]++
	}
	best := ActorChild
	bestCount := -1
	for _, actor := range []Actor{ActorParent, ActorChild, ActorBoth} {
		if counts[actor] > bestCount {
			best = actor
			bestCount = counts[actor]
		}
	}
	return best
}

// dominantContext returns the plurality context across the group.
func dominantContext(group []DetectedGesture) string {
	counts := make(map[string]int)
	for _, g := range group {
		counts[g.Context]++
	}
	best := "general"
	bestCount := 0
	// Deterministic tie-break: lexicographic context name.
	keys := make([]string, 0, len(counts))
	for ctx := range counts {
		keys = append(keys, ctx)
	}
	sort.Strings(keys)
	for _, ctx := range keys {
		if counts[ctx] > bestCount {
			best = ctx
			bestCount = counts[ctx]
		}
	}
	return best
}
