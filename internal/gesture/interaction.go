package gesture

import (
	"math"
	"sort"

	"github.com/ayusman/playsight/internal/geometry"
)

// maxInteractionGap is the largest silence between consecutive gestures that
// still belong to the same interaction cluster, in seconds.
const maxInteractionGap = 2.0

// interactionContexts marks single-actor gesture contexts that still count as
// interaction material when clustering.
var interactionContexts = map[string]bool{
	"affection":    true,
	"celebration":  true,
	"cooperation":  true,
	"greeting":     true,
	"object_focus": true,
}

// isInteractionGesture reports whether a gesture participates in
// interaction clustering.
func isInteractionGesture(g DetectedGesture) bool {
	return g.Actor == ActorBoth || interactionContexts[g.Context]
}

// groupInteractions clusters interaction gestures that occur within
// maxInteractionGap of each other and classifies each cluster.
func groupInteractions(gestures []DetectedGesture) []Interaction {
	var candidates []DetectedGesture
	for _, g := range gestures {
		if isInteractionGesture(g) {
			candidates = append(candidates, g)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].StartTime < candidates[j].StartTime
	})

	var interactions []Interaction
	group := []DetectedGesture{candidates[0]}
	for _, g := range candidates[1:] {
		last := group[len(group)-1]
		if g.StartTime-last.EndTime <= maxInteractionGap {
			group = append(group, g)
			continue
		}
		interactions = append(interactions, buildInteraction(group))
		group = []DetectedGesture{g}
	}
	interactions = append(interactions, buildInteraction(group))
	return interactions
}

// buildInteraction classifies and scores one gesture cluster.
func buildInteraction(group []DetectedGesture) Interaction {
	var confSum, intSum float64
	types := make(map[Type]bool)
	actorTypes := make(map[Actor]map[Type]bool)
	actorCounts := make(map[Actor]int)

	start := group[0].StartTime
	end := group[0].EndTime
	for _, g := range group {
		confSum += g.Confidence
		intSum += g.Intensity
		types[g.Type] = true
		if actorTypes[g.Actor] == nil {
			actorTypes[g.Actor] = make(map[Type]bool)
		}
		actorTypes[g.Actor][g.Type] = true
		actorCounts[g.Actor]++
		if g.StartTime < start {
			start = g.StartTime
		}
		if g.EndTime > end {
			end = g.EndTime
		}
	}

	n := float64(len(group))
	duration := end - start

	quality := geometry.Clamp(
		0.4*(confSum/n)+0.3*(intSum/n)+0.3*math.Min(1, duration/10), 0, 1)

	return Interaction{
		Type:         classifyInteraction(types, actorTypes),
		Participants: participants(actorCounts),
		StartTime:    start,
		EndTime:      end,
		GestureCount: len(group),
		Quality:      quality,
		Mutuality:    mutuality(actorCounts),
	}
}

// classifyInteraction picks the cluster type by a first-match priority list
// over the gesture types present.
func classifyInteraction(types map[Type]bool, actorTypes map[Actor]map[Type]bool) InteractionType {
	switch {
	case types[TypeGiving] || (types[TypePickingUp] && types[TypePuttingDown]):
		return InteractionCooperative
	case sharedType(actorTypes):
		return InteractionImitative
	case types[TypeJumping] || types[TypeRunning] || types[TypeHighFive]:
		return InteractionPlayful
	case types[TypeHugging] || types[TypeHoldingHands]:
		return InteractionSupportive
	case types[TypePointing] || types[TypeShowing]:
		return InteractionGuiding
	default:
		return InteractionResponsive
	}
}

// sharedType reports whether parent and child both performed some same
// gesture type within the cluster.
func sharedType(actorTypes map[Actor]map[Type]bool) bool {
	for t := range actorTypes[ActorParent] {
		if actorTypes[ActorChild][t] {
			return true
		}
	}
	return false
}

// mutuality measures the balance of contribution between the two actors:
// 1 means perfectly balanced, 0 means one actor did everything. Joint
// gestures count toward both sides.
func mutuality(actorCounts map[Actor]int) float64 {
	parent := actorCounts[ActorParent] + actorCounts[ActorBoth]
	child := actorCounts[ActorChild] + actorCounts[ActorBoth]
	total := parent + child
	if total == 0 {
		return 0
	}
	imbalance := math.Abs(float64(parent)-float64(child)) / float64(total)
	return geometry.Clamp(1-imbalance, 0, 1)
}

func participants(actorCounts map[Actor]int) []Actor {
	var out []Actor
	for _, actor := range []Actor{ActorParent, ActorChild} {
		if actorCounts[actor] > 0 || actorCounts[ActorBoth] > 0 {
			out = append(out, actor)
		}
	}
	return out
}
