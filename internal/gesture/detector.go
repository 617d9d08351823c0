package gesture

import (
	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// postureSampleStride limits how often a posture gesture is emitted: one per
// this many frames per actor, to keep static postures from flooding the
// output.
const postureSampleStride = 5

// Analyze classifies all gestures and interaction events in the annotation
// results. The function is pure and deterministic: identical input produces
// identical output.
//
// Only gestures with Confidence >= ConfidenceFloor appear in the result.
func Analyze(results *annotation.Results) *Analysis {
	a := &Analysis{}
	if results == nil {
		return a
	}

	parentFrames, childFrames := splitActors(results.PersonDetections)

	a.Gestures = append(a.Gestures, actorGestures(ActorParent, parentFrames, results.ObjectTracks)...)
	a.Gestures = append(a.Gestures, actorGestures(ActorChild, childFrames, results.ObjectTracks)...)
	a.Gestures = append(a.Gestures, pairGestures(parentFrames, childFrames)...)

	a.Patterns = aggregatePatterns(a.Gestures)
	a.Interactions = groupInteractions(a.Gestures)
	a.Sync = analyzeSync(a.Gestures)
	return a
}

// actorGestures classifies one actor's frame series: movement gestures per
// consecutive frame pair, sampled posture gestures, and object interactions
// against nearby object tracks.
func actorGestures(actor Actor, frames []actorFrame, tracks []annotation.ObjectTrack) []DetectedGesture {
	var gestures []DetectedGesture

	for i := 1; i < len(frames); i++ {
		prev, curr := frames[i-1], frames[i]
		m := geometry.Compute(prev.box, curr.box)

		// Movement gesture for this frame pair.
		if g, ok := movementGesture(actor, prev, curr, m); ok {
			gestures = append(gestures, g)
		}

		// Posture is sampled rather than emitted every frame.
		if i%postureSampleStride == 0 {
			if g, ok := postureGesture(actor, curr); ok {
				gestures = append(gestures, g)
			}
		}

		// Object interactions against the closest object of each nearby track.
		for _, obj := range findNearbyObjects(tracks, curr.box, curr.time) {
			if g, ok := objectGesture(actor, curr, m, obj); ok {
				gestures = append(gestures, g)
			}
		}
	}

	return gestures
}

func movementGesture(actor Actor, prev, curr actorFrame, m geometry.Movement) (DetectedGesture, bool) {
	gestureType := classifyMovement(m)
	confidence := movementConfidence(gestureType, m)
	if confidence < ConfidenceFloor {
		return DetectedGesture{}, false
	}
	return DetectedGesture{
		Actor:       actor,
		Type:        gestureType,
		StartTime:   prev.time,
		EndTime:     curr.time,
		Confidence:  confidence,
		Intensity:   movementIntensity(m),
		Box:         curr.box,
		Description: describeGesture(actor, gestureType, m),
		Context:     contextForType(gestureType),
	}, true
}

func postureGesture(actor Actor, f actorFrame) (DetectedGesture, bool) {
	gestureType := classifyPosture(f.box)
	confidence := postureConfidence(gestureType, f.box)
	if confidence < ConfidenceFloor {
		return DetectedGesture{}, false
	}
	return DetectedGesture{
		Actor:       actor,
		Type:        gestureType,
		StartTime:   f.time,
		EndTime:     f.time,
		Confidence:  confidence,
		Intensity:   geometry.Clamp(f.box.Area()*3, 0, 1),
		Box:         f.box,
		Description: describeGesture(actor, gestureType, geometry.Movement{Direction: geometry.DirStationary}),
		Context:     contextForType(gestureType),
	}, true
}

func objectGesture(actor Actor, f actorFrame, m geometry.Movement, obj nearbyObject) (DetectedGesture, bool) {
	gestureType := classifyObjectInteraction(m, obj.distance)
	confidence := objectConfidence(gestureType, obj.distance)
	if confidence < ConfidenceFloor {
		return DetectedGesture{}, false
	}
	return DetectedGesture{
		Actor:       actor,
		Type:        gestureType,
		StartTime:   f.time,
		EndTime:     f.time,
		Confidence:  confidence,
		Intensity:   objectIntensity(obj.distance),
		Box:         f.box,
		Description: describeObjectGesture(actor, gestureType, obj.entity),
		Context:     contextForType(gestureType),
	}, true
}

// pairGestures classifies joint gestures over synchronized frame pairs: the
// same index across the parent and child series.
func pairGestures(parentFrames, childFrames []actorFrame) []DetectedGesture {
	n := len(parentFrames)
	if len(childFrames) < n {
		n = len(childFrames)
	}

	var gestures []DetectedGesture
	for i := 0; i < n; i++ {
		g := classifyPair(parentFrames[i], childFrames[i])
		if g == nil || g.Confidence < ConfidenceFloor {
			continue
		}
		gestures = append(gestures, *g)
	}
	return gestures
}
