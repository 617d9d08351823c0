package annotation

import (
	"context"
	"math"
)

// FixtureProvider is a Provider that returns a deterministic synthetic play
// session instead of calling an annotation backend. It is used for local
// development and tests when no backend is configured.
type FixtureProvider struct {
	// Duration is the length of the synthetic session in seconds.
	Duration float64
}

// NewFixtureProvider creates a FixtureProvider with a 90-second session.
func NewFixtureProvider() *FixtureProvider {
	return &FixtureProvider{Duration: 90}
}

// Annotate returns the synthetic session. The URI is ignored.
func (p *FixtureProvider) Annotate(_ context.Context, _ string) (*Results, error) {
	return PlaySessionFixture(p.Duration), nil
}

// Fixture frame rate: one annotation frame per second keeps the synthetic
// session small while still exercising every analyzer.
const fixtureFrameInterval = 1.0

// PlaySessionFixture builds a synthetic parent-child play session of the given
// duration: a larger "parent" figure near the top of frame, a smaller "child"
// figure that drifts toward the parent, a ball close to the child, and a short
// two-speaker transcript. Output is deterministic for a given duration.
func PlaySessionFixture(duration float64) *Results {
	if duration <= 0 {
		duration = 90
	}

	var parentFrames, childFrames, ballFrames []ObjectFrame
	var parentObjs, childObjs []TimestampedObject

	for t := 0.0; t < duration; t += fixtureFrameInterval {
		// Parent sways gently around the upper half of the frame.
		px := 0.30 + 0.05*math.Sin(t/7)
		parentBox := BoundingBox{Left: px, Top: 0.10, Right: px + 0.30, Bottom: 0.80}

		// Child starts apart and drifts toward the parent, bouncing a little.
		approach := 0.25 * math.Min(1, t/(duration*0.6))
		cx := 0.70 - approach + 0.03*math.Sin(t/2)
		cy := 0.45 + 0.04*math.Sin(t/1.5)
		childBox := BoundingBox{Left: cx, Top: cy, Right: cx + 0.15, Bottom: cy + 0.35}

		// Ball stays near the child's hands.
		ballBox := BoundingBox{Left: cx - 0.05, Top: cy + 0.20, Right: cx + 0.03, Bottom: cy + 0.28}

		parentFrames = append(parentFrames, ObjectFrame{Box: parentBox, TimeOffset: t})
		childFrames = append(childFrames, ObjectFrame{Box: childBox, TimeOffset: t})
		ballFrames = append(ballFrames, ObjectFrame{Box: ballBox, TimeOffset: t})

		// The child smiles during the middle stretch of the session.
		smiling := "false"
		if t > duration*0.3 && t < duration*0.8 {
			smiling = "true"
		}
		looking := "false"
		if int(t)%5 == 0 {
			looking = "true"
		}

		parentObjs = append(parentObjs, TimestampedObject{
			Box:        parentBox,
			TimeOffset: t,
			Attributes: []Attribute{
				{Name: AttrSmiling, Value: "true", Confidence: 0.9},
			},
		})
		childObjs = append(childObjs, TimestampedObject{
			Box:        childBox,
			TimeOffset: t,
			Attributes: []Attribute{
				{Name: AttrSmiling, Value: smiling, Confidence: 0.85},
				{Name: AttrLookingAtCamera, Value: looking, Confidence: 0.8},
			},
		})
	}

	return &Results{
		ObjectTracks: []ObjectTrack{
			{Entity: "person", Confidence: 0.95, Frames: parentFrames},
			{Entity: "person", Confidence: 0.92, Frames: childFrames},
			{Entity: "ball", Confidence: 0.88, Frames: ballFrames},
		},
		PersonDetections: []PersonDetection{
			{Tracks: []Track{{Confidence: 0.95, Objects: parentObjs}}},
			{Tracks: []Track{{Confidence: 0.92, Objects: childObjs}}},
		},
		FaceDetections: []FaceDetection{
			{Tracks: []Track{{Confidence: 0.9, Objects: childObjs}}},
		},
		SpeechTranscriptions: []SpeechTranscription{
			{Alternatives: []SpeechAlternative{{
				Transcript: "look at the ball can you roll it to me",
				Confidence: 0.9,
				Words: []WordInfo{
					{Word: "look", StartTime: 2.0, EndTime: 2.3, SpeakerTag: 1},
					{Word: "at", StartTime: 2.3, EndTime: 2.4, SpeakerTag: 1},
					{Word: "the", StartTime: 2.4, EndTime: 2.5, SpeakerTag: 1},
					{Word: "ball", StartTime: 2.5, EndTime: 2.9, SpeakerTag: 1},
					{Word: "can", StartTime: 4.0, EndTime: 4.2, SpeakerTag: 1},
					{Word: "you", StartTime: 4.2, EndTime: 4.3, SpeakerTag: 1},
					{Word: "roll", StartTime: 4.3, EndTime: 4.6, SpeakerTag: 1},
					{Word: "it", StartTime: 4.6, EndTime: 4.7, SpeakerTag: 1},
					{Word: "to", StartTime: 4.7, EndTime: 4.8, SpeakerTag: 1},
					{Word: "me", StartTime: 4.8, EndTime: 5.0, SpeakerTag: 1},
				},
			}}},
			{Alternatives: []SpeechAlternative{{
				Transcript: "ball ball yay",
				Confidence: 0.8,
				Words: []WordInfo{
					{Word: "ball", StartTime: 6.0, EndTime: 6.4, SpeakerTag: 2},
					{Word: "ball", StartTime: 6.6, EndTime: 7.0, SpeakerTag: 2},
					{Word: "yay", StartTime: 8.0, EndTime: 8.5, SpeakerTag: 2},
				},
			}}},
		},
		ShotChanges: []ShotChange{{StartTime: 0, EndTime: duration}},
	}
}
