// Package testdata provides hand-built annotation fixtures shared by tests.
package testdata

import "github.com/ayusman/playsight/internal/annotation"

// TwoPersonSingleFrame returns two person tracks of one frame each, with
// centers at (0.2, 0.2) and (0.6, 0.6): distance ~0.566, farther apart than
// the close-proximity threshold.
func TwoPersonSingleFrame() *annotation.Results {
	return &annotation.Results{
		ObjectTracks: []annotation.ObjectTrack{
			{Entity: "person", Confidence: 0.9, Frames: []annotation.ObjectFrame{
				{Box: annotation.BoundingBox{Left: 0.1, Top: 0.1, Right: 0.3, Bottom: 0.3}, TimeOffset: 0},
			}},
			{Entity: "person", Confidence: 0.9, Frames: []annotation.ObjectFrame{
				{Box: annotation.BoundingBox{Left: 0.5, Top: 0.5, Right: 0.7, Bottom: 0.7}, TimeOffset: 0},
			}},
		},
	}
}

// StationaryPerson returns one person track with two identical consecutive
// frames: no movement at all.
func StationaryPerson() *annotation.Results {
	box := annotation.BoundingBox{Left: 0.4, Top: 0.3, Right: 0.6, Bottom: 0.8}
	return &annotation.Results{
		ObjectTracks: []annotation.ObjectTrack{
			{Entity: "person", Confidence: 0.9, Frames: []annotation.ObjectFrame{
				{Box: box, TimeOffset: 0},
				{Box: box, TimeOffset: 1},
			}},
		},
	}
}

// HuggingPair returns person detections for one aligned frame in which the
// parent and child centers sit 0.08 apart, inside the hugging threshold.
func HuggingPair() *annotation.Results {
	// Parent box covers a large area (center 0.40, 0.45); the child box is
	// small with its center 0.08 to the right.
	parentBox := annotation.BoundingBox{Left: 0.2, Top: 0.1, Right: 0.6, Bottom: 0.8}
	childBox := annotation.BoundingBox{Left: 0.43, Top: 0.35, Right: 0.53, Bottom: 0.55}
	return &annotation.Results{
		PersonDetections: []annotation.PersonDetection{
			{Tracks: []annotation.Track{{Confidence: 0.9, Objects: []annotation.TimestampedObject{
				{Box: parentBox, TimeOffset: 5},
			}}}},
			{Tracks: []annotation.Track{{Confidence: 0.9, Objects: []annotation.TimestampedObject{
				{Box: childBox, TimeOffset: 5},
			}}}},
		},
	}
}

// SmilingChild returns a face detection track for a small (child-sized) face
// smiling in 3 of 4 frames.
func SmilingChild() *annotation.Results {
	box := annotation.BoundingBox{Left: 0.4, Top: 0.5, Right: 0.5, Bottom: 0.62}
	smile := func(v string) []annotation.Attribute {
		return []annotation.Attribute{{Name: annotation.AttrSmiling, Value: v, Confidence: 0.9}}
	}
	return &annotation.Results{
		FaceDetections: []annotation.FaceDetection{
			{Tracks: []annotation.Track{{Confidence: 0.9, Objects: []annotation.TimestampedObject{
				{Box: box, TimeOffset: 0, Attributes: smile("true")},
				{Box: box, TimeOffset: 1, Attributes: smile("true")},
				{Box: box, TimeOffset: 2, Attributes: smile("true")},
				{Box: box, TimeOffset: 3, Attributes: smile("false")},
			}}}},
		},
	}
}

// ChildWithBall returns a small person track and a ball track that stays
// within interaction range the whole time.
func ChildWithBall() *annotation.Results {
	var personFrames, ballFrames []annotation.ObjectFrame
	for i := 0; i < 10; i++ {
		t := float64(i)
		x := 0.4 + 0.01*float64(i)
		personFrames = append(personFrames, annotation.ObjectFrame{
			Box:        annotation.BoundingBox{Left: x, Top: 0.5, Right: x + 0.12, Bottom: 0.8},
			TimeOffset: t,
		})
		ballFrames = append(ballFrames, annotation.ObjectFrame{
			Box:        annotation.BoundingBox{Left: x + 0.02, Top: 0.72, Right: x + 0.08, Bottom: 0.78},
			TimeOffset: t,
		})
	}
	return &annotation.Results{
		ObjectTracks: []annotation.ObjectTrack{
			{Entity: "person", Confidence: 0.9, Frames: personFrames},
			{Entity: "ball", Confidence: 0.85, Frames: ballFrames},
		},
	}
}
