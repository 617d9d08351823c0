// Package annotation defines the video-intelligence annotation records the
// analysis pipeline consumes. The records are produced by an external
// annotation backend (or by the fixture provider for local development) and
// are treated as immutable value objects throughout the pipeline.
package annotation

// BoundingBox is a normalized bounding box with coordinates in [0,1].
// Left/Top is the upper-left corner of the frame.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Area returns the area of the box as a fraction of the frame.
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// ObjectFrame is one frame of an object track.
type ObjectFrame struct {
	Box        BoundingBox `json:"box"`
	TimeOffset float64     `json:"time_offset"` // seconds from video start
}

// ObjectTrack is a tracked entity (person, ball, toy, ...) over time.
type ObjectTrack struct {
	Entity     string        `json:"entity"`
	Confidence float64       `json:"confidence"`
	Frames     []ObjectFrame `json:"frames"`
}

// Attribute names emitted by the face/person detection models.
const (
	AttrSmiling         = "smiling"
	AttrLookingAtCamera = "looking_at_camera"
)

// Attribute is a named detection attribute with a boolean-like string value.
type Attribute struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"` // "true" or "false"
	Confidence float64 `json:"confidence"`
}

// TimestampedObject is one frame of a person or face detection track.
type TimestampedObject struct {
	Box        BoundingBox `json:"box"`
	TimeOffset float64     `json:"time_offset"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// HasAttribute reports whether the named attribute is present with a true value.
func (o TimestampedObject) HasAttribute(name string) bool {
	for _, a := range o.Attributes {
		if a.Name == name && a.Value == "true" {
			return true
		}
	}
	return false
}

// Track is an ordered sequence of timestamped detections of one person or face.
type Track struct {
	Confidence float64             `json:"confidence"`
	Objects    []TimestampedObject `json:"objects"`
}

// PersonDetection is the person-detection annotation for one detected person.
type PersonDetection struct {
	Tracks []Track `json:"tracks"`
}

// FaceDetection is the face-detection annotation for one detected face.
type FaceDetection struct {
	Tracks []Track `json:"tracks"`
}

// WordInfo carries word-level timing from speech transcription.
type WordInfo struct {
	Word       string  `json:"word"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	SpeakerTag int     `json:"speaker_tag,omitempty"`
}

// SpeechAlternative is one transcription hypothesis for a segment.
type SpeechAlternative struct {
	Transcript string     `json:"transcript"`
	Confidence float64    `json:"confidence"`
	Words      []WordInfo `json:"words,omitempty"`
}

// SpeechTranscription is the per-segment transcription annotation.
type SpeechTranscription struct {
	Alternatives []SpeechAlternative `json:"alternatives"`
}

// ShotChange marks a camera shot boundary.
type ShotChange struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// ExplicitFrame is one frame of the explicit-content annotation.
type ExplicitFrame struct {
	TimeOffset float64 `json:"time_offset"`
	Likelihood string  `json:"likelihood"`
}

// Results bundles every annotation the backend produces for one video.
type Results struct {
	ObjectTracks         []ObjectTrack         `json:"object_tracks,omitempty"`
	PersonDetections     []PersonDetection     `json:"person_detections,omitempty"`
	FaceDetections       []FaceDetection       `json:"face_detections,omitempty"`
	SpeechTranscriptions []SpeechTranscription `json:"speech_transcriptions,omitempty"`
	ShotChanges          []ShotChange          `json:"shot_changes,omitempty"`
	ExplicitContent      []ExplicitFrame       `json:"explicit_content,omitempty"`
}

// PersonTracks returns the object tracks whose entity is "person",
// in their original order.
func (r *Results) PersonTracks() []ObjectTrack {
	var tracks []ObjectTrack
	for _, t := range r.ObjectTracks {
		if t.Entity == "person" {
			tracks = append(tracks, t)
		}
	}
	return tracks
}
