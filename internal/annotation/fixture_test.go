package annotation

import (
	"context"
	"reflect"
	"testing"
)

func TestPlaySessionFixture(t *testing.T) {
	r := PlaySessionFixture(90)

	persons := r.PersonTracks()
	if len(persons) != 2 {
		t.Fatalf("expected 2 person tracks, got %d", len(persons))
	}
	if len(persons[0].Frames) != 90 {
		t.Errorf("expected 90 frames at 1 fps, got %d", len(persons[0].Frames))
	}
	if len(r.PersonDetections) != 2 || len(r.FaceDetections) != 1 {
		t.Errorf("unexpected detection counts: %d persons, %d faces",
			len(r.PersonDetections), len(r.FaceDetections))
	}
	if len(r.SpeechTranscriptions) != 2 {
		t.Errorf("expected a two-speaker transcript, got %d segments", len(r.SpeechTranscriptions))
	}

	for _, track := range r.ObjectTracks {
		for _, f := range track.Frames {
			b := f.Box
			if b.Left < 0 || b.Top < 0 || b.Right > 1 || b.Bottom > 1 || b.Right < b.Left || b.Bottom < b.Top {
				t.Fatalf("fixture produced a malformed box: %+v", b)
			}
		}
	}
}

func TestPlaySessionFixture_Deterministic(t *testing.T) {
	if !reflect.DeepEqual(PlaySessionFixture(60), PlaySessionFixture(60)) {
		t.Error("fixture is not deterministic for a fixed duration")
	}
}

func TestPlaySessionFixture_NonPositiveDuration(t *testing.T) {
	r := PlaySessionFixture(0)
	if len(r.PersonTracks()[0].Frames) != 90 {
		t.Error("non-positive duration should fall back to 90 seconds")
	}
}

func TestFixtureProviderAnnotate(t *testing.T) {
	p := &FixtureProvider{Duration: 30}
	r, err := p.Annotate(context.Background(), "ignored://uri")
	if err != nil {
		t.Fatalf("fixture provider returned an error: %v", err)
	}
	if len(r.PersonTracks()[0].Frames) != 30 {
		t.Errorf("expected 30 frames, got %d", len(r.PersonTracks()[0].Frames))
	}
}

func TestHasAttribute(t *testing.T) {
	obj := TimestampedObject{Attributes: []Attribute{
		{Name: AttrSmiling, Value: "true", Confidence: 0.9},
		{Name: AttrLookingAtCamera, Value: "false", Confidence: 0.8},
	}}
	if !obj.HasAttribute(AttrSmiling) {
		t.Error("expected smiling attribute to be present")
	}
	if obj.HasAttribute(AttrLookingAtCamera) {
		t.Error("false-valued attribute should not count as present")
	}
	if obj.HasAttribute("missing") {
		t.Error("unknown attribute should not be present")
	}
}
