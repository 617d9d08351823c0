package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// analyzeSpeech reduces the transcription segments to turn-taking signals.
// Only the top alternative of each segment is considered.
func analyzeSpeech(transcriptions []annotation.SpeechTranscription) Voice {
	var v Voice
	var words []annotation.WordInfo

	for _, tr := range transcriptions {
		if len(tr.Alternatives) == 0 {
			continue
		}
		alt := tr.Alternatives[0]
		if alt.Transcript != "" {
			v.UtteranceCount++
		}
		v.WordCount += len(alt.Words)
		words = append(words, alt.Words...)
	}

	if len(words) == 0 {
		return v
	}

	distinct := make(map[string]bool)
	for _, w := range words {
		distinct[strings.ToLower(w.Word)] = true
	}
	v.DistinctWords = len(distinct)

	sort.Slice(words, func(i, j int) bool { return words[i].StartTime < words[j].StartTime })

	// Walk speaker tags in time order: each change of speaker is a turn, and
	// the gap between the previous word's end and the next word's start is a
	// response-time sample.
	speakerWords := make(map[int]int)
	var gapSum float64
	gaps := 0
	prev := words[0]
	speakerWords[prev.SpeakerTag]++

	for _, w := range words[1:] {
		speakerWords[w.SpeakerTag]++
		if w.SpeakerTag != prev.SpeakerTag {
			v.SpeakerTurns++
			gap := w.StartTime - prev.EndTime
			if gap > 0 {
				gapSum += gap
				gaps++
			}
		}
		prev = w
	}

	if gaps > 0 {
		v.AverageResponseTime = gapSum / float64(gaps)
	}

	// Balance: 1 when both speakers contribute equally, 0 when one speaker
	// does all the talking. A single-speaker session scores 0.
	if len(speakerWords) >= 2 {
		var counts []float64
		for _, c := range speakerWords {
			counts = append(counts, float64(c))
		}
		sort.Float64s(counts)
		top2 := counts[len(counts)-1] + counts[len(counts)-2]
		if top2 > 0 {
			imbalance := math.Abs(counts[len(counts)-1]-counts[len(counts)-2]) / top2
			v.TurnTakingBalance = geometry.Clamp(1-imbalance, 0, 1)
		}
	}
	return v
}
