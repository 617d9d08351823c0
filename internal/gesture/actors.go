package gesture

import (
	"sort"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/geometry"
)

// Actor identification thresholds. A detection is labeled parent when its box
// covers a large fraction of the frame or its center sits near the top of the
// frame; everything else is labeled child.
const (
	parentAreaFraction = 0.15
	parentTopBand      = 0.35
)

// classifyActor labels a single detection frame as parent or child.
//
// This is a per-frame, stateless heuristic: there is no identity continuity
// across frames, so the same physical person can flip labels between frames.
// Representing identity as a tracked entity assigned by an association step
// would remove that limitation; until then the label is a size/position guess,
// not a verified person ID.
func classifyActor(box annotation.BoundingBox) Actor {
	box = geometry.Sanitize(box)
	if box.Area() >= parentAreaFraction {
		return ActorParent
	}
	if geometry.Center(box).Y <= parentTopBand {
		return ActorParent
	}
	return ActorChild
}

// actorFrame is one detection frame attributed to an actor.
type actorFrame struct {
	box  annotation.BoundingBox
	time float64
}

// splitActors partitions all person-detection frames into a parent series and
// a child series, each ordered by time offset.
func splitActors(detections []annotation.PersonDetection) (parent, child []actorFrame) {
	for _, d := range detections {
		for _, track := range d.Tracks {
			for _, obj := range track.Objects {
				f := actorFrame{box: geometry.Sanitize(obj.Box), time: obj.TimeOffset}
				if classifyActor(obj.Box) == ActorParent {
					parent = append(parent, f)
				} else {
					child = append(child, f)
				}
			}
		}
	}
	sort.Slice(parent, func(i, j int) bool { return parent[i].time < parent[j].time })
	sort.Slice(child, func(i, j int) bool { return child[i].time < child[j].time })
	return parent, child
}
