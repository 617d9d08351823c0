// Package gesture classifies discrete parent/child gestures and interaction
// events from person-detection time series and nearby object tracks.
package gesture

import "github.com/ayusman/playsight/internal/annotation"

// Actor identifies who performed a gesture.
type Actor string

const (
	ActorParent Actor = "parent"
	ActorChild  Actor = "child"
	ActorBoth   Actor = "both"
)

// Type is the closed set of gesture classifications.
type Type string

const (
	// Movement gestures.
	TypeJumping    Type = "jumping"
	TypeRunning    Type = "running"
	TypeWalking    Type = "walking"
	TypeLeaning    Type = "leaning"
	TypeStretching Type = "stretching"
	TypeWaving     Type = "waving"
	TypePointing   Type = "pointing"

	// Posture gestures.
	TypeStanding Type = "standing"
	TypeSitting  Type = "sitting"

	// Object-interaction gestures.
	TypeReaching    Type = "reaching"
	TypePickingUp   Type = "picking_up"
	TypePuttingDown Type = "putting_down"
	TypeTouching    Type = "touching"
	TypeShowing     Type = "showing"

	// Parent-child pair gestures.
	TypeHugging      Type = "hugging"
	TypeHighFive     Type = "high_five"
	TypeHoldingHands Type = "holding_hands"
	TypeGiving       Type = "giving"

	TypeUnknown Type = "unknown"
)

// ConfidenceFloor is the minimum confidence for a gesture to appear in the
// returned analysis. Sub-threshold candidates are discarded, not zeroed.
const ConfidenceFloor = 0.6

// DetectedGesture is one identified gesture event.
type DetectedGesture struct {
	Actor       Actor                  `json:"actor"`
	Type        Type                   `json:"type"`
	StartTime   float64                `json:"start_time"`
	EndTime     float64                `json:"end_time"`
	Confidence  float64                `json:"confidence"` // [0,1]
	Intensity   float64                `json:"intensity"`  // [0,1]
	Box         annotation.BoundingBox `json:"box"`
	Description string                 `json:"description"`
	Context     string                 `json:"context"`
}

// Pattern aggregates all gestures of one type.
type Pattern struct {
	Type            Type    `json:"type"`
	Frequency       int     `json:"frequency"`
	AverageDuration float64 `json:"average_duration"`
	DominantActor   Actor   `json:"dominant_actor"`
	DominantContext string  `json:"dominant_context"`
	Significance    float64 `json:"significance"` // [0,1]
}

// InteractionType classifies a temporally grouped gesture cluster.
type InteractionType string

const (
	InteractionCooperative InteractionType = "cooperative"
	InteractionImitative   InteractionType = "imitative"
	InteractionPlayful     InteractionType = "playful"
	InteractionSupportive  InteractionType = "supportive"
	InteractionGuiding     InteractionType = "guiding"
	InteractionResponsive  InteractionType = "responsive"
)

// Interaction is a temporally grouped cluster of gestures across both actors.
type Interaction struct {
	Type         InteractionType `json:"type"`
	Participants []Actor         `json:"participants"`
	StartTime    float64         `json:"start_time"`
	EndTime      float64         `json:"end_time"`
	GestureCount int             `json:"gesture_count"`
	Quality      float64         `json:"quality"`   // [0,1]
	Mutuality    float64         `json:"mutuality"` // [0,1], balance between actors
}

// Sync counts temporally related parent/child gesture pairs and carries the
// scalar synchrony score.
type Sync struct {
	Synchronized int     `json:"synchronized"`
	Mirrored     int     `json:"mirrored"`
	Responses    int     `json:"responses"`
	Imitations   int     `json:"imitations"`
	Score        float64 `json:"score"` // [0,1]
}

// Analysis is the full gesture-detection output for one session.
type Analysis struct {
	Gestures     []DetectedGesture `json:"gestures"`
	Patterns     []Pattern         `json:"patterns"`
	Interactions []Interaction     `json:"interactions"`
	Sync         Sync              `json:"sync"`
}
