// types.go
package neuromotor

import (
	"time"

	"github.com/google/uuid"
)

// TrajectorySample is a single timed pointer position. T is the offset from
// the start of the movement; replaying a trajectory means visiting each
// sample at its offset.
type TrajectorySample struct {
	T time.Duration
	X float64
	Y float64
}

// Trajectory is an ordered, strictly time-ascending sequence of samples.
type Trajectory []TrajectorySample

// Duration returns the time offset of the final sample, or zero for an
// empty trajectory.
func (tr Trajectory) Duration() time.Duration {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].T
}

// Positions splits the trajectory into parallel coordinate slices.
func (tr Trajectory) Positions() (xs, ys []float64) {
	xs = make([]float64, len(tr))
	ys = make([]float64, len(tr))
	for i, s := range tr {
		xs[i] = s.X
		ys[i] = s.Y
	}
	return xs, ys
}

// Seconds returns the sample time offsets as fractional seconds.
func (tr Trajectory) Seconds() []float64 {
	ts := make([]float64, len(tr))
	for i, s := range tr {
		ts[i] = s.T.Seconds()
	}
	return ts
}

// Submovement is one ballistic segment of a planned movement: where it ends
// and what share of the total movement time it occupies.
type Submovement struct {
	Endpoint     Vector2D
	TimeFraction float64
}

// MovementPlan is the ordered submovement decomposition of a single
// pointing movement. Time fractions sum to 1.0 and the final endpoint is
// the aim point.
type MovementPlan []Submovement

// Movement is a fully synthesized pointing movement: the plan it was built
// from, the timed samples to replay, and the self-diagnostics report.
type Movement struct {
	ID         uuid.UUID
	Start      Vector2D
	Target     Vector2D
	Plan       MovementPlan
	Trajectory Trajectory
	Duration   time.Duration
	Report     DiagnosticsReport
}

// MouseEventType defines the type of a mouse event an emitter dispatches.
type MouseEventType string

const (
	MouseMove    MouseEventType = "mouseMoved"
	MousePress   MouseEventType = "mousePressed"
	MouseRelease MouseEventType = "mouseReleased"
)

// MouseButton defines the mouse button involved in an event.
type MouseButton string

const (
	ButtonNone   MouseButton = "none"
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// MouseEventData encapsulates all data for a single mouse event.
type MouseEventData struct {
	Type       MouseEventType `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Button     MouseButton    `json:"button"`
	ClickCount int            `json:"clickCount,omitempty"`
	Buttons    int            `json:"buttons,omitempty"`
}

// TargetRegion describes an on-screen target in device pixels. Center is
// the nominal aim point; Width and Height bound the acceptable landing
// area.
type TargetRegion struct {
	Center Vector2D
	Width  float64
	Height float64
}
