// interface.go
package neuromotor

import (
	"context"
	"time"
)

// InputEmitter abstracts the platform layer that turns synthesized
// movements into real input. The engine itself never dispatches events;
// callers pair a Synthesizer with an emitter for their platform.
type InputEmitter interface {
	// DispatchMouseEvent delivers a single low-level mouse event.
	DispatchMouseEvent(ctx context.Context, data MouseEventData) error
	// Sleep pauses between samples, honoring context cancellation.
	Sleep(ctx context.Context, d time.Duration) error
}

// ElementLocator resolves an abstract target (a selector, an accessibility
// handle) to its on-screen region in device pixels.
type ElementLocator interface {
	Locate(ctx context.Context, selector string) (TargetRegion, error)
}
