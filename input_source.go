package pencil

import "image"

// PointerEventKind identifies a pointer transition.
type PointerEventKind int

const (
	// PointerDown starts a stroke
	PointerDown PointerEventKind = iota
	// PointerMove continues a stroke
	PointerMove
	// PointerUp ends a stroke
	PointerUp
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in surface coordinates.
// Pos is ignored for PointerUp.
type PointerEvent struct {
	Kind PointerEventKind
	Pos  image.Point
}

// InputSource delivers pointer events in the order they happened.
// The channel is closed when the source has no more events.
type InputSource interface {
	Events() <-chan PointerEvent
}

type scriptSource struct {
	events chan PointerEvent
}

// NewScriptSource returns a source that delivers events and then closes.
func NewScriptSource(events []PointerEvent) InputSource {
	ch := make(chan PointerEvent, len(events))
	for _, event := range events {
		ch <- event
	}
	close(ch)
	return &scriptSource{ch}
}

func (s *scriptSource) Events() <-chan PointerEvent {
	return s.events
}
