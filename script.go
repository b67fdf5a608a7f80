package pencil

import (
	"errors"
	"fmt"
	"image"
	"io"

	"gopkg.in/yaml.v3"
)

type eventDoc struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// LoadEventScript reads a YAML list of pointer events:
//
//   - {type: down, x: 10, y: 10}
//   - {type: move, x: 42, y: 17}
//   - {type: up}
//
// Coordinates are in surface units.
func LoadEventScript(r io.Reader) ([]PointerEvent, error) {
	var docs []eventDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode event script: %w", err)
	}

	events := make([]PointerEvent, 0, len(docs))
	for i, doc := range docs {
		var kind PointerEventKind
		switch doc.Type {
		case "down":
			kind = PointerDown
		case "move":
			kind = PointerMove
		case "up":
			kind = PointerUp
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, doc.Type)
		}
		events = append(events, PointerEvent{Kind: kind, Pos: image.Pt(doc.X, doc.Y)})
	}
	return events, nil
}
