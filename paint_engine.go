package pencil

import (
	"image"
)

// PaintEngine is the interface definition for the surface cells are rendered on.
//
// Render requests are always issued between Begin and End.
type PaintEngine interface {
	GetWidth() int
	GetHeight() int
	Begin() error
	Clear(rect image.Rectangle) error
	FillRect(rect image.Rectangle, color Color) error
	End() error
}

// paintEngineBounds returns the renderable extent of the paint engine.
func paintEngineBounds(paintEngine PaintEngine) image.Rectangle {
	return image.Rect(0, 0, paintEngine.GetWidth(), paintEngine.GetHeight())
}
