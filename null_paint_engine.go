package pencil

import (
	"image"
)

type nullPaintEngine struct {
	width  int
	height int
}

// NullPaintEngine returns a paint engine of the given size that draws nothing.
func NullPaintEngine(width int, height int) PaintEngine {
	return nullPaintEngine{width, height}
}

func (p nullPaintEngine) GetWidth() int {
	return p.width
}

func (p nullPaintEngine) GetHeight() int {
	return p.height
}

func (nullPaintEngine) Begin() error {
	return nil
}

func (nullPaintEngine) Clear(rect image.Rectangle) error {
	return nil
}

func (nullPaintEngine) FillRect(rect image.Rectangle, color Color) error {
	return nil
}

func (nullPaintEngine) End() error {
	return nil
}
