package pencil

import "image"

type fillRectOperation struct {
	rect  image.Rectangle
	color Color
}

func (o *fillRectOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.FillRect(o.rect, o.color)
}

// NewFillRectOperation creates an operation to fill the rectangle with color.
func NewFillRectOperation(rect image.Rectangle, color Color) DrawOperation {
	return &fillRectOperation{
		rect:  rect,
		color: color,
	}
}
