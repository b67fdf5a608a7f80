package pencil

import "image"

type clearOperation struct {
	rect image.Rectangle
}

func (o *clearOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.Clear(o.rect)
}

// NewClearOperation creates an operation that clears the rectangle to the
// surface background.
func NewClearOperation(rect image.Rectangle) DrawOperation {
	return &clearOperation{rect}
}
