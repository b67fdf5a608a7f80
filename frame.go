package pencil

import "errors"

// Frame contains a set of operations for drawing.
type Frame struct {
	DrawOperations []DrawOperation
}

// Add appends an operation to the frame.
func (frame *Frame) Add(drawOperation DrawOperation) {
	frame.DrawOperations = append(frame.DrawOperations, drawOperation)
}

// IsEmpty reports whether the frame has nothing to draw.
func (frame *Frame) IsEmpty() bool {
	return len(frame.DrawOperations) == 0
}

// Draw draws the frame operations in order.
func (frame *Frame) Draw(paintEngine PaintEngine) error {
	for _, drawOperation := range frame.DrawOperations {
		err := drawOperation.Draw(paintEngine)
		if err != nil {
			return err
		}
	}
	return nil
}

// Present draws the frame between Begin and End of the paint engine. End is
// called even when drawing fails; both errors are then returned joined.
func (frame *Frame) Present(paintEngine PaintEngine) error {
	if err := paintEngine.Begin(); err != nil {
		return err
	}

	if err := frame.Draw(paintEngine); err != nil {
		return errors.Join(err, paintEngine.End())
	}

	return paintEngine.End()
}

func clearSurface(paintEngine PaintEngine) error {
	frame := Frame{}
	frame.Add(NewClearOperation(paintEngineBounds(paintEngine)))
	return frame.Present(paintEngine)
}
