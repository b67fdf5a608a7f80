package pencil

import (
	"context"
	"errors"
	"image"

	"github.com/sirupsen/logrus"
)

// ErrInvalidCellSize is returned for a cell size that is not positive.
var ErrInvalidCellSize = errors.New("cell size must be positive")

// Config holds the RasterEngine settings.
type Config struct {
	// CellSize is the width and height of one cell in surface units.
	CellSize int
	// DefaultColor is the drawing color of a new engine.
	DefaultColor Color
}

// RasterEngine turns pointer events into painted cells.
//
// RasterEngine is not safe for concurrent use: events are handled one at a
// time on the caller's goroutine.
type RasterEngine struct {
	paintEngine PaintEngine
	store       *PixelStore

	cellSize int
	color    Color

	// lastCell is nil while no stroke is in progress.
	lastCell *image.Point
}

// NewRasterEngine creates a RasterEngine drawing on paintEngine.
func NewRasterEngine(paintEngine PaintEngine, config Config) (*RasterEngine, error) {
	if config.CellSize <= 0 {
		return nil, ErrInvalidCellSize
	}

	return &RasterEngine{
		paintEngine: paintEngine,
		store:       NewPixelStore(),
		cellSize:    config.CellSize,
		color:       config.DefaultColor,
	}, nil
}

// CellAt converts a surface position into the cell that contains it.
func (e *RasterEngine) CellAt(pos image.Point) image.Point {
	return image.Pt(floorDiv(pos.X, e.cellSize), floorDiv(pos.Y, e.cellSize))
}

// IsStroking reports whether a stroke is in progress.
func (e *RasterEngine) IsStroking() bool {
	return e.lastCell != nil
}

// PointerDown starts a stroke and paints the cell under pos. A stroke that
// is still in progress is ended first.
func (e *RasterEngine) PointerDown(pos image.Point) error {
	if e.lastCell != nil {
		logger().Debug("Pointer down during a stroke, restarting the stroke")
		e.PointerUp()
	}

	cell := e.CellAt(pos)
	e.lastCell = &cell

	frame := Frame{}
	e.paintCell(&frame, cell)
	return e.present(&frame)
}

// PointerMove extends the current stroke with a line to the cell under pos.
// It does nothing when no stroke is in progress.
func (e *RasterEngine) PointerMove(pos image.Point) error {
	if e.lastCell == nil {
		return nil
	}

	cell := e.CellAt(pos)
	if cell == *e.lastCell {
		return nil
	}

	frame := Frame{}
	for _, c := range RasterizeLine(*e.lastCell, cell) {
		e.paintCell(&frame, c)
	}
	e.lastCell = &cell
	return e.present(&frame)
}

// PointerUp ends the current stroke.
func (e *RasterEngine) PointerUp() {
	e.lastCell = nil
}

// HandleEvent dispatches a pointer event.
func (e *RasterEngine) HandleEvent(event PointerEvent) error {
	switch event.Kind {
	case PointerDown:
		return e.PointerDown(event.Pos)
	case PointerMove:
		return e.PointerMove(event.Pos)
	case PointerUp:
		e.PointerUp()
		return nil
	default:
		logger().WithField("kind", int(event.Kind)).Warn("Unknown pointer event ignored")
		return nil
	}
}

// Run handles events of src until its channel is closed or ctx is done.
func (e *RasterEngine) Run(ctx context.Context, src InputSource) error {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := e.HandleEvent(event); err != nil {
				return err
			}
		}
	}
}

// Drain handles the events already queued on src without waiting for more.
func (e *RasterEngine) Drain(src InputSource) error {
	events := src.Events()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := e.HandleEvent(event); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Color returns the drawing color.
func (e *RasterEngine) Color() Color {
	return e.color
}

// SetColor changes the drawing color of subsequent strokes.
func (e *RasterEngine) SetColor(color Color) {
	logger().WithField("color", color).Debug("Drawing color changed")
	e.color = color
}

// CellSize returns the cell size in surface units.
func (e *RasterEngine) CellSize() int {
	return e.cellSize
}

// SetCellSize changes the cell size and redraws the surface.
func (e *RasterEngine) SetCellSize(size int) error {
	if size <= 0 {
		return ErrInvalidCellSize
	}

	logger().WithFields(logrus.Fields{
		"from": e.cellSize,
		"to":   size,
	}).Debug("Cell size changed")
	e.cellSize = size
	return e.Redraw()
}

// Pixels returns a copy of the painted cells.
func (e *RasterEngine) Pixels() Pixels {
	return e.store.Snapshot()
}

// LoadPixels replaces the painted cells with a copy of pixels and redraws
// the surface.
func (e *RasterEngine) LoadPixels(pixels Pixels) error {
	e.store.Load(pixels)
	logger().WithField("cells", e.store.Len()).Debug("Pixels loaded")
	return e.Redraw()
}

// Clear removes every painted cell and redraws the surface.
func (e *RasterEngine) Clear() error {
	e.store.Clear()
	return e.Redraw()
}

// Redraw clears the surface and renders every painted cell again.
func (e *RasterEngine) Redraw() error {
	frame := Frame{}
	frame.Add(NewClearOperation(paintEngineBounds(e.paintEngine)))
	e.store.Range(func(cell image.Point, color Color) {
		frame.Add(NewFillRectOperation(e.footprint(cell), color))
	})

	logger().WithField("cells", e.store.Len()).Debug("Full redraw")
	return frame.Present(e.paintEngine)
}

// paintCell stores cell with the drawing color and adds its fill to frame.
// Cells whose footprint lies outside the surface are dropped.
func (e *RasterEngine) paintCell(frame *Frame, cell image.Point) {
	rect := e.footprint(cell)
	if !rect.Overlaps(paintEngineBounds(e.paintEngine)) {
		logger().WithField("cell", cell).Trace("Cell outside the surface dropped")
		return
	}

	e.store.Set(cell.X, cell.Y, e.color)
	frame.Add(NewFillRectOperation(rect, e.color))
}

func (e *RasterEngine) present(frame *Frame) error {
	if frame.IsEmpty() {
		return nil
	}
	return frame.Present(e.paintEngine)
}

func (e *RasterEngine) footprint(cell image.Point) image.Rectangle {
	top := cell.Mul(e.cellSize)
	return image.Rectangle{Min: top, Max: top.Add(image.Pt(e.cellSize, e.cellSize))}
}

func floorDiv(a int, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
