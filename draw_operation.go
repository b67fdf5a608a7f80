package pencil

// DrawOperation is one render request of a Frame.
type DrawOperation interface {
	Draw(paintEngine PaintEngine) error
}
