//go:build !linux || !cgo

package pencil

import "errors"

// NewKMSDRMPaintEngine is only available on Linux with cgo.
func NewKMSDRMPaintEngine(cardNum int, pixFormat PixelFormat) (PaintEngine, error) {
	return nil, errors.New("KMSDRMPaintEngine requires linux and cgo")
}
