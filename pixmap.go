package pencil

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixmap contains a collection of pixels
type Pixmap struct {
	Data        []byte
	Width       int
	Height      int
	BytePerLine int
	PixFormat   PixelFormat
}

// NewPixmap creates a zeroed pixmap.
func NewPixmap(width int, height int, pixFormat PixelFormat) *Pixmap {
	bytePerLine := width * GetPixelSize(pixFormat)
	return &Pixmap{
		Data:        make([]byte, bytePerLine*height),
		Width:       width,
		Height:      height,
		BytePerLine: bytePerLine,
		PixFormat:   pixFormat,
	}
}

// Bounds returns the pixmap rectangle.
func (pixmap *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, pixmap.Width, pixmap.Height)
}

// Fill sets every pixel of rect to pix. The rectangle is clipped to the pixmap.
func (pixmap *Pixmap) Fill(rect image.Rectangle, pix []byte) {
	r := rect.Intersect(pixmap.Bounds())
	if r.Empty() {
		return
	}

	pixSize := GetPixelSize(pixmap.PixFormat)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		rowOffset := y * pixmap.BytePerLine
		for x := r.Min.X; x < r.Max.X; x++ {
			pixOffset := rowOffset + x*pixSize
			copy(pixmap.Data[pixOffset:pixOffset+pixSize], pix)
		}
	}
}

// At returns the decoded color of the pixel at (x, y).
func (pixmap *Pixmap) At(x int, y int) color.RGBA {
	if !image.Pt(x, y).In(pixmap.Bounds()) {
		return color.RGBA{}
	}

	pixSize := GetPixelSize(pixmap.PixFormat)
	pixOffset := y*pixmap.BytePerLine + x*pixSize
	return DecodePixel(pixmap.PixFormat, pixmap.Data[pixOffset:pixOffset+pixSize])
}

// Image converts the pixmap into an RGBA image.
func (pixmap *Pixmap) Image() *image.RGBA {
	img := image.NewRGBA(pixmap.Bounds())
	for y := 0; y < pixmap.Height; y++ {
		for x := 0; x < pixmap.Width; x++ {
			img.SetRGBA(x, y, pixmap.At(x, y))
		}
	}
	return img
}

// ScaleImage enlarges src by an integer factor without smoothing, so cell
// edges stay sharp.
func ScaleImage(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
