package pencil

import (
	"errors"
	"image/color"
)

// PixelFormat is an enumeration of pixel formats
type PixelFormat int

const (
	// RGB32 is 32-bit RGB format (0xffRRGGBB)
	RGB32 PixelFormat = iota
	// RGB16 is 16-bit RGB format (5-6-5)
	RGB16
)

// ErrUnsupportedPixelFormat is returned for pixel formats without an encoder.
var ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")

// GetPixelSize returns the number of bytes per pixel.
func GetPixelSize(pixFormat PixelFormat) int {
	if pixFormat == RGB16 {
		return 2
	}
	return 4
}

// GetPixelDepth returns the number of color bits per pixel.
func GetPixelDepth(pixFormat PixelFormat) int {
	if pixFormat == RGB16 {
		return 16
	}
	return 24
}

// EncodePixel encodes c into little-endian pixel bytes of pixFormat.
func EncodePixel(pixFormat PixelFormat, c color.RGBA) ([]byte, error) {
	switch pixFormat {
	case RGB16:
		p := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
		return []byte{byte(p), byte(p >> 8)}, nil
	case RGB32:
		return []byte{c.B, c.G, c.R, 0xFF}, nil
	default:
		return nil, ErrUnsupportedPixelFormat
	}
}

// DecodePixel is the inverse of EncodePixel. RGB16 loses the low bits.
func DecodePixel(pixFormat PixelFormat, pix []byte) color.RGBA {
	switch pixFormat {
	case RGB16:
		p := uint16(pix[0]) | uint16(pix[1])<<8
		r := (p >> 11) & 0x1F
		g := (p >> 5) & 0x3F
		b := p & 0x1F
		return color.RGBA{
			R: uint8(r * 255 / 31),
			G: uint8(g * 255 / 63),
			B: uint8(b * 255 / 31),
			A: 0xFF,
		}
	default:
		return color.RGBA{R: pix[2], G: pix[1], B: pix[0], A: 0xFF}
	}
}
