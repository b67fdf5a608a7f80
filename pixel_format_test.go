package pencil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePixel(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}

	pix, err := EncodePixel(RGB16, red)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xF8}, pix)

	pix, err = EncodePixel(RGB32, red)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0xFF, 0xFF}, pix)

	_, err = EncodePixel(PixelFormat(7), red)
	assert.ErrorIs(t, err, ErrUnsupportedPixelFormat)
}

func TestDecodePixel(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}

	pix, err := EncodePixel(RGB32, c)
	require.NoError(t, err)
	assert.Equal(t, c, DecodePixel(RGB32, pix))

	for _, c := range []color.RGBA{
		{A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
	} {
		pix, err := EncodePixel(RGB16, c)
		require.NoError(t, err)
		assert.Equal(t, c, DecodePixel(RGB16, pix))
	}
}

func TestPixelSizes(t *testing.T) {
	assert.Equal(t, 2, GetPixelSize(RGB16))
	assert.Equal(t, 4, GetPixelSize(RGB32))
	assert.Equal(t, 16, GetPixelDepth(RGB16))
	assert.Equal(t, 24, GetPixelDepth(RGB32))
}
