package pencil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		color Color
		want  color.RGBA
	}{
		{"red", color.RGBA{R: 0xFF, A: 0xFF}},
		{"CornflowerBlue", color.RGBA{R: 0x64, G: 0x95, B: 0xED, A: 0xFF}},
		{" white ", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"#00ff00", color.RGBA{G: 0xFF, A: 0xFF}},
		{"#0f0", color.RGBA{G: 0xFF, A: 0xFF}},
		{"0000FF", color.RGBA{B: 0xFF, A: 0xFF}},
		{"#123456", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			got, err := tt.color.RGBA()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorRGBAUnsupported(t *testing.T) {
	for _, c := range []Color{"", "not-a-color", "#xyzxyz"} {
		_, err := c.RGBA()
		assert.Error(t, err, "color %q", c)
	}
}
