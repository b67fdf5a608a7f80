package pencil

import "image"

// Pixels maps a column x to a row y to the color of cell (x, y).
// A missing entry is an unpainted cell.
type Pixels map[int]map[int]Color

// Len returns the number of painted cells.
func (pixels Pixels) Len() int {
	n := 0
	for _, column := range pixels {
		n += len(column)
	}
	return n
}

// Clone returns a deep copy. Empty columns are not copied.
func (pixels Pixels) Clone() Pixels {
	clone := make(Pixels, len(pixels))
	for x, column := range pixels {
		if len(column) == 0 {
			continue
		}
		c := make(map[int]Color, len(column))
		for y, color := range column {
			c[y] = color
		}
		clone[x] = c
	}
	return clone
}

// PixelStore is the sparse grid of painted cells.
type PixelStore struct {
	pixels Pixels
}

// NewPixelStore creates an empty PixelStore
func NewPixelStore() *PixelStore {
	return &PixelStore{pixels: Pixels{}}
}

// Get returns the color of cell (x, y) and whether it is painted.
func (s *PixelStore) Get(x int, y int) (Color, bool) {
	color, ok := s.pixels[x][y]
	return color, ok
}

// Set paints cell (x, y), replacing any previous color.
func (s *PixelStore) Set(x int, y int, color Color) {
	column, ok := s.pixels[x]
	if !ok {
		column = make(map[int]Color)
		s.pixels[x] = column
	}
	column[y] = color
}

// Clear removes every cell.
func (s *PixelStore) Clear() {
	s.pixels = Pixels{}
}

// Snapshot returns a deep copy of the store contents.
func (s *PixelStore) Snapshot() Pixels {
	return s.pixels.Clone()
}

// Load replaces the store contents with a deep copy of pixels.
func (s *PixelStore) Load(pixels Pixels) {
	s.pixels = pixels.Clone()
}

// Len returns the number of painted cells.
func (s *PixelStore) Len() int {
	return s.pixels.Len()
}

// Range calls fn for every painted cell in unspecified order.
func (s *PixelStore) Range(fn func(cell image.Point, color Color)) {
	for x, column := range s.pixels {
		for y, color := range column {
			fn(image.Pt(x, y), color)
		}
	}
}
