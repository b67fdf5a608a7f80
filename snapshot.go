package pencil

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Snapshot is the saved state of a drawing.
type Snapshot struct {
	CellSize int
	Pixels   Pixels
}

type snapshotDoc struct {
	CellSize int        `yaml:"cell_size"`
	Pixels   []pixelDoc `yaml:"pixels"`
}

type pixelDoc struct {
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	Color Color `yaml:"color"`
}

// SaveSnapshot writes snapshot as YAML. Cells are ordered by x, then y, so
// the same drawing always produces the same document.
func SaveSnapshot(w io.Writer, snapshot Snapshot) error {
	doc := snapshotDoc{
		CellSize: snapshot.CellSize,
		Pixels:   make([]pixelDoc, 0, snapshot.Pixels.Len()),
	}
	for x, column := range snapshot.Pixels {
		for y, color := range column {
			doc.Pixels = append(doc.Pixels, pixelDoc{X: x, Y: y, Color: color})
		}
	}
	sort.Slice(doc.Pixels, func(i, j int) bool {
		if doc.Pixels[i].X != doc.Pixels[j].X {
			return doc.Pixels[i].X < doc.Pixels[j].X
		}
		return doc.Pixels[i].Y < doc.Pixels[j].Y
	})

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// LoadSnapshot reads a snapshot written by SaveSnapshot. A later entry for
// the same cell wins.
func LoadSnapshot(r io.Reader) (Snapshot, error) {
	var doc snapshotDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.CellSize < 0 {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", ErrInvalidCellSize)
	}

	store := NewPixelStore()
	for _, p := range doc.Pixels {
		store.Set(p.X, p.Y, p.Color)
	}
	return Snapshot{CellSize: doc.CellSize, Pixels: store.Snapshot()}, nil
}
