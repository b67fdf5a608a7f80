package pencil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snapshot := Snapshot{
		CellSize: 12,
		Pixels: Pixels{
			3:  {1: "#ff0000", -2: "blue"},
			-1: {0: "cornflowerblue"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, SaveSnapshot(&buf, snapshot))

	loaded, err := LoadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestSaveSnapshotIsSorted(t *testing.T) {
	pixels := Pixels{5: {1: "red"}, 0: {9: "red", 2: "red"}}

	var first, second bytes.Buffer
	require.NoError(t, SaveSnapshot(&first, Snapshot{CellSize: 1, Pixels: pixels}))
	require.NoError(t, SaveSnapshot(&second, Snapshot{CellSize: 1, Pixels: pixels.Clone()}))
	assert.Equal(t, first.String(), second.String())

	doc := first.String()
	assert.Less(t, strings.Index(doc, "y: 2"), strings.Index(doc, "y: 9"))
	assert.Less(t, strings.Index(doc, "y: 9"), strings.Index(doc, "x: 5"))
}

func TestLoadSnapshot(t *testing.T) {
	doc := `
cell_size: 4
pixels:
  - {x: 1, y: 2, color: red}
  - {x: 1, y: 2, color: blue}
  - {x: 0, y: 0, color: "#fff"}
`
	snapshot, err := LoadSnapshot(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 4, snapshot.CellSize)
	assert.Equal(t, Pixels{1: {2: "blue"}, 0: {0: "#fff"}}, snapshot.Pixels)
}

func TestLoadSnapshotEmpty(t *testing.T) {
	snapshot, err := LoadSnapshot(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.CellSize)
	assert.Empty(t, snapshot.Pixels)
}

func TestLoadSnapshotErrors(t *testing.T) {
	_, err := LoadSnapshot(strings.NewReader("pixels: {x: [}"))
	assert.Error(t, err)

	_, err = LoadSnapshot(strings.NewReader("cell_size: -3"))
	assert.ErrorIs(t, err, ErrInvalidCellSize)
}
