package pencil

import (
	"image"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)
	SetLogger(log)
	defer SetLogger(nil)

	engine, err := NewRasterEngine(NullPaintEngine(10, 10), Config{CellSize: 10, DefaultColor: "red"})
	require.NoError(t, err)
	require.NoError(t, engine.PointerDown(image.Pt(50, 50)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.TraceLevel, entry.Level)
	assert.Equal(t, "Cell outside the surface dropped", entry.Message)
	assert.Equal(t, image.Pt(5, 5), entry.Data["cell"])

	require.NoError(t, engine.SetCellSize(5))
	assert.Equal(t, "Full redraw", hook.LastEntry().Message)
	assert.Equal(t, 0, hook.LastEntry().Data["cells"])
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(nil)
	l, ok := logger().(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}
