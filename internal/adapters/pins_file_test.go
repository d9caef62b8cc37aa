package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinsFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pins:\n  - Pester\n  - Az.*\n"), 0644))

	pins, err := NewPinsFileAdapter().LoadPins(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pester", "Az.*"}, pins.Pins)
}

func TestPinsFileEmptyPath(t *testing.T) {
	pins, err := NewPinsFileAdapter().LoadPins("")
	require.NoError(t, err)
	assert.Empty(t, pins.Pins)
}

func TestPinsFileMissing(t *testing.T) {
	_, err := NewPinsFileAdapter().LoadPins(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestPinsFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pins: {broken"), 0644))

	_, err := NewPinsFileAdapter().LoadPins(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
