package beammpctl

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})

	require.Empty(t, LogPath())

	p, err := InitLogging()
	require.NoError(t, err)
	require.FileExists(t, p)
	assert.Equal(t, filepath.Join(home, ".beammpctl", "logs"), filepath.Dir(p))
	assert.Equal(t, p, LogPath())

	again, err := InitLogging()
	require.NoError(t, err)
	assert.Equal(t, p, again)
}
