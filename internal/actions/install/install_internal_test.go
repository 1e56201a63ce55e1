package install

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/serverconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(t *testing.T) installState {
	t.Helper()

	path := filepath.Join(t.TempDir(), "beammp-server")

	return installState{
		Path:           path,
		ExecutablePath: filepath.Join(path, beammp.ServerExecutableName),
		ConfigPath:     filepath.Join(path, beammp.ConfigDirName, beammp.ConfigFileName),
		NonInteractive: true,
	}
}

func Test_provisionDirectories(t *testing.T) {
	state := testState(t)

	_, err := provisionDirectories(context.Background(), state)
	require.NoError(t, err)

	for _, name := range []string{"logs", "mods", "plugins", "config"} {
		assert.DirExists(t, filepath.Join(state.Path, name))
	}
}

func Test_provisionDirectories_idempotent(t *testing.T) {
	state := testState(t)

	_, err := provisionDirectories(context.Background(), state)
	require.NoError(t, err)

	// A file dropped into a subdirectory survives a second run.
	marker := filepath.Join(state.Path, "mods", "some-mod.zip")
	require.NoError(t, os.WriteFile(marker, []byte("mod"), 0644))

	_, err = provisionDirectories(context.Background(), state)
	require.NoError(t, err)

	assert.FileExists(t, marker)

	entries, err := os.ReadDir(state.Path)
	require.NoError(t, err)
	assert.Len(t, entries, len(beammp.SubDirectories))
}

func Test_seedConfiguration_synthesizesDefault(t *testing.T) {
	state := testState(t)

	_, err := provisionDirectories(context.Background(), state)
	require.NoError(t, err)

	_, err = seedConfiguration(context.Background(), state)
	require.NoError(t, err)

	cfg, err := serverconfig.Read(state.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, serverconfig.Default(), cfg)
	assert.Empty(t, cfg.General.AuthKey)
}

func Test_seedConfiguration_neverClobbersExisting(t *testing.T) {
	state := testState(t)

	_, err := provisionDirectories(context.Background(), state)
	require.NoError(t, err)

	custom := serverconfig.Default()
	custom.General.Name = "My Custom Server"
	custom.General.AuthKey = "operator-key"
	require.NoError(t, serverconfig.Write(custom, state.ConfigPath))

	_, err = seedConfiguration(context.Background(), state)
	require.NoError(t, err)

	cfg, err := serverconfig.Read(state.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "My Custom Server", cfg.General.Name)
	assert.Equal(t, "operator-key", cfg.General.AuthKey)
}

func Test_seedConfiguration_copiesConfigSource(t *testing.T) {
	state := testState(t)

	_, err := provisionDirectories(context.Background(), state)
	require.NoError(t, err)

	source := t.TempDir()
	custom := serverconfig.Default()
	custom.General.Name = "Copied Server"
	require.NoError(t, serverconfig.Write(custom, filepath.Join(source, beammp.ConfigFileName)))
	state.ConfigSource = source

	_, err = seedConfiguration(context.Background(), state)
	require.NoError(t, err)

	cfg, err := serverconfig.Read(state.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "Copied Server", cfg.General.Name)
}

func Test_applyAuthKey(t *testing.T) {
	state := testState(t)

	_, err := provisionDirectories(context.Background(), state)
	require.NoError(t, err)
	_, err = seedConfiguration(context.Background(), state)
	require.NoError(t, err)

	state.AuthKey = "from-flag"

	_, err = applyAuthKey(context.Background(), state)
	require.NoError(t, err)

	cfg, err := serverconfig.Read(state.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.General.AuthKey)
}
