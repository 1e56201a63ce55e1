package update

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/releasefinder"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_replaceExecutable_success(t *testing.T) {
	executablePath := filepath.Join(t.TempDir(), "BeamMP-Server.exe")
	require.NoError(t, os.WriteFile(executablePath, []byte("old binary"), 0755))

	download := func(_ context.Context, _ string, dst string) error {
		return os.WriteFile(dst, []byte("new binary"), 0755)
	}

	err := replaceExecutable(context.Background(), executablePath, "https://example.com/server.exe", download)
	require.NoError(t, err)

	contents, err := os.ReadFile(executablePath)
	require.NoError(t, err)
	assert.Equal(t, "new binary", string(contents))

	// Backup was made before the overwrite and holds the old contents.
	backup, err := os.ReadFile(executablePath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "old binary", string(backup))
}

func Test_replaceExecutable_failedDownloadRestoresBackup(t *testing.T) {
	executablePath := filepath.Join(t.TempDir(), "BeamMP-Server.exe")
	require.NoError(t, os.WriteFile(executablePath, []byte("old binary"), 0755))

	download := func(_ context.Context, _ string, dst string) error {
		// A failed transfer can leave a partial file behind.
		_ = os.WriteFile(dst, []byte("gar"), 0755)

		return errors.New("connection reset")
	}

	err := replaceExecutable(context.Background(), executablePath, "https://example.com/server.exe", download)
	require.Error(t, err)

	contents, err := os.ReadFile(executablePath)
	require.NoError(t, err)
	assert.Equal(t, "old binary", string(contents))
}

func Test_replaceExecutable_noExistingExecutable(t *testing.T) {
	executablePath := filepath.Join(t.TempDir(), "BeamMP-Server.exe")

	download := func(_ context.Context, _ string, dst string) error {
		return os.WriteFile(dst, []byte("new binary"), 0755)
	}

	err := replaceExecutable(context.Background(), executablePath, "https://example.com/server.exe", download)
	require.NoError(t, err)

	assert.FileExists(t, executablePath)
	assert.NoFileExists(t, executablePath+".bak")
}

func Test_installedVersion(t *testing.T) {
	tests := []struct {
		name        string
		state       beammpctl.ServerInstallState
		installPath string
		want        string
	}{
		{
			name:        "same_install",
			state:       beammpctl.ServerInstallState{Path: `C:\BeamMP-Server`, Version: "v3.8.2"},
			installPath: `C:\BeamMP-Server`,
			want:        "v3.8.2",
		},
		{
			// The recorded version belongs to the recorded install, not
			// to whatever --path points at.
			name:        "different_install",
			state:       beammpctl.ServerInstallState{Path: `C:\BeamMP-Server`, Version: "v3.8.2"},
			installPath: `D:\Other-Server`,
			want:        "",
		},
		{
			name:        "no_state",
			state:       beammpctl.ServerInstallState{},
			installPath: `C:\BeamMP-Server`,
			want:        "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, installedVersion(test.state, test.installPath))
		})
	}
}

func Test_isUpdateAvailable(t *testing.T) {
	tests := []struct {
		name      string
		tag       string
		installed string
		want      bool
	}{
		{
			name:      "newer",
			tag:       "v3.9.0",
			installed: "v3.8.2",
			want:      true,
		},
		{
			name:      "same",
			tag:       "v3.8.2",
			installed: "v3.8.2",
			want:      false,
		},
		{
			name:      "older",
			tag:       "v3.8.1",
			installed: "v3.8.2",
			want:      false,
		},
		{
			name:      "unknown_installed",
			tag:       "v3.8.2",
			installed: "",
			want:      true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			release := &releasefinder.Release{Tag: test.tag}

			assert.Equal(t, test.want, isUpdateAvailable(release, test.installed))
		})
	}
}
