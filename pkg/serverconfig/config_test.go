package serverconfig_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beammp-community/beammpctl/pkg/serverconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Default(t *testing.T) {
	cfg := serverconfig.Default()

	assert.Equal(t, "BeamMP Server", cfg.General.Name)
	assert.Equal(t, 30814, cfg.General.Port)
	assert.Equal(t, 1, cfg.General.Cars)
	assert.Equal(t, 1, cfg.General.MaxCars)
	assert.Equal(t, 10, cfg.General.MaxPlayers)
	assert.False(t, cfg.General.Lan)
	assert.True(t, cfg.General.Public)
	assert.False(t, cfg.General.Debug)
	assert.True(t, cfg.General.Private)
	assert.Empty(t, cfg.General.AuthKey)

	assert.True(t, cfg.Misc.SendErrors)
	assert.False(t, cfg.Misc.SendErrorsShowPlayerName)
	assert.False(t, cfg.Misc.HideUpdateMessages)
	assert.Equal(t, 5000, cfg.Misc.UpdateIntervalMs)
}

func Test_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ServerConfig.toml")

	err := serverconfig.Write(serverconfig.Default(), path)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, key := range []string{
		"[General]", "Name", "Port", "Cars", "Max_Cars", "Max_Players",
		"Lan", "Public", "Debug", "Private", "AuthKey",
		"[Misc]", "SendErrors", "SendErrorsShowPlayerName",
		"HideUpdateMessages", "UpdateIntervalMs",
	} {
		assert.Contains(t, string(contents), key)
	}

	cfg, err := serverconfig.Read(path)
	require.NoError(t, err)
	assert.Equal(t, serverconfig.Default(), cfg)
}

func Test_SetAuthKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ServerConfig.toml")

	err := serverconfig.Write(serverconfig.Default(), path)
	require.NoError(t, err)

	err = serverconfig.SetAuthKey(context.Background(), path, "00000000-aaaa-bbbb-cccc-000000000000")
	require.NoError(t, err)

	cfg, err := serverconfig.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "00000000-aaaa-bbbb-cccc-000000000000", cfg.General.AuthKey)

	// The rest of the file survives the line edit.
	assert.Equal(t, "BeamMP Server", cfg.General.Name)
	assert.Equal(t, 30814, cfg.General.Port)
}
