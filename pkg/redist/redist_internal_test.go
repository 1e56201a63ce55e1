package redist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	redistributables, err := Load()

	require.NoError(t, err)
	require.NotEmpty(t, redistributables)

	for _, r := range redistributables {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.RegistryPaths)
		assert.NotEmpty(t, r.DownloadURL)
		assert.NotEmpty(t, r.FileName)
		assert.NotEmpty(t, r.InstallArgs)
		assert.Contains(t, r.AllowedExitCodes, 0)
	}
}

func Test_installedFlagSet(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		expected bool
	}{
		{
			name: "flag_set",
			out: "\r\nHKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\VisualStudio\\14.0\\VC\\Runtimes\\x64\r\n" +
				"    Installed    REG_DWORD    0x1\r\n",
			expected: true,
		},
		{
			name: "flag_cleared",
			out: "\r\nHKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\VisualStudio\\14.0\\VC\\Runtimes\\x64\r\n" +
				"    Installed    REG_DWORD    0x0\r\n",
			expected: false,
		},
		{
			name:     "value_missing",
			out:      "ERROR: The system was unable to find the specified registry key or value.\r\n",
			expected: false,
		},
		{
			name:     "empty_output",
			out:      "",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, installedFlagSet(test.out))
		})
	}
}

func Test_isExitCodeAllowed(t *testing.T) {
	r := Redistributable{AllowedExitCodes: []int{0, 1638, 3010}}

	assert.True(t, r.isExitCodeAllowed(0))
	assert.True(t, r.isExitCodeAllowed(1638))
	assert.True(t, r.isExitCodeAllowed(3010))
	assert.False(t, r.isExitCodeAllowed(1))
}
