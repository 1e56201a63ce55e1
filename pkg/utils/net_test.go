package utils_test

import (
	"net"
	"testing"

	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IsTCPPortAvailable_busy(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = l.Close()
	}()

	port := l.Addr().(*net.TCPAddr).Port

	assert.False(t, utils.IsTCPPortAvailable(port))
}

func Test_IsUDPPortAvailable_busy(t *testing.T) {
	c, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = c.Close()
	}()

	port := c.LocalAddr().(*net.UDPAddr).Port

	assert.False(t, utils.IsUDPPortAvailable(port))
}
