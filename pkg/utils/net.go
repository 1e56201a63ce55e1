package utils

import (
	"net"
	"strconv"
)

// IsTCPPortAvailable reports whether a TCP listener can be bound on the
// given port. A false result usually means another process, likely an
// already running server, holds it.
func IsTCPPortAvailable(port int) bool {
	l, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = l.Close()

	return true
}

func IsUDPPortAvailable(port int) bool {
	c, err := net.ListenPacket("udp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = c.Close()

	return true
}
