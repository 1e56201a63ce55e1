//go:build !windows
// +build !windows

package oscore

import "os"

func IsElevated() bool {
	return os.Geteuid() == 0
}
