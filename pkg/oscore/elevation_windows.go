//go:build windows
// +build windows

package oscore

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process token carries
// administrator privileges.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
