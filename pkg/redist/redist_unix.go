//go:build !windows
// +build !windows

package redist

import (
	"context"

	"github.com/pkg/errors"
)

var errNotAvailableForNonWindows = errors.New("redistributable installation is not available for non-Windows OS")

func InstallAll(_ context.Context) error {
	return errNotAvailableForNonWindows
}
