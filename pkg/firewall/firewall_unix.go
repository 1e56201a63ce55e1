//go:build !windows
// +build !windows

package firewall

import (
	"context"

	"github.com/pkg/errors"
)

var errNotAvailableForNonWindows = errors.New("firewall configuration is not available for non-Windows OS")

func Replace(_ context.Context, _ ...Rule) error {
	return errNotAvailableForNonWindows
}
