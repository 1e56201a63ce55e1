//go:build windows
// +build windows

package firewall

import (
	"context"
	"log"

	"github.com/beammp-community/beammpctl/pkg/oscore"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Replace deletes any rules matching the given display names and creates
// them anew. A delete of a rule that does not exist is not an error:
// netsh reports "No rules match the specified criteria" with a non-zero
// exit code, which is swallowed here.
func Replace(ctx context.Context, rules ...Rule) error {
	for _, rule := range rules {
		result, err := oscore.ExecCommandWait(ctx, "netsh", deleteRuleArgs(rule)...)
		if err != nil {
			return errors.WithMessagef(err, "failed to execute netsh delete command for rule %s", rule.Name)
		}
		if result.ExitCode != 0 {
			log.Printf("no existing firewall rule %q, nothing to delete\n", rule.Name)
		}
	}

	var err error
	for _, rule := range rules {
		addErr := oscore.ExecCommand(ctx, "netsh", addRuleArgs(rule)...)
		if addErr != nil {
			err = multierr.Append(err, errors.WithMessagef(addErr, "failed to add firewall rule %s", rule.Name))
		}
	}

	return err
}
