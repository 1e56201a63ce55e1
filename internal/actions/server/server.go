// Package server holds the actions managing a locally installed server
// process.
package server

import (
	"context"
	"log"

	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/pkg/errors"
)

func resolveInstallPath(ctx context.Context, flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	state, err := beammpctl.LoadServerInstallState(ctx)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to load install state"))
	}
	if state.Path != "" {
		return state.Path
	}

	return beammp.DefaultInstallPath
}
