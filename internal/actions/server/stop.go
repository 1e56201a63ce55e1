package server

import (
	"fmt"

	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/oscore"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Stop(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	p, err := oscore.FindProcessByName(ctx, beammp.ServerProcessName)
	if err != nil {
		return errors.WithMessage(err, "failed to inspect processes")
	}

	if p == nil {
		fmt.Println("Server is not running")

		return nil
	}

	fmt.Printf("Stopping %s (pid %d) ...\n", beammp.ServerProcessName, p.Pid)

	err = oscore.TerminateAndKillProcess(ctx, p)
	if err != nil {
		return errors.WithMessage(err, "failed to stop server")
	}

	fmt.Println("Server stopped")

	return nil
}
