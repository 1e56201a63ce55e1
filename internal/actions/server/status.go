package server

import (
	"fmt"
	"time"

	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/oscore"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Status(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	state, err := beammpctl.LoadServerInstallState(ctx)
	if err == nil {
		fmt.Println("Install path:", state.Path)
		if state.Version != "" {
			fmt.Println("Installed version:", state.Version)
		}
	}

	p, err := oscore.FindProcessByName(ctx, beammp.ServerProcessName)
	if err != nil {
		return errors.WithMessage(err, "failed to inspect processes")
	}

	if p == nil {
		fmt.Println("Server is not running")

		return nil
	}

	fmt.Printf("Server is running (pid %d)\n", p.Pid)

	createTime, err := p.CreateTimeWithContext(ctx)
	if err == nil {
		startedAt := time.UnixMilli(createTime)
		fmt.Println("Started:", startedAt.Format(time.RFC1123))
		fmt.Println("Uptime:", time.Since(startedAt).Round(time.Second))
	}

	return nil
}
