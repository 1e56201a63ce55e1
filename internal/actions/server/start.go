package server

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/shellquote"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Start launches the server attached to the current console and waits
// for it. Ctrl+C is the documented way to stop it.
func Start(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	installPath := resolveInstallPath(ctx, cliCtx.String("path"))
	executablePath := filepath.Join(installPath, beammp.ServerExecutableName)

	if !utils.IsFileExists(executablePath) {
		return errors.Errorf("no server executable at %s, run 'beammpctl install' first", executablePath)
	}

	configPath := cliCtx.String("config")
	if configPath == "" {
		configPath = filepath.Join(beammp.ConfigDirName, beammp.ConfigFileName)
	}

	args := []string{"--config", configPath}

	if extra := cliCtx.String("args"); extra != "" {
		extraArgs, err := shellquote.Split(extra)
		if err != nil {
			return errors.WithMessage(err, "failed to parse extra arguments")
		}
		args = append(args, extraArgs...)
	}

	fmt.Println("Starting BeamMP server, press Ctrl+C to stop it")

	cmd := exec.CommandContext(ctx, executablePath, args...)
	cmd.Dir = installPath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		return errors.WithMessage(err, "server exited with an error")
	}

	return nil
}
