// Package collectlogs bundles server and tool logs into an archive the
// operator can attach to a support request.
package collectlogs

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	contextInternal "github.com/beammp-community/beammpctl/internal/context"
	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

//nolint:funlen
func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	if _, err := beammpctl.InitLogging(); err != nil {
		log.Println("Failed to set up log file:", err)
	}

	tmpDir, err := os.MkdirTemp("", "beammpctl-collect-logs")
	if err != nil {
		return errors.WithMessage(err, "failed to create temp directory")
	}
	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			log.Println(errors.WithMessage(err, "failed to remove temporary directory"))
		}
	}()

	installPath := cliCtx.String("path")
	if installPath == "" {
		state, err := beammpctl.LoadServerInstallState(ctx)
		if err == nil && state.Path != "" {
			installPath = state.Path
		} else {
			installPath = beammp.DefaultInstallPath
		}
	}

	err = collectServerLogs(ctx, installPath, tmpDir)
	if err != nil {
		return errors.WithMessage(err, "failed to collect server logs")
	}

	err = collectToolLogs(ctx, tmpDir)
	if err != nil {
		return errors.WithMessage(err, "failed to collect tool logs")
	}

	err = collectSystemInfo(ctx, tmpDir)
	if err != nil {
		return errors.WithMessage(err, "failed to collect system info")
	}

	output := cliCtx.String("output")
	if output == "" {
		output = fmt.Sprintf("beammp-logs_%s.tar.gz", time.Now().Format("2006-01-02_15-04-05"))
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.WithMessage(err, "failed to create archive file")
	}
	defer func() {
		err := f.Close()
		if err != nil {
			log.Println(errors.WithMessage(err, "failed to close archive file"))
		}
	}()

	err = compress(tmpDir, f)
	if err != nil {
		return errors.WithMessage(err, "failed to compress logs")
	}

	fmt.Println()
	fmt.Println("--------------------------")
	fmt.Println("Logs collected to", output)
	fmt.Println("Attach this file to your support request")

	return nil
}

func collectServerLogs(_ context.Context, installPath string, destinationDir string) error {
	logsPath := filepath.Join(installPath, "logs")
	if utils.IsFileExists(logsPath) {
		err := utils.Copy(logsPath, filepath.Join(destinationDir, "server-logs"))
		if err != nil {
			return err
		}
	}

	// The server also drops a log next to the executable.
	serverLog := filepath.Join(installPath, "Server.log")
	if utils.IsFileExists(serverLog) {
		return utils.Copy(serverLog, filepath.Join(destinationDir, "Server.log"))
	}

	return nil
}

func collectToolLogs(_ context.Context, destinationDir string) error {
	logDir, err := beammpctl.LogDirectory()
	if err != nil {
		return err
	}

	if !utils.IsFileExists(logDir) {
		return nil
	}

	return utils.Copy(logDir, filepath.Join(destinationDir, "beammpctl-logs"))
}

func collectSystemInfo(ctx context.Context, destinationDir string) error {
	info := contextInternal.OSInfoFromContext(ctx)

	return utils.WriteContentsToFile(
		[]byte(info.String()),
		filepath.Join(destinationDir, "system-info.txt"),
	)
}
