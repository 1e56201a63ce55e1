package update

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/oscore"
	"github.com/beammp-community/beammpctl/pkg/releasefinder"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/mod/semver"
)

var errNotElevated = errors.New(
	"administrator privileges are required, run the command from an elevated shell",
)

type downloadFunc func(ctx context.Context, source string, dst string) error

//nolint:funlen
func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	fmt.Println("Update BeamMP server")

	if !oscore.IsElevated() {
		return errNotElevated
	}

	if _, err := beammpctl.InitLogging(); err != nil {
		log.Println("Failed to set up log file:", err)
	}

	installPath := cliCtx.String("path")
	version := cliCtx.String("version")

	state, stateErr := beammpctl.LoadServerInstallState(ctx)
	if stateErr != nil {
		log.Println(errors.WithMessage(stateErr, "failed to load install state"))
	}

	if installPath == "" {
		installPath = state.Path
	}
	if installPath == "" {
		installPath = beammp.DefaultInstallPath
	}

	executablePath := filepath.Join(installPath, beammp.ServerExecutableName)
	if !utils.IsFileExists(executablePath) {
		return errors.Errorf("no server executable at %s, run 'beammpctl install' first", executablePath)
	}

	fmt.Println("Checking new versions ...")
	release, err := releasefinder.Find(ctx, beammp.ReleasesAPI, "BeamMP-Server.exe", version)
	if err != nil {
		return errors.WithMessage(err, "failed to find server release")
	}

	fmt.Println("Latest version is", release.Tag)

	if version == "" && !isUpdateAvailable(release, installedVersion(state, installPath)) {
		fmt.Println("No updates available")

		return nil
	}

	fmt.Println("Stopping server ...")
	stopServer(ctx)

	fmt.Println("Updating ...")
	err = replaceExecutable(ctx, executablePath, release.URL, utils.DownloadFile)
	if err != nil {
		return err
	}

	state.Path = installPath
	state.Version = release.Tag
	state.UpdatedAt = time.Now()
	err = beammpctl.SaveServerInstallState(ctx, state)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to save install state"))
	}

	fmt.Println("Updated successfully")
	fmt.Printf("Start the server again with %s or 'beammpctl server start'\n",
		filepath.Join(installPath, beammp.StartScriptName))

	return nil
}

// installedVersion returns the recorded server version, but only when the
// recorded install path matches the one being updated. A --path pointing at
// another install must not inherit the state file's version.
func installedVersion(state beammpctl.ServerInstallState, installPath string) string {
	if state.Path == "" || filepath.Clean(state.Path) != filepath.Clean(installPath) {
		return ""
	}

	return state.Version
}

func isUpdateAvailable(release *releasefinder.Release, installedVersion string) bool {
	if installedVersion == "" {
		return true
	}

	return semver.Compare(release.Tag, installedVersion) == +1
}

func stopServer(ctx context.Context) {
	p, err := oscore.FindProcessByName(ctx, beammp.ServerProcessName)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to inspect processes"))

		return
	}
	if p == nil {
		return
	}

	err = oscore.TerminateAndKillProcess(ctx, p)
	if err != nil {
		log.Println(errors.WithMessagef(err, "failed to stop %s", beammp.ServerProcessName))
	}
}

// replaceExecutable backs the current executable up to a .bak next to
// it, downloads the new one over the original path, and puts the backup
// back if the download fails. The pre-update executable is never lost.
func replaceExecutable(ctx context.Context, executablePath string, url string, download downloadFunc) error {
	backupPath := executablePath + ".bak"
	backupMade := false

	if utils.IsFileExists(executablePath) {
		err := utils.Copy(executablePath, backupPath)
		if err != nil {
			return errors.WithMessage(err, "failed to make backup file")
		}
		backupMade = true
	}

	err := download(ctx, url, executablePath)
	if err != nil {
		if backupMade {
			restoreErr := utils.Copy(backupPath, executablePath)
			if restoreErr != nil {
				return errors.WithMessage(restoreErr, "failed to restore backup after failed download")
			}

			fmt.Println("Download failed, previous executable restored")
		}

		return errors.WithMessage(err, "failed to download server executable")
	}

	return nil
}
