//go:build windows
// +build windows

package redist

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/beammp-community/beammpctl/pkg/oscore"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pkg/errors"
)

// InstallAll installs every redistributable from the manifest that is
// not already present. Installers run unattended and are deleted once
// the install process exits.
func InstallAll(ctx context.Context) error {
	redistributables, err := Load()
	if err != nil {
		return err
	}

	for _, r := range redistributables {
		if isInstalled(ctx, r) {
			fmt.Printf("%s is already installed\n", r.Name)

			continue
		}

		err = install(ctx, r)
		if err != nil {
			return errors.WithMessagef(err, "failed to install %s", r.Name)
		}
	}

	return nil
}

func isInstalled(ctx context.Context, r Redistributable) bool {
	if !utils.IsCommandAvailable("reg") {
		return false
	}

	for _, registryPath := range r.RegistryPaths {
		out, err := oscore.ExecCommandWithOutput(ctx, "reg", "query", "HKLM\\"+registryPath, "/v", "Installed")
		if err != nil {
			continue
		}

		if installedFlagSet(out) {
			return true
		}
	}

	return false
}

func install(ctx context.Context, r Redistributable) error {
	tmpDir, err := os.MkdirTemp("", "beammpctl-redist")
	if err != nil {
		return errors.WithMessage(err, "failed to create temp directory")
	}
	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			log.Println(errors.WithMessage(err, "failed to remove temp directory"))
		}
	}()

	installerPath := filepath.Join(tmpDir, r.FileName)

	fmt.Printf("Downloading %s ...\n", r.Name)
	err = utils.DownloadFile(ctx, r.DownloadURL, installerPath)
	if err != nil {
		return errors.WithMessage(err, "failed to download installer")
	}

	fmt.Printf("Installing %s ...\n", r.Name)
	result, err := oscore.ExecCommandWait(ctx, installerPath, r.InstallArgs...)
	if err != nil {
		return errors.WithMessage(err, "failed to run installer")
	}

	if !r.isExitCodeAllowed(result.ExitCode) {
		return errors.Errorf("installer exited with code %d", result.ExitCode)
	}

	return nil
}
