package selfupdate

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/releasefinder"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/minio/selfupdate"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/mod/semver"
)

const releasesAPI = "https://api.github.com/repos/beammp-community/beammpctl/releases"

//nolint:funlen
func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	fmt.Println("Self update")

	if _, err := beammpctl.InitLogging(); err != nil {
		log.Println("Failed to set up log file:", err)
	}

	fmt.Println("Checking new versions ...")
	release, err := findRelease(ctx)
	if err != nil {
		return errors.WithMessage(err, "failed to find release")
	}

	fmt.Println("Last version is", release.Tag)
	fmt.Println("Your version is", beammp.Version)

	if len(beammp.Version) >= 3 && beammp.Version[0:3] == "dev" && !cliCtx.Bool("force") {
		fmt.Println(
			"You use a development version. " +
				"Specify the --force flag to update it to the latest release.",
		)

		return nil
	}

	if !cliCtx.Bool("force") && !isUpdateAvailable(ctx, release) {
		fmt.Println("No updates available")

		return nil
	}

	fmt.Println("Update available")
	fmt.Printf("Downloading from %s \n", release.URL)

	f, err := os.CreateTemp("", "beammpctl")
	if err != nil {
		return errors.WithMessage(err, "failed to create temp file")
	}
	defer func() {
		err := f.Close()
		if err != nil {
			fmt.Println("Failed to close temp file")

			return
		}
		err = os.Remove(f.Name())
		if err != nil {
			fmt.Println("Failed to remove temp file")
		}
	}()

	err = utils.DownloadFile(
		ctx,
		release.URL,
		f.Name(),
	)
	if err != nil {
		return errors.WithMessage(err, "failed to download")
	}

	_, err = f.Seek(0, 0)
	if err != nil {
		return errors.WithMessage(err, "failed to seek temp file")
	}

	fmt.Println("Applying ...")
	err = selfupdate.Apply(f, selfupdate.Options{})
	if err != nil {
		return errors.WithMessage(err, "failed to update")
	}

	fmt.Println("Updated successfully")

	return nil
}

func isUpdateAvailable(_ context.Context, release *releasefinder.Release) bool {
	return semver.Compare(release.Tag, beammp.Version) == +1
}

func findRelease(ctx context.Context) (*releasefinder.Release, error) {
	release, err := releasefinder.Find(
		ctx,
		releasesAPI,
		assetName(),
		"latest",
	)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to find release")
	}

	return release, nil
}

func assetName() string {
	name := fmt.Sprintf("beammpctl-%s-%s", runtime.GOOS, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	return name
}
