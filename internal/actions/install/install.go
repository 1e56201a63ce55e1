package install

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
	"github.com/beammp-community/beammpctl/pkg/firewall"
	"github.com/beammp-community/beammpctl/pkg/oscore"
	"github.com/beammp-community/beammpctl/pkg/redist"
	"github.com/beammp-community/beammpctl/pkg/releasefinder"
	"github.com/beammp-community/beammpctl/pkg/scripts"
	"github.com/beammp-community/beammpctl/pkg/serverconfig"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var errNotElevated = errors.New(
	"administrator privileges are required, run the command from an elevated shell",
)

type installState struct {
	Path           string
	Version        string
	ConfigSource   string
	AuthKey        string
	SkipFirewall   bool
	SkipRedist     bool
	NonInteractive bool

	ExecutablePath  string
	ConfigPath      string
	ResolvedVersion string
	ConfigSeeded    bool
}

//nolint:funlen
func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	fmt.Println("Install BeamMP server")

	// Nothing may touch the filesystem before this check.
	if !oscore.IsElevated() {
		return errNotElevated
	}

	if _, err := beammpctl.InitLogging(); err != nil {
		log.Println("Failed to set up log file:", err)
	}

	state := installState{
		Path:           cliCtx.String("path"),
		Version:        cliCtx.String("version"),
		ConfigSource:   cliCtx.String("config-source"),
		AuthKey:        cliCtx.String("auth-key"),
		SkipFirewall:   cliCtx.Bool("skip-firewall"),
		SkipRedist:     cliCtx.Bool("skip-redist"),
		NonInteractive: cliCtx.Bool("non-interactive"),
	}

	if state.Path == "" {
		state.Path = beammp.DefaultInstallPath
	}
	state.ExecutablePath = filepath.Join(state.Path, beammp.ServerExecutableName)
	state.ConfigPath = filepath.Join(state.Path, beammp.ConfigDirName, beammp.ConfigFileName)

	log.Println(contextInternal.OSInfoFromContext(ctx))

	state, err := checkServerIsNotRunning(ctx, state)
	if err != nil {
		return err
	}

	fmt.Println("Creating directories ...")
	state, err = provisionDirectories(ctx, state)
	if err != nil {
		return errors.WithMessage(err, "failed to create directories")
	}

	fmt.Println("Downloading server executable ...")
	state, err = installServerBinaries(ctx, state)
	if err != nil {
		return errors.WithMessage(err, "failed to install server binaries")
	}

	if !state.SkipRedist {
		fmt.Println("Installing runtime redistributables ...")
		err = redist.InstallAll(ctx)
		if err != nil {
			fmt.Println("Failed to install runtime redistributables:", err)
			fmt.Println("The server may not start until they are installed manually")
		}
	}

	fmt.Println("Seeding configuration ...")
	state, err = seedConfiguration(ctx, state)
	if err != nil {
		return errors.WithMessage(err, "failed to seed configuration")
	}

	state, err = applyAuthKey(ctx, state)
	if err != nil {
		return errors.WithMessage(err, "failed to apply auth key")
	}

	if !state.SkipFirewall {
		fmt.Println("Configuring firewall ...")
		err = configureFirewall(ctx, state)
		if err != nil {
			fmt.Println("Failed to configure firewall:", err)
			fmt.Println("Open the server port manually")
		}
	}

	fmt.Println("Writing helper scripts ...")
	err = scripts.Write(scripts.DefaultParams(state.Path))
	if err != nil {
		return errors.WithMessage(err, "failed to write helper scripts")
	}

	err = saveInstallState(ctx, state)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to save install state"))
	}

	report(ctx, state)

	return nil
}

// checkServerIsNotRunning refuses to reinstall over an executable that a
// running server process holds open. Replacing a locked file fails
// halfway through on Windows, stopping first is the only safe order.
func checkServerIsNotRunning(ctx context.Context, state installState) (installState, error) {
	p, err := oscore.FindProcessByName(ctx, beammp.ServerProcessName)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to inspect processes"))

		return state, nil
	}

	if p == nil {
		return state, nil
	}

	if utils.IsFileExists(state.ExecutablePath) {
		return state, errors.Errorf(
			"a %s process is running (pid %d), stop it before installing",
			beammp.ServerProcessName, p.Pid,
		)
	}

	fmt.Printf("A %s process is running from another location, continuing\n", beammp.ServerProcessName)

	return state, nil
}

func provisionDirectories(_ context.Context, state installState) (installState, error) {
	if !utils.IsFileExists(state.Path) {
		err := os.MkdirAll(state.Path, 0755)
		if err != nil {
			return state, errors.WithMessagef(err, "failed to create install root %s", state.Path)
		}
	}

	for _, name := range beammp.SubDirectories {
		dir := filepath.Join(state.Path, name)
		if utils.IsFileExists(dir) {
			continue
		}

		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return state, errors.WithMessagef(err, "failed to create directory %s", dir)
		}
	}

	return state, nil
}

func installServerBinaries(ctx context.Context, state installState) (installState, error) {
	release, err := releasefinder.Find(
		ctx,
		beammp.ReleasesAPI,
		"BeamMP-Server.exe",
		state.Version,
	)
	if err != nil {
		return state, errors.WithMessage(err, "failed to find server release")
	}

	fmt.Println("Found server version", release.Tag)

	tmpDir, err := os.MkdirTemp("", "beammpctl-server")
	if err != nil {
		return state, errors.WithMessage(err, "failed to create temp directory")
	}
	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			log.Println(errors.WithMessagef(err, "failed to remove temp dir %s", tmpDir))
		}
	}()

	tmpFile := filepath.Join(tmpDir, beammp.ServerExecutableName)
	err = utils.DownloadFile(ctx, release.URL, tmpFile)
	if err != nil {
		return state, errors.WithMessage(err, "failed to download server executable")
	}

	err = utils.Move(tmpFile, state.ExecutablePath)
	if err != nil {
		return state, errors.WithMessage(err, "failed to move server executable into place")
	}

	state.ResolvedVersion = release.Tag

	return state, nil
}

func seedConfiguration(_ context.Context, state installState) (installState, error) {
	if state.ConfigSource != "" && utils.IsFileExists(state.ConfigSource) {
		fmt.Printf("Copying configuration from %s ...\n", state.ConfigSource)

		err := utils.Copy(state.ConfigSource, filepath.Join(state.Path, beammp.ConfigDirName))
		if err != nil {
			return state, errors.WithMessage(err, "failed to copy configuration")
		}

		return state, nil
	}

	// An existing config is never overwritten, the operator owns it.
	if utils.IsFileExists(state.ConfigPath) {
		fmt.Println("Configuration already exists, keeping it")

		return state, nil
	}

	cfg := serverconfig.Default()

	if !state.NonInteractive {
		name, err := utils.Ask(
			fmt.Sprintf("Server display name (default: %s): ", cfg.General.Name),
			true,
			nil,
		)
		if err != nil {
			return state, errors.WithMessage(err, "failed to ask server name")
		}
		if name != "" {
			cfg.General.Name = name
		}
	}

	err := serverconfig.Write(cfg, state.ConfigPath)
	if err != nil {
		return state, errors.WithMessage(err, "failed to write default configuration")
	}

	state.ConfigSeeded = true

	return state, nil
}

func applyAuthKey(ctx context.Context, state installState) (installState, error) {
	key := state.AuthKey

	if key == "" && !state.NonInteractive {
		var err error
		key, err = promptAuthKey()
		if err != nil {
			return state, errors.WithMessage(err, "failed to read auth key")
		}
	}

	if key == "" {
		return state, nil
	}

	err := serverconfig.SetAuthKey(ctx, state.ConfigPath, key)
	if err != nil {
		return state, errors.WithMessage(err, "failed to set auth key")
	}

	return state, nil
}

func configureFirewall(ctx context.Context, state installState) error {
	port := beammp.DefaultPort
	if cfg, err := serverconfig.Read(state.ConfigPath); err == nil && cfg.General.Port != 0 {
		port = cfg.General.Port
	}

	if !utils.IsTCPPortAvailable(port) || !utils.IsUDPPortAvailable(port) {
		fmt.Printf("Port %d is already in use by another process\n", port)
	}

	return firewall.Replace(
		ctx,
		firewall.Rule{Name: beammp.FirewallRuleNameTCP, Protocol: firewall.ProtocolTCP, Port: port},
		firewall.Rule{Name: beammp.FirewallRuleNameUDP, Protocol: firewall.ProtocolUDP, Port: port},
	)
}

func saveInstallState(ctx context.Context, state installState) error {
	port := beammp.DefaultPort
	if cfg, err := serverconfig.Read(state.ConfigPath); err == nil && cfg.General.Port != 0 {
		port = cfg.General.Port
	}

	return beammpctl.SaveServerInstallState(ctx, beammpctl.ServerInstallState{
		Path:        state.Path,
		Version:     state.ResolvedVersion,
		Port:        port,
		InstalledAt: time.Now(),
	})
}

func report(_ context.Context, state installState) {
	authKeySet := false
	if cfg, err := serverconfig.Read(state.ConfigPath); err == nil {
		authKeySet = cfg.General.AuthKey != ""
	}

	fmt.Println()
	fmt.Println("---------------------------------")
	fmt.Println("BeamMP server installed")
	fmt.Println("Install path:", state.Path)
	fmt.Println("Configuration:", state.ConfigPath)
	if state.ResolvedVersion != "" {
		fmt.Println("Server version:", state.ResolvedVersion)
	}
	fmt.Println()
	fmt.Println("Next steps:")
	step := 1
	if !authKeySet {
		fmt.Printf("  %d. Obtain an AuthKey from %s\n", step, beammp.KeymasterURL)
		step++
		fmt.Printf("  %d. Put the AuthKey into %s\n", step, state.ConfigPath)
		step++
	}
	fmt.Printf("  %d. Review the configuration (name, port, player limits)\n", step)
	step++
	fmt.Printf("  %d. Start the server with %s or 'beammpctl server start'\n",
		step, filepath.Join(state.Path, beammp.StartScriptName))

	if !authKeySet {
		fmt.Println()
		fmt.Println("! The server will not accept players until an AuthKey is set")
	}
}
