package app

import (
	"fmt"
	"log"

	"github.com/beammp-community/beammpctl/internal/actions/collectlogs"
	"github.com/beammp-community/beammpctl/internal/actions/install"
	"github.com/beammp-community/beammpctl/internal/actions/selfupdate"
	"github.com/beammp-community/beammpctl/internal/actions/server"
	"github.com/beammp-community/beammpctl/internal/actions/update"
	contextInternal "github.com/beammp-community/beammpctl/internal/context"
	"github.com/beammp-community/beammpctl/internal/pkg/beammpctl"
	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/urfave/cli/v2"
)

//nolint:funlen
func Run(args []string) {
	app := &cli.App{
		Name:    "beammpctl",
		Usage:   "BeamMP server installation and management",
		Version: beammp.Version,
		Before: func(context *cli.Context) error {
			var err error
			context.Context, err = contextInternal.SetOSContext(context.Context)
			if err != nil {
				return err
			}

			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "non-interactive",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:        "install",
				Aliases:     []string{"i"},
				Description: "Install BeamMP server",
				Usage:       "Install BeamMP server",
				Action:      install.Handle,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Install root directory",
					},
					&cli.StringFlag{
						Name:  "version",
						Usage: "Server version to install (default: latest)",
					},
					&cli.StringFlag{
						Name:  "config-source",
						Usage: "Directory with an existing configuration to copy",
					},
					&cli.StringFlag{
						Name:  "auth-key",
						Usage: "AuthKey to put into the configuration",
					},
					&cli.BoolFlag{
						Name:  "skip-firewall",
						Usage: "Do not touch firewall rules",
					},
					&cli.BoolFlag{
						Name:  "skip-redist",
						Usage: "Do not install runtime redistributables",
					},
				},
			},
			{
				Name:        "update",
				Aliases:     []string{"upgrade", "u"},
				Description: "Update server executable to a new version",
				Usage:       "Update server executable to a new version",
				Action:      update.Handle,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Install root directory",
					},
					&cli.StringFlag{
						Name:  "version",
						Usage: "Server version to update to (default: latest)",
					},
				},
			},
			{
				Name:        "server",
				Aliases:     []string{"s"},
				Description: "Server process actions",
				Usage:       "Server process actions",
				Subcommands: []*cli.Command{
					{
						Name:        "start",
						Description: "Start server attached to this console",
						Usage:       "Start server attached to this console",
						Action:      server.Start,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "path",
								Usage: "Install root directory",
							},
							&cli.StringFlag{
								Name:  "config",
								Usage: "Configuration file path relative to the install root",
							},
							&cli.StringFlag{
								Name:  "args",
								Usage: "Extra arguments passed to the server executable",
							},
						},
					},
					{
						Name:        "stop",
						Description: "Stop a running server",
						Usage:       "Stop a running server",
						Action:      server.Stop,
					},
					{
						Name:        "status",
						Description: "Show server process status",
						Usage:       "Show server process status",
						Action:      server.Status,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "path",
								Usage: "Install root directory",
							},
						},
					},
				},
			},
			{
				Name:        "self-update",
				Description: "Update beammpctl to the latest version",
				Usage:       "Update beammpctl to the latest version",
				Action:      selfupdate.Handle,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: "force",
					},
				},
			},
			{
				Name:        "collect-logs",
				Description: "Collect server and tool logs into an archive",
				Usage:       "Collect server and tool logs into an archive",
				Action:      collectlogs.Handle,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Install root directory",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Archive output path",
					},
				},
			},
		},
	}

	err := app.Run(args)
	if err != nil {
		fmt.Println(err)
		if logPath := beammpctl.LogPath(); logPath != "" {
			fmt.Println("See details in log file:", logPath)
		}
		log.Fatal(err)
	}
}
