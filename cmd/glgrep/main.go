package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/altinukshini/glgrep/cmd/glgrep/commands"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:    "glgrep",
		Usage:   "Search code across the projects of a GitLab instance",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path (default: <user config dir>/glgrep/config.json)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Configure GitLab instances",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "GitLab instance name",
					},
					&cli.StringFlag{
						Name:    "url",
						Aliases: []string{"u"},
						Usage:   "GitLab URL",
					},
					&cli.StringFlag{
						Name:    "token",
						Aliases: []string{"t"},
						Usage:   "GitLab API token",
					},
					&cli.BoolFlag{
						Name:    "list",
						Aliases: []string{"l"},
						Usage:   "List all configured GitLab instances",
					},
				},
				Action: commands.ConfigAction,
			},
			{
				Name:  "search",
				Usage: "Search for code in GitLab projects",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Search query",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "instance",
						Aliases: []string{"i"},
						Usage:   "GitLab instance name (default: first configured)",
					},
					&cli.StringFlag{
						Name:    "project",
						Aliases: []string{"p"},
						Usage:   "Project ID or path with namespace",
					},
					&cli.BoolFlag{
						Name:    "all-projects",
						Aliases: []string{"a"},
						Usage:   "Search in all projects (may be slow)",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "Max concurrent searches (0 = one per project)",
						Value: 16,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Overall search deadline (0 = none)",
					},
					&cli.BoolFlag{
						Name:  "no-progress",
						Usage: "Disable the progress bar",
					},
				},
				Action: commands.SearchAction,
			},
			{
				Name:  "projects",
				Usage: "List projects in a GitLab instance",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "instance",
						Aliases: []string{"i"},
						Usage:   "GitLab instance name (default: first configured)",
					},
					&cli.BoolFlag{
						Name:  "archived",
						Usage: "Include archived projects",
					},
				},
				Action: commands.ProjectsAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
