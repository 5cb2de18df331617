package commands

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/altinukshini/glgrep/internal/api"
	"github.com/altinukshini/glgrep/internal/config"
)

var logOnce sync.Once

// setup configures logging and loads the instance registry. Every action
// calls it first.
func setup(cmd *cli.Command) (*config.Registry, string, error) {
	logOnce.Do(func() {
		level := slog.LevelWarn
		if cmd.Bool("verbose") {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	})

	path := cmd.String("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}

	reg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return reg, path, nil
}

// clientFor picks the named instance (or the first configured one) and
// builds an API client for it.
func clientFor(reg *config.Registry, name string) (config.Instance, *api.Client, error) {
	inst, err := reg.Find(name)
	if err != nil {
		return config.Instance{}, nil, err
	}
	client, err := api.NewClient(inst)
	if err != nil {
		return config.Instance{}, nil, fmt.Errorf("instance %q: %w", inst.Name, err)
	}
	return inst, client, nil
}
