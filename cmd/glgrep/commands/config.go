package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/altinukshini/glgrep/internal/api"
	"github.com/altinukshini/glgrep/internal/config"
	"github.com/altinukshini/glgrep/internal/ui"
)

// ConfigAction adds or updates an instance, or lists the registry.
func ConfigAction(ctx context.Context, cmd *cli.Command) error {
	reg, path, err := setup(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("list") {
		fmt.Print(ui.RenderInstances(reg))
		return nil
	}

	name := cmd.String("name")
	url := cmd.String("url")
	token := cmd.String("token")

	if name == "" && url == "" && token == "" {
		return fmt.Errorf("use --list to see configured instances, or provide --name, --url and --token to add or update one")
	}

	inst := config.Instance{Name: name, URL: url, Token: token}
	if err := inst.Validate(); err != nil {
		return err
	}

	if reg.Upsert(inst) {
		fmt.Printf("Updated GitLab instance: %s\n", ui.StyleProject.Render(inst.Name))
	} else {
		fmt.Printf("Added new GitLab instance: %s\n", ui.StyleProject.Render(inst.Name))
	}
	if err := config.Save(path, reg); err != nil {
		return err
	}

	// Connectivity check. The entry is already saved; a dead or
	// unauthorized instance is only a warning here.
	client, err := api.NewClient(inst)
	if err != nil {
		return err
	}
	version, err := client.Version(ctx)
	if err != nil {
		fmt.Printf("Failed to connect to GitLab instance: %s - %v\n", ui.StyleError.Render(inst.Name), err)
		return nil
	}
	fmt.Printf("Successfully connected to GitLab instance: %s (version: %s)\n",
		ui.StyleProject.Render(inst.Name), ui.StyleQuery.Render(version.Version))
	return nil
}
