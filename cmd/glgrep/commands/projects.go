package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/altinukshini/glgrep/internal/ui"
)

// ProjectsAction lists every project the instance token is a member of.
func ProjectsAction(ctx context.Context, cmd *cli.Command) error {
	reg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	inst, client, err := clientFor(reg, cmd.String("instance"))
	if err != nil {
		return err
	}

	fmt.Printf("Fetching projects from GitLab instance: %s\n", ui.StyleProject.Render(inst.Name))

	projects, err := client.ListProjects(ctx, cmd.Bool("archived"))
	if err != nil {
		return err
	}

	fmt.Print(ui.RenderProjects(projects))
	return nil
}
