package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/altinukshini/glgrep/internal/model"
	"github.com/altinukshini/glgrep/internal/ops"
	progressview "github.com/altinukshini/glgrep/internal/tui/progress"
	"github.com/altinukshini/glgrep/internal/ui"
)

// SearchAction resolves the project set and fans the blob search out across
// it. Per-project failures are reported in the output but do not fail the
// run; only configuration, usage, resolution and listing errors abort.
func SearchAction(ctx context.Context, cmd *cli.Command) error {
	reg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	identifier := cmd.String("project")
	allProjects := cmd.Bool("all-projects")
	if identifier != "" && allProjects {
		return fmt.Errorf("--project and --all-projects are mutually exclusive")
	}

	inst, client, err := clientFor(reg, cmd.String("instance"))
	if err != nil {
		return err
	}

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Printf("Searching in GitLab instance: %s\n", ui.StyleProject.Render(inst.Name))
	if allProjects {
		fmt.Println("Fetching all projects...")
	}

	projects, err := ops.ResolveProjects(ctx, client, identifier, allProjects)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return ops.ErrNoProjects
	}

	query := cmd.String("query")
	fmt.Printf("Searching for: %s\n", ui.StyleQuery.Render(query))
	fmt.Printf("Searching in %d projects...\n", len(projects))

	opts := ops.SearchOptions{Workers: int(cmd.Int("concurrency"))}

	var agg *ops.AggregateResult
	if cmd.Bool("no-progress") || !isatty.IsTerminal(os.Stderr.Fd()) {
		agg, err = runSearchPlain(ctx, client, query, projects, opts)
	} else {
		agg, err = runSearchTUI(ctx, client, query, projects, opts)
	}
	if err != nil {
		return err
	}

	fmt.Print(ui.RenderResults(agg))
	return nil
}

// runSearchPlain reports progress as plain stderr lines, for pipes and CI.
func runSearchPlain(ctx context.Context, searcher ops.BlobSearcher, query string, projects []model.Project, opts ops.SearchOptions) (*ops.AggregateResult, error) {
	opts.OnProgress = func(p ops.Progress) {
		if p.Err != nil {
			fmt.Fprintf(os.Stderr, "Error searching in project %s: %v\n", p.Project, p.Err)
			return
		}
		fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.Project)
	}
	return ops.RunSearch(ctx, searcher, query, projects, opts)
}

// runSearchTUI drives the bubbletea progress view while the fan-out runs.
func runSearchTUI(ctx context.Context, searcher ops.BlobSearcher, query string, projects []model.Project, opts ops.SearchOptions) (*ops.AggregateResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(progressview.New(len(projects)), tea.WithOutput(os.Stderr))
	opts.OnProgress = func(p ops.Progress) {
		prog.Send(progressview.UpdateMsg(p))
	}

	type outcome struct {
		agg *ops.AggregateResult
		err error
	}
	res := make(chan outcome, 1)
	go func() {
		agg, err := ops.RunSearch(ctx, searcher, query, projects, opts)
		res <- outcome{agg, err}
		prog.Send(progressview.DoneMsg{})
	}()

	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}

	// The view may have quit early (ctrl+c). Cancel the remaining tasks
	// and wait for the join barrier; cancellations land in their slots.
	cancel()
	r := <-res
	return r.agg, r.err
}
