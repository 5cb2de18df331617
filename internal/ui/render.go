package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/altinukshini/glgrep/internal/config"
	"github.com/altinukshini/glgrep/internal/model"
	"github.com/altinukshini/glgrep/internal/ops"
)

// RenderResults formats an aggregate, grouped by project in resolution
// order. Snippet lines are numbered from the match's start line, matching
// what the file looks like on the ref.
func RenderResults(agg *ops.AggregateResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nFound %d results:\n", agg.MatchCount())

	for _, res := range agg.Results {
		if res.Err != nil {
			continue
		}
		for _, m := range res.Matches {
			fmt.Fprintf(&b, "\n%s - %s:%s\n",
				StyleProject.Render(res.Project.DisplayName()),
				StylePath.Render(m.Path),
				StyleLineNo.Render(strconv.Itoa(m.Startline)))
			for i, line := range m.Lines() {
				fmt.Fprintf(&b, "%s: %s\n",
					StyleLineNo.Render(strconv.Itoa(m.Startline+i)), line)
			}
		}
	}

	if failed := agg.FailedCount(); failed > 0 {
		fmt.Fprintf(&b, "\n%s\n", StyleError.Render(fmt.Sprintf("%d of %d projects failed:", failed, len(agg.Results))))
		for _, res := range agg.Results {
			if res.Err != nil {
				fmt.Fprintf(&b, "  %s: %v\n", StyleError.Render(res.Project.DisplayName()), res.Err)
			}
		}
	}

	return b.String()
}

// RenderProjects formats the projects listing.
func RenderProjects(projects []model.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d projects:\n", len(projects))
	for _, p := range projects {
		fmt.Fprintf(&b, "  %s (ID: %s) - %s\n",
			StyleProject.Render(p.NameWithNamespace),
			StyleInfo.Render(strconv.FormatInt(p.ID, 10)),
			p.WebURL)
	}
	return b.String()
}

// RenderInstances formats the configured registry for `config --list`.
func RenderInstances(reg *config.Registry) string {
	var b strings.Builder
	b.WriteString("Configured GitLab instances:\n")
	if len(reg.Instances) == 0 {
		b.WriteString("  No instances configured\n")
		return b.String()
	}
	for _, inst := range reg.Instances {
		fmt.Fprintf(&b, "  %s - %s\n", StyleProject.Render(inst.Name), inst.URL)
	}
	return b.String()
}
