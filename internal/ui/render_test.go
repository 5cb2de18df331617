package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/altinukshini/glgrep/internal/config"
	"github.com/altinukshini/glgrep/internal/model"
	"github.com/altinukshini/glgrep/internal/ops"
)

func TestRenderResultsGroupsByProjectOrder(t *testing.T) {
	agg := &ops.AggregateResult{Results: []ops.ProjectResult{
		{
			Project: model.Project{ID: 1, NameWithNamespace: "group / alpha"},
			Matches: []model.Blob{
				{Path: "cmd/main.go", Data: "func main() {\n\t_ = 1\n}", Startline: 12},
			},
		},
		{
			Project: model.Project{ID: 2, NameWithNamespace: "group / beta"},
			Matches: []model.Blob{
				{Path: "util.go", Data: "// helper", Startline: 3},
			},
		},
	}}

	out := RenderResults(agg)

	if !strings.Contains(out, "Found 2 results:") {
		t.Errorf("missing summary line in %q", out)
	}
	alpha := strings.Index(out, "cmd/main.go")
	beta := strings.Index(out, "util.go")
	if alpha == -1 || beta == -1 {
		t.Fatalf("missing match paths in %q", out)
	}
	if alpha > beta {
		t.Error("matches not grouped in project resolution order")
	}
	// Snippet lines are numbered from the match's start line.
	for _, want := range []string{"12: func main() {", "13: ", "14: }"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing numbered line %q in %q", want, out)
		}
	}
}

func TestRenderResultsReportsFailures(t *testing.T) {
	agg := &ops.AggregateResult{Results: []ops.ProjectResult{
		{Project: model.Project{ID: 1, NameWithNamespace: "g/ok"}},
		{Project: model.Project{ID: 2, NameWithNamespace: "g/broken"}, Err: errors.New("HTTP 403")},
	}}

	out := RenderResults(agg)
	if !strings.Contains(out, "1 of 2 projects failed") {
		t.Errorf("missing failure summary in %q", out)
	}
	if !strings.Contains(out, "g/broken") || !strings.Contains(out, "HTTP 403") {
		t.Errorf("missing failed project detail in %q", out)
	}
}

func TestRenderProjects(t *testing.T) {
	out := RenderProjects([]model.Project{
		{ID: 7, NameWithNamespace: "group / repo", WebURL: "https://gitlab.example.com/group/repo"},
	})
	for _, want := range []string{"Found 1 projects:", "group / repo", "(ID: 7)", "https://gitlab.example.com/group/repo"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderInstances(t *testing.T) {
	empty := RenderInstances(&config.Registry{})
	if !strings.Contains(empty, "No instances configured") {
		t.Errorf("missing empty notice in %q", empty)
	}

	out := RenderInstances(&config.Registry{Instances: []config.Instance{
		{Name: "work", URL: "https://gitlab.example.com", Token: "secret"},
	}})
	if !strings.Contains(out, "work") || !strings.Contains(out, "https://gitlab.example.com") {
		t.Errorf("missing instance line in %q", out)
	}
	if strings.Contains(out, "secret") {
		t.Error("token must not be printed")
	}
}
