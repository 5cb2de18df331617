package ops

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/altinukshini/glgrep/internal/model"
)

// BlobSearcher runs one project-scoped code search.
type BlobSearcher interface {
	SearchBlobs(ctx context.Context, projectID int64, query string) ([]model.Blob, error)
}

// Progress is delivered after each search task reaches a terminal state.
// Advisory only; aggregation never depends on it.
type Progress struct {
	Completed int
	Total     int
	Project   string
	Err       error
}

type SearchOptions struct {
	// Workers bounds concurrent searches. 0 means one goroutine per
	// project, however many there are.
	Workers int

	// TaskTimeout bounds each project's search call. 0 means no per-task
	// deadline beyond the caller's context.
	TaskTimeout time.Duration

	// OnProgress, when set, is called after every task completes. Calls
	// are serialized; the callback never runs concurrently with itself.
	OnProgress func(Progress)
}

// ProjectResult is one project's outcome: matches on success, Err on
// failure, never both.
type ProjectResult struct {
	Project model.Project
	Matches []model.Blob
	Err     error
}

// AggregateResult holds every project's outcome in resolution order,
// regardless of completion order.
type AggregateResult struct {
	Results []ProjectResult
}

// MatchCount is the total matches across all successful projects.
func (a *AggregateResult) MatchCount() int {
	n := 0
	for _, r := range a.Results {
		n += len(r.Matches)
	}
	return n
}

// FailedCount is the number of projects whose search failed.
func (a *AggregateResult) FailedCount() int {
	n := 0
	for _, r := range a.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// RunSearch fans one search task per project out across a worker pool and
// waits for all of them. A failed task records its error in that project's
// slot and never disturbs its siblings; there is no retry and no
// short-circuit. Each outcome lands in a slot indexed by the project's
// position in the input, so the aggregate is ordered by resolution order and
// reproducible across runs.
func RunSearch(ctx context.Context, searcher BlobSearcher, query string, projects []model.Project, opts SearchOptions) (*AggregateResult, error) {
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	slots := make([]ProjectResult, len(projects))
	total := len(projects)
	var (
		completed  atomic.Int64
		progressMu sync.Mutex
	)

	// g.Wait never sees a non-nil error: task failures terminate in their
	// slot. The group only provides the pool and the join barrier.
	g := new(errgroup.Group)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, project := range projects {
		g.Go(func() error {
			slots[i] = runTask(ctx, searcher, query, project, opts.TaskTimeout)

			if opts.OnProgress == nil {
				completed.Add(1)
				return nil
			}

			// Counter and callback advance together so observers see
			// monotonic progress.
			progressMu.Lock()
			defer progressMu.Unlock()
			done := int(completed.Add(1))
			slog.Debug("search task finished",
				"project", project.DisplayName(),
				"completed", done,
				"total", total,
				"err", slots[i].Err)
			opts.OnProgress(Progress{
				Completed: done,
				Total:     total,
				Project:   project.DisplayName(),
				Err:       slots[i].Err,
			})
			return nil
		})
	}

	_ = g.Wait()
	return &AggregateResult{Results: slots}, nil
}

func runTask(ctx context.Context, searcher BlobSearcher, query string, project model.Project, timeout time.Duration) ProjectResult {
	res := ProjectResult{Project: project}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	matches, err := searcher.SearchBlobs(ctx, project.ID, query)
	if err != nil {
		res.Err = err
		return res
	}
	res.Matches = matches
	return res
}
