package ops

import (
	"context"
	"errors"
	"strconv"

	"github.com/altinukshini/glgrep/internal/model"
)

var (
	// ErrNoProjectSelector means the caller gave neither a project
	// identifier nor the all-projects flag.
	ErrNoProjectSelector = errors.New("you must specify a project or use the all-projects flag to search every project")

	// ErrNoProjects means resolution produced an empty search scope.
	ErrNoProjects = errors.New("no projects found to search")
)

// ProjectLister enumerates the projects visible to an instance's token.
type ProjectLister interface {
	ListProjects(ctx context.Context, includeArchived bool) ([]model.Project, error)
}

// ResolveProjects turns a user-supplied identifier into the set of projects
// to search.
//
// A positive integer identifier selects that project id directly, without an
// existence check; a bad id surfaces when its search call fails. Any other
// non-empty identifier must exactly match a project's path with namespace.
// An exact-match miss yields an empty set, not an error: the search command
// rejects an empty scope, but resolution itself treats it as a legitimate
// outcome.
func ResolveProjects(ctx context.Context, lister ProjectLister, identifier string, allProjects bool) ([]model.Project, error) {
	switch {
	case identifier != "":
		if id, err := strconv.ParseInt(identifier, 10, 64); err == nil && id > 0 {
			return []model.Project{{ID: id, Name: identifier}}, nil
		}

		projects, err := lister.ListProjects(ctx, false)
		if err != nil {
			return nil, err
		}
		var matched []model.Project
		for _, p := range projects {
			if p.PathWithNamespace == identifier {
				matched = append(matched, p)
			}
		}
		return matched, nil

	case allProjects:
		return lister.ListProjects(ctx, false)

	default:
		return nil, ErrNoProjectSelector
	}
}
