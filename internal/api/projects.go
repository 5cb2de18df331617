package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/altinukshini/glgrep/internal/model"
)

const listPageSize = 50

type ProjectsFilter struct {
	IncludeArchived bool
	PerPage         int
	Page            int
}

func (f ProjectsFilter) QueryString() url.Values {
	v := url.Values{}
	v.Set("simple", "true")
	if f.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	} else {
		v.Set("per_page", strconv.Itoa(listPageSize))
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	v.Set("order_by", "id")
	v.Set("membership", "true")
	v.Set("archived", strconv.FormatBool(f.IncludeArchived))
	return v
}

func (c *Client) listProjectsPage(ctx context.Context, filter ProjectsFilter) ([]model.Project, error) {
	var page []model.Project
	if err := c.get(ctx, "projects", filter.QueryString(), &page); err != nil {
		return nil, fmt.Errorf("list projects page %d: %w", filter.Page, err)
	}
	return page, nil
}

// ListProjects walks the paginated projects endpoint and returns every
// project the token is a member of. The endpoint gives no total count;
// the first empty page terminates the walk. Listing is all-or-nothing: any
// failed page aborts with no partial result.
func (c *Client) ListProjects(ctx context.Context, includeArchived bool) ([]model.Project, error) {
	var all []model.Project
	lastID := int64(-1)

	for page := 1; ; page++ {
		batch, err := c.listProjectsPage(ctx, ProjectsFilter{
			IncludeArchived: includeArchived,
			Page:            page,
		})
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		// A page ending on the same id as the previous one means the
		// server is re-serving entries; bail out instead of looping.
		if batch[len(batch)-1].ID == lastID {
			return nil, fmt.Errorf("list projects: page %d repeats project id %d, server pagination is broken", page, lastID)
		}
		lastID = batch[len(batch)-1].ID

		all = append(all, batch...)
		slog.Debug("fetched projects page", "page", page, "count", len(batch), "total", len(all))
	}

	return all, nil
}
