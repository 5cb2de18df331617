package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/altinukshini/glgrep/internal/model"
)

// searchPageSize is the maximum the search endpoint accepts. Only the first
// page is fetched; per-project match volume is expected to be small and the
// endpoint's own result limit is accepted as-is.
const searchPageSize = 100

// SearchBlobs runs a code search scoped to one project. The query is passed
// verbatim; url.Values handles transport escaping.
func (c *Client) SearchBlobs(ctx context.Context, projectID int64, query string) ([]model.Blob, error) {
	v := url.Values{}
	v.Set("scope", "blobs")
	v.Set("search", query)
	v.Set("per_page", strconv.Itoa(searchPageSize))

	var blobs []model.Blob
	path := fmt.Sprintf("projects/%d/search", projectID)
	if err := c.get(ctx, path, v, &blobs); err != nil {
		return nil, fmt.Errorf("search project %d: %w", projectID, err)
	}
	return blobs, nil
}
