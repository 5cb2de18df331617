package api

import (
	"context"
	"fmt"

	"github.com/altinukshini/glgrep/internal/model"
)

// Version fetches the instance version. Used as a connectivity and token
// check after configuring an instance.
func (c *Client) Version(ctx context.Context) (*model.Version, error) {
	var v model.Version
	if err := c.get(ctx, "version", nil, &v); err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	return &v, nil
}
