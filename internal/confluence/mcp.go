package confluence

import (
	"context"
)

// MCP Tool wrapper methods
// These methods validate arguments before any HTTP call and render the
// upstream payload as pretty-printed JSON text.

// SearchContentMCP is the MCP wrapper for Search
func (c *Client) SearchContentMCP(ctx context.Context, args SearchContentArgs) (string, error) {
	if err := ValidateCQL(args.Query); err != nil {
		return "", err
	}

	results, err := c.Search(ctx, args.Query)
	if err != nil {
		return "", err
	}
	return Pretty(results)
}

// GetPageMCP is the MCP wrapper for GetPage
func (c *Client) GetPageMCP(ctx context.Context, args GetPageArgs) (string, error) {
	if err := ValidatePageID(args.PageID); err != nil {
		return "", err
	}

	page, err := c.GetPage(ctx, args.PageID)
	if err != nil {
		return "", err
	}
	return Pretty(page)
}
