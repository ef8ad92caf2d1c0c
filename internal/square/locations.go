package square

import (
	"context"
	"net/http"
	"net/url"
)

// RetrieveLocation fetches a location's display fields. Read-only.
func (c *Client) RetrieveLocation(ctx context.Context, locationID string) (*Location, error) {
	var resp struct {
		Location *Location `json:"location"`
	}
	path := "/v2/locations/" + url.PathEscape(locationID)
	if err := c.do(ctx, "retrieve_location", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Location, nil
}
