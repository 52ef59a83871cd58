package trapitsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateTrap(ctx context.Context, req CreateTrapRequest) (*CreateTrapResponse, error) {
	var out CreateTrapResponse
	if err := c.call(ctx, http.MethodPost, "/api/traps", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTraps(ctx context.Context, email string) ([]Trap, error) {
	var out []Trap
	if err := c.call(ctx, http.MethodGet, "/api/traps/user/"+url.PathEscape(email), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTrapStatus(ctx context.Context, trapID, status string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.call(ctx, http.MethodPut, "/api/traps/"+url.PathEscape(trapID)+"/status",
		UpdateTrapStatusRequest{Status: status}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTrap(ctx context.Context, trapID string) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodDelete, "/api/traps/"+url.PathEscape(trapID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
