package api

import (
	"context"
	"net/url"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// SearchUsers looks up other users by name or email fragment. role may be
// empty. The backend excludes the caller and caps results at 20.
func (c *Client) SearchUsers(ctx context.Context, query, role string) ([]models.SearchedUser, error) {
	q := url.Values{}
	q.Set("q", query)
	if role != "" {
		q.Set("role", role)
	}
	var resp struct {
		Users []models.SearchedUser `json:"users"`
	}
	if err := c.get(ctx, "/api/users/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// SendConnectionRequest asks to connect with another user.
func (c *Client) SendConnectionRequest(ctx context.Context, receiverID int64) error {
	payload := map[string]int64{"receiver_id": receiverID}
	return c.postJSON(ctx, "/api/connections/send", payload, nil)
}

// RespondToConnectionRequest accepts or declines a pending request.
// action must be "accept" or "decline".
func (c *Client) RespondToConnectionRequest(ctx context.Context, connectionID int64, action string) error {
	payload := map[string]interface{}{
		"connection_id": connectionID,
		"action":        action,
	}
	return c.postJSON(ctx, "/api/connections/respond", payload, nil)
}

// ConnectionRequests returns pending requests in both directions.
func (c *Client) ConnectionRequests(ctx context.Context) (*models.ConnectionRequests, error) {
	var resp models.ConnectionRequests
	if err := c.get(ctx, "/api/connections/requests", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DashboardStats returns the caller's profile and engagement counters.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var resp models.DashboardStats
	if err := c.get(ctx, "/api/dashboard/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DashboardPosts returns the caller's own posts with engagement totals.
func (c *Client) DashboardPosts(ctx context.Context) ([]models.OwnPost, error) {
	var resp struct {
		Posts []models.OwnPost `json:"posts"`
	}
	if err := c.get(ctx, "/api/dashboard/posts", &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// Followers returns users who accepted a connection to the caller.
func (c *Client) Followers(ctx context.Context) ([]models.Author, error) {
	var resp struct {
		Followers []models.Author `json:"followers"`
	}
	if err := c.get(ctx, "/api/dashboard/followers", &resp); err != nil {
		return nil, err
	}
	return resp.Followers, nil
}

// Following returns users the caller is connected to as requester.
func (c *Client) Following(ctx context.Context) ([]models.Author, error) {
	var resp struct {
		Following []models.Author `json:"following"`
	}
	if err := c.get(ctx, "/api/dashboard/following", &resp); err != nil {
		return nil, err
	}
	return resp.Following, nil
}

// AdminStats returns platform totals and recent activity. Requires the
// admin role; other callers get a 403.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var resp models.AdminStats
	if err := c.get(ctx, "/api/admin/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
