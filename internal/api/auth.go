package api

import (
	"context"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// Me returns the current session's user, or nil when not authenticated.
// The backend answers 200 with a null user rather than 401 here.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.get(ctx, "/api/me", &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login authenticates and returns the user. The session cookie is stored
// in the client's jar for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp struct {
		OK   bool         `json:"ok"`
		User *models.User `json:"user"`
	}
	if err := c.postJSON(ctx, "/api/login", payload, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Register creates an account. It does not log in; callers chain Login.
func (c *Client) Register(ctx context.Context, name, email, password, role string) error {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}
	return c.postJSON(ctx, "/api/register", payload, nil)
}

// Logout drops the server-side session. The cookie is invalidated by the
// response's delete-cookie header.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/logout", map[string]string{}, nil)
}
