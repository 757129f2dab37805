package api

import (
	"context"
	"net/url"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// Requirements lists partnership/investment requirements, optionally
// filtered server-side.
func (c *Client) Requirements(ctx context.Context, filter models.RequirementFilter) ([]models.Requirement, error) {
	q := url.Values{}
	if filter.Sector != "" {
		q.Set("sector", filter.Sector)
	}
	if filter.Country != "" {
		q.Set("country", filter.Country)
	}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.PartnershipType != "" {
		q.Set("partnership_type", filter.PartnershipType)
	}
	path := "/api/requirements"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var resp struct {
		Items []models.Requirement `json:"items"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// CreateRequirement posts a new listing and returns its id.
func (c *Client) CreateRequirement(ctx context.Context, req models.NewRequirement) (int64, error) {
	var resp struct {
		OK            bool  `json:"ok"`
		RequirementID int64 `json:"requirement_id"`
	}
	if err := c.postJSON(ctx, "/api/requirements", req, &resp); err != nil {
		return 0, err
	}
	return resp.RequirementID, nil
}

// SaveBusinessProfile upserts the caller's business profile.
func (c *Client) SaveBusinessProfile(ctx context.Context, profile models.BusinessProfile) error {
	return c.postJSON(ctx, "/api/business", profile, nil)
}

// Countries returns the countries supported by the cost comparison tool,
// sorted by region then name server-side.
func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	var resp struct {
		Countries []models.Country `json:"countries"`
	}
	if err := c.get(ctx, "/api/countries", &resp); err != nil {
		return nil, err
	}
	return resp.Countries, nil
}

// CompareCosts runs the server-side cost-of-doing-business comparison.
func (c *Client) CompareCosts(ctx context.Context, input models.CostInput) ([]models.CostEstimate, error) {
	var resp struct {
		Items []models.CostEstimate `json:"items"`
	}
	if err := c.postJSON(ctx, "/api/costs", input, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
