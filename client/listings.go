package client

import (
	"context"
	"log"
	"strings"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

// ListingsController serves the requirements board: browsing, posting
// and contacting listing owners.
type ListingsController struct {
	api *api.Client
	pub Publisher
}

// NewListingsController wires the listings view.
func NewListingsController(apiClient *api.Client, pub Publisher) *ListingsController {
	return &ListingsController{api: apiClient, pub: pub}
}

// Load fetches listings with the given filter and publishes them.
func (l *ListingsController) Load(ctx context.Context, filter models.RequirementFilter) error {
	requirements, err := l.api.Requirements(ctx, filter)
	if err != nil {
		log.Printf("Failed to load requirements: %v", err)
		toast(l.pub, levelError, "Failed to load listings")
		return err
	}
	l.pub.Publish(protocol.TypeRequirements, requirements)
	return nil
}

// Create posts a new requirement and reloads the unfiltered board.
func (l *ListingsController) Create(ctx context.Context, req models.NewRequirement) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		toast(l.pub, levelError, "Please enter a title for your requirement")
		return ErrMissingFields
	}

	if _, err := l.api.CreateRequirement(ctx, req); err != nil {
		toast(l.pub, levelError, "Failed to post requirement")
		return err
	}

	toast(l.pub, levelSuccess, "Requirement posted successfully!")
	return l.Load(ctx, models.RequirementFilter{})
}

// SaveBusinessProfile upserts the caller's business profile.
func (l *ListingsController) SaveBusinessProfile(ctx context.Context, profile models.BusinessProfile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		toast(l.pub, levelError, "Please enter your business name")
		return ErrMissingFields
	}

	if err := l.api.SaveBusinessProfile(ctx, profile); err != nil {
		toast(l.pub, levelError, "Failed to save business profile")
		return err
	}

	toast(l.pub, levelSuccess, "Business profile saved!")
	return nil
}

// MessageOwner sends a direct message to a listing's owner without
// leaving the board.
func (l *ListingsController) MessageOwner(ctx context.Context, ownerID int64, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		toast(l.pub, levelError, ErrEmptyMessage.Error())
		return ErrEmptyMessage
	}

	if err := l.api.SendMessage(ctx, models.OutgoingMessage{ToUserID: ownerID, Body: body}); err != nil {
		toast(l.pub, levelError, "Failed to send message")
		return err
	}

	toast(l.pub, levelSuccess, "Message sent successfully!")
	return nil
}
