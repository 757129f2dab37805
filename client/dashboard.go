package client

import (
	"context"
	"log"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/session"
)

// DashboardController loads the personal dashboard and the admin panel.
type DashboardController struct {
	api     *api.Client
	session *session.Holder
	pub     Publisher
}

// NewDashboardController wires the dashboard views.
func NewDashboardController(apiClient *api.Client, sess *session.Holder, pub Publisher) *DashboardController {
	return &DashboardController{api: apiClient, session: sess, pub: pub}
}

// LoadPersonal gathers the caller's stats, own posts and connection
// lists. Stats are required; the secondary lists degrade to empty on
// failure so one bad request does not blank the whole page.
func (d *DashboardController) LoadPersonal(ctx context.Context) error {
	stats, err := d.api.DashboardStats(ctx)
	if err != nil {
		log.Printf("Failed to load dashboard stats: %v", err)
		// Fall back to the cached session user so the header still
		// renders who is logged in.
		if user := d.session.Current(); user != nil {
			d.pub.Publish(protocol.TypeDashboard, protocol.DashboardEvent{
				Stats: &models.DashboardStats{User: *user},
			})
		}
		return err
	}

	posts, err := d.api.DashboardPosts(ctx)
	if err != nil {
		log.Printf("Failed to load own posts: %v", err)
	}
	followers, err := d.api.Followers(ctx)
	if err != nil {
		log.Printf("Failed to load followers: %v", err)
	}
	following, err := d.api.Following(ctx)
	if err != nil {
		log.Printf("Failed to load following: %v", err)
	}

	d.pub.Publish(protocol.TypeDashboard, protocol.DashboardEvent{
		Stats:     stats,
		Posts:     posts,
		Followers: followers,
		Following: following,
	})
	return nil
}

// LoadAdmin fetches the platform-wide stats. Any failure, including a
// 403 for non-admins, renders as a placeholder rather than an error.
func (d *DashboardController) LoadAdmin(ctx context.Context) error {
	stats, err := d.api.AdminStats(ctx)
	if err != nil {
		log.Printf("Failed to load admin stats: %v", err)
		d.pub.Publish(protocol.TypeAdminStats, protocol.AdminStatsEvent{
			Placeholder: "Admin access required",
		})
		return err
	}

	d.pub.Publish(protocol.TypeAdminStats, protocol.AdminStatsEvent{Stats: stats})
	return nil
}
