package models

// Connection request statuses as reported by /api/users/search.
const (
	ConnectionNone      = "none"
	ConnectionSent      = "sent"
	ConnectionReceived  = "received"
	ConnectionConnected = "connected"
)

// ConnectionRequest is one pending request from /api/connections/requests.
type ConnectionRequest struct {
	ConnectionID int64     `json:"connection_id"`
	User         Author    `json:"user"`
	SentAt       Timestamp `json:"sent_at"`
}

// ConnectionRequests groups pending requests by direction.
type ConnectionRequests struct {
	Received []ConnectionRequest `json:"received_requests"`
	Sent     []ConnectionRequest `json:"sent_requests"`
}
