package protocol

import (
	"encoding/json"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// MessageType identifies the type of a UI bridge message.
type MessageType string

const (
	// UI -> client commands
	TypeNavigate         MessageType = "navigate"
	TypeLogin            MessageType = "login"
	TypeRegister         MessageType = "register"
	TypeLogout           MessageType = "logout"
	TypeLoadMore         MessageType = "load_more"
	TypeCreatePost       MessageType = "create_post"
	TypeReact            MessageType = "react"
	TypeToggleComments   MessageType = "toggle_comments"
	TypeAddComment       MessageType = "add_comment"
	TypeOpenConversation MessageType = "open_conversation"
	TypeSendMessage      MessageType = "send_message"
	TypeFilterInbox      MessageType = "filter_inbox"
	TypeSearch           MessageType = "search"
	TypeConnect          MessageType = "connect"
	TypeRespondRequest   MessageType = "respond_request"
	TypeCompareCosts     MessageType = "compare_costs"
	TypePostRequirement  MessageType = "post_requirement"
	TypeSharePost        MessageType = "share_post"

	// Client -> UI events
	TypeSession       MessageType = "session"
	TypeProvisional   MessageType = "provisional_message"
	TypeView          MessageType = "view"
	TypeNotification  MessageType = "notification"
	TypeErrorEvent    MessageType = "error"
	TypeFeed          MessageType = "feed"
	TypeNewPosts      MessageType = "new_posts"
	TypePostUpdated   MessageType = "post_updated"
	TypeComments      MessageType = "comments"
	TypeConversations MessageType = "conversations"
	TypeThread        MessageType = "thread"
	TypeUnreadCount   MessageType = "unread_count"
	TypeSearchResults MessageType = "search_results"
	TypeRequestBadge  MessageType = "request_badge"
	TypeShareLink     MessageType = "share_link"
	TypeCountries     MessageType = "countries"
	TypeCostResults   MessageType = "cost_results"
	TypeRequirements  MessageType = "requirements"
	TypeDashboard     MessageType = "dashboard"
	TypeAdminStats    MessageType = "admin_stats"
)

// Envelope wraps all UI bridge messages with a type field.
type Envelope struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope creates an envelope with the payload marshalled into Data.
func NewEnvelope(t MessageType, payload interface{}) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Envelope{Type: t, Data: data}, nil
}

// ParseEnvelope decodes an envelope from raw bytes.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// NavigateCommand asks the router to switch views.
type NavigateCommand struct {
	View string `json:"view"`
}

// LoginCommand carries credentials from the login form.
type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCommand carries the registration form.
type RegisterCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ReactCommand toggles a reaction on a post.
type ReactCommand struct {
	PostID       int64  `json:"post_id"`
	ReactionType string `json:"reaction_type"`
}

// AddCommentCommand posts a comment on a post.
type AddCommentCommand struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

// OpenConversationCommand selects the current conversation.
type OpenConversationCommand struct {
	PartnerID int64 `json:"partner_id"`
}

// SendMessageCommand sends a direct message in the current conversation.
type SendMessageCommand struct {
	Body string `json:"body"`
}

// SearchCommand is a keystroke-driven user search update.
type SearchCommand struct {
	Query string `json:"query"`
}

// ConnectCommand sends a connection request.
type ConnectCommand struct {
	ReceiverID int64 `json:"receiver_id"`
}

// RespondRequestCommand accepts or declines a pending request. RequesterID
// identifies the user who sent the request so an accept can flip their
// search-result button to connected.
type RespondRequestCommand struct {
	ConnectionID int64  `json:"connection_id"`
	RequesterID  int64  `json:"requester_id"`
	Action       string `json:"action"`
}

// ShareCommand shares a post. ShareType is "copy", "message" or
// "connection".
type ShareCommand struct {
	PostID    int64  `json:"post_id"`
	ShareType string `json:"share_type"`
}

// SessionEvent announces the current session state.
type SessionEvent struct {
	User          *models.User `json:"user"`
	Authenticated bool         `json:"authenticated"`
	ShowAdminNav  bool         `json:"show_admin_nav"`
}

// ViewEvent announces the active view after a router transition.
type ViewEvent struct {
	View string `json:"view"`
}

// NotificationEvent is a transient toast-style message.
type NotificationEvent struct {
	Message string `json:"message"`
	Level   string `json:"level"` // "info", "success" or "error"
}

// FeedEvent carries the full ordered feed plus pagination state.
type FeedEvent struct {
	Posts       []models.Post `json:"posts"`
	HasMore     bool          `json:"has_more"`
	TotalLoaded int           `json:"total_loaded"`
}

// NewPostsEvent announces posts prepended by the live-update poll.
type NewPostsEvent struct {
	Posts []models.Post `json:"posts"`
	Count int           `json:"count"`
}

// ThreadEvent carries a conversation thread. Cached is set when the
// messages came from the local cache ahead of the network reload.
type ThreadEvent struct {
	Thread *models.Thread `json:"thread"`
	Cached bool           `json:"cached"`
}

// CommentsEvent carries one post's comments.
type CommentsEvent struct {
	PostID   int64            `json:"post_id"`
	Comments []models.Comment `json:"comments"`
}

// SearchResultsEvent carries user search results with connection state.
// An empty Users list with Visible false hides the results panel.
type SearchResultsEvent struct {
	Query   string                `json:"query"`
	Users   []models.SearchedUser `json:"users"`
	Visible bool                  `json:"visible"`
}

// RequestBadgeEvent updates the pending connection-request badge.
type RequestBadgeEvent struct {
	Pending int `json:"pending"`
}

// UnreadCountEvent updates the unread message badge.
type UnreadCountEvent struct {
	Count int `json:"count"`
}

// DashboardEvent carries everything the personal dashboard shows.
type DashboardEvent struct {
	Stats     *models.DashboardStats `json:"stats"`
	Posts     []models.OwnPost       `json:"posts"`
	Followers []models.Author        `json:"followers"`
	Following []models.Author        `json:"following"`
}

// AdminStatsEvent carries the admin panel data. On any failure Stats is
// nil and Placeholder explains the degraded rendering.
type AdminStatsEvent struct {
	Stats       *models.AdminStats `json:"stats"`
	Placeholder string             `json:"placeholder,omitempty"`
}

// ShareLinkEvent asks the UI to place a post link on the clipboard.
type ShareLinkEvent struct {
	PostID int64  `json:"post_id"`
	URL    string `json:"url"`
}

// CostResultsEvent carries either a comparison result or, when the cost
// tool opens, the inputs from the previous comparison.
type CostResultsEvent struct {
	Estimates []models.CostEstimate `json:"estimates,omitempty"`
	LastInput *models.CostInput     `json:"last_input,omitempty"`
}
