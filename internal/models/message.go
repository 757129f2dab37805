package models

// Conversation is one inbox row from /api/conversations.
type Conversation struct {
	PartnerID   int64     `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	PartnerRole string    `json:"partner_role"`
	LastMessage string    `json:"last_message"`
	LastTime    Timestamp `json:"last_time"`
	UnreadCount int       `json:"unread_count"`
}

// Message is a single thread entry from /api/messages/conversation/{id}.
type Message struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	FromUserID     int64     `json:"from_user_id"`
	ToUserID       int64     `json:"to_user_id"`
	CreatedAt      Timestamp `json:"created_at"`
	IsFromMe       bool      `json:"is_from_me"`
	MessageType    string    `json:"message_type,omitempty"`
	IsRead         IntBool   `json:"is_read"`
	ReplyToID      int64     `json:"reply_to_id,omitempty"`
	AttachmentName string    `json:"attachment_name,omitempty"`

	// Provisional marks a locally-rendered optimistic message that has not
	// yet been confirmed by a thread reload. Never set on server data.
	Provisional bool `json:"provisional,omitempty"`
}

// Thread is the full conversation with one partner.
type Thread struct {
	PartnerID   int64     `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	Messages    []Message `json:"messages"`
}

// OutgoingMessage is the payload for POST /api/messages.
type OutgoingMessage struct {
	ToUserID       int64  `json:"to_user_id"`
	Body           string `json:"body"`
	MessageType    string `json:"message_type,omitempty"`
	ReplyToID      int64  `json:"reply_to_id,omitempty"`
	AttachmentName string `json:"attachment_name,omitempty"`
}
