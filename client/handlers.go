package client

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const commandTimeout = 30 * time.Second

// UIHandler bridges the browser UI to the controllers over a local
// WebSocket. Incoming envelopes are commands; outgoing ones are the
// events the controllers publish through the hub.
type UIHandler struct {
	hub *Hub
	app *App
}

// NewUIHandler creates the UI bridge.
func NewUIHandler(hub *Hub, app *App) *UIHandler {
	return &UIHandler{hub: hub, app: app}
}

// HandleIndex serves the main client UI.
func (h *UIHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, "web/ui/index.html")
}

// HandleWebSocket upgrades a browser connection and starts command
// dispatch.
func (h *UIHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)
	h.sendInitialState(conn)

	go h.readLoop(conn)
}

// sendInitialState paints a fresh UI: who is logged in, which view is
// active and the feed already in memory.
func (h *UIHandler) sendInitialState(conn *websocket.Conn) {
	user := h.app.Session.Current()
	h.hub.SendTo(conn, protocol.TypeSession, protocol.SessionEvent{
		User:          user,
		Authenticated: user != nil,
		ShowAdminNav:  user.IsAdmin(),
	})
	h.hub.SendTo(conn, protocol.TypeView, protocol.ViewEvent{
		View: string(h.app.Router.Active()),
	})
	if posts := h.app.FeedStore.Posts(); len(posts) > 0 {
		h.hub.SendTo(conn, protocol.TypeFeed, protocol.FeedEvent{
			Posts:       posts,
			HasMore:     h.app.Feed.HasMore(),
			TotalLoaded: len(posts),
		})
	}
}

func (h *UIHandler) readLoop(conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(conn)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("UI WebSocket error: %v", err)
			}
			return
		}

		env, err := protocol.ParseEnvelope(data)
		if err != nil {
			log.Printf("Bad UI command: %v", err)
			continue
		}
		h.dispatch(env)
	}
}

// dispatch runs one UI command. Network-bound commands run in their own
// goroutine so a slow request never stalls the read loop; errors are
// already surfaced by the controllers as notifications.
func (h *UIHandler) dispatch(env *protocol.Envelope) {
	switch env.Type {
	case protocol.TypeNavigate:
		var cmd protocol.NavigateCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Router.Navigate(ctx, View(cmd.View))
		})

	case protocol.TypeLogin:
		var cmd protocol.LoginCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Sessions.Login(ctx, cmd.Email, cmd.Password)
		})

	case protocol.TypeRegister:
		var cmd protocol.RegisterCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Sessions.Register(ctx, cmd.Name, cmd.Email, cmd.Password, cmd.Role)
		})

	case protocol.TypeLogout:
		h.async(func(ctx context.Context) {
			h.app.Sessions.Logout(ctx)
		})

	case protocol.TypeLoadMore:
		h.async(func(ctx context.Context) {
			h.app.Feed.Load(ctx)
		})

	case protocol.TypeCreatePost:
		var cmd models.NewPost
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Feed.CreatePost(ctx, cmd, nil, "", 0)
		})

	case protocol.TypeReact:
		var cmd protocol.ReactCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Feed.React(ctx, cmd.PostID, cmd.ReactionType)
		})

	case protocol.TypeSharePost:
		var cmd protocol.ShareCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Feed.Share(ctx, cmd.PostID, cmd.ShareType)
		})

	case protocol.TypeToggleComments:
		var cmd protocol.AddCommentCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Feed.LoadComments(ctx, cmd.PostID)
		})

	case protocol.TypeAddComment:
		var cmd protocol.AddCommentCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Feed.AddComment(ctx, cmd.PostID, cmd.Content)
		})

	case protocol.TypeOpenConversation:
		var cmd protocol.OpenConversationCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Messaging.Open(ctx, cmd.PartnerID)
		})

	case protocol.TypeSendMessage:
		var cmd protocol.SendMessageCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Messaging.Send(ctx, cmd.Body)
		})

	case protocol.TypeFilterInbox:
		var cmd protocol.SearchCommand
		if !decode(env, &cmd) {
			return
		}
		h.app.Messaging.FilterInbox(cmd.Query)

	case protocol.TypeSearch:
		var cmd protocol.SearchCommand
		if !decode(env, &cmd) {
			return
		}
		h.app.Connections.SearchInput(cmd.Query)

	case protocol.TypeConnect:
		var cmd protocol.ConnectCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Connections.Connect(ctx, cmd.ReceiverID)
		})

	case protocol.TypeRespondRequest:
		var cmd protocol.RespondRequestCommand
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Connections.Respond(ctx, cmd.ConnectionID, cmd.RequesterID, cmd.Action)
		})

	case protocol.TypeCompareCosts:
		var cmd models.CostInput
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Costs.Compare(ctx, cmd)
		})

	case protocol.TypePostRequirement:
		var cmd models.NewRequirement
		if !decode(env, &cmd) {
			return
		}
		h.async(func(ctx context.Context) {
			h.app.Listings.Create(ctx, cmd)
		})

	default:
		log.Printf("Unknown UI command type %q", env.Type)
	}
}

func (h *UIHandler) async(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func decode(env *protocol.Envelope, out interface{}) bool {
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("Bad %s payload: %v", env.Type, err)
		return false
	}
	return true
}
