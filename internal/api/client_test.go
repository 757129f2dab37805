package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, srv
}

func TestErrorDecoding(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"detail body", 401, `{"detail":"Not authenticated"}`, "Not authenticated"},
		{"empty detail", 400, `{"detail":""}`, "Unknown error"},
		{"garbage body", 500, `<html>oops</html>`, "Unknown error"},
		{"no body", 403, ``, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))

			_, err := c.Me(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("got %v, want *Error", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", apiErr.Detail, tt.wantDetail)
			}
		})
	}
}

func TestIsAuthError(t *testing.T) {
	if !IsAuthError(&Error{StatusCode: 401, Detail: "Not authenticated"}) {
		t.Error("401 should be an auth error")
	}
	if IsAuthError(&Error{StatusCode: 403, Detail: "Admin access required"}) {
		t.Error("403 is not an auth error")
	}
	if IsAuthError(errors.New("network error")) {
		t.Error("plain errors are not auth errors")
	}
	if IsAuthError(fmt.Errorf("wrapped: %w", &Error{StatusCode: 401})) == false {
		t.Error("wrapped 401 should be an auth error")
	}
}

func TestSessionCookiePropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "globridge_session", Value: "tok123", Path: "/"})
		fmt.Fprint(w, `{"ok":true,"user":{"id":1,"name":"Amina","email":"a@x.com","role":"business"}}`)
	})
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("globridge_session")
		if err != nil || cookie.Value != "tok123" {
			w.WriteHeader(401)
			fmt.Fprint(w, `{"detail":"Not authenticated"}`)
			return
		}
		fmt.Fprint(w, `{"user":{"id":1,"name":"Amina","email":"a@x.com","role":"business"}}`)
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	user, err := c.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || user.Name != "Amina" {
		t.Fatalf("Login user = %+v", user)
	}

	// The session cookie from login must ride along automatically.
	me, err := c.Me(ctx)
	if err != nil {
		t.Fatalf("Me after login: %v", err)
	}
	if me == nil || me.ID != 1 {
		t.Fatalf("Me = %+v, want user 1", me)
	}
}

func TestMeReturnsNilWhenLoggedOut(t *testing.T) {
	// The backend answers 200 with a null user instead of a 401 here.
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"user":null}`)
	}))

	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user != nil {
		t.Fatalf("user = %+v, want nil", user)
	}
}

func TestFeedPagination(t *testing.T) {
	var gotLimit, gotOffset string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		gotOffset = r.URL.Query().Get("offset")
		fmt.Fprint(w, `{"posts":[{"id":5,"content":"hello","post_type":"text","created_at":"2025-03-01T10:00:00.123456","author":{"id":2,"name":"Kofi"},"reactions":{"like":3,"insightful":1},"comments_count":2}]}`)
	}))

	posts, err := c.Feed(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if gotLimit != "10" || gotOffset != "20" {
		t.Errorf("query limit=%s offset=%s, want 10/20", gotLimit, gotOffset)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}

	p := posts[0]
	if p.TotalReactions() != 4 {
		t.Errorf("TotalReactions = %d, want 4", p.TotalReactions())
	}
	// Zone-less backend timestamps must decode as UTC.
	want := time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC)
	if !p.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt.Time, want)
	}
}

func TestConversationDecodesIntegerFlags(t *testing.T) {
	// The backend stores is_read as a SQLite integer and serializes it
	// as 0/1, while is_from_me is a computed boolean.
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"partner_id":2,"partner_name":"Kofi","messages":[
			{"id":10,"content":"hello","from_user_id":2,"to_user_id":1,"created_at":"2025-03-01T10:00:00","is_from_me":false,"is_read":1},
			{"id":11,"content":"hi back","from_user_id":1,"to_user_id":2,"created_at":"2025-03-01T10:01:00","is_from_me":true,"is_read":0}
		]}`)
	}))

	thread, err := c.Conversation(context.Background(), 2)
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(thread.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(thread.Messages))
	}
	if !bool(thread.Messages[0].IsRead) || bool(thread.Messages[1].IsRead) {
		t.Errorf("is_read flags = %v/%v, want true/false",
			thread.Messages[0].IsRead, thread.Messages[1].IsRead)
	}
	if thread.Messages[0].IsFromMe || !thread.Messages[1].IsFromMe {
		t.Errorf("is_from_me flags = %v/%v, want false/true",
			thread.Messages[0].IsFromMe, thread.Messages[1].IsFromMe)
	}
}

func TestTransportErrorWrapped(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = c.Me(ctx)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure decoded as API error: %v", err)
	}
}
