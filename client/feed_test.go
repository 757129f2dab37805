package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/state"
)

// feedBackend serves a fixed list of posts with real limit/offset
// pagination, newest first.
type feedBackend struct {
	mu    sync.Mutex
	posts []models.Post
}

func (b *feedBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	b.mu.Lock()
	defer b.mu.Unlock()
	end := offset + limit
	if offset > len(b.posts) {
		offset = len(b.posts)
	}
	if end > len(b.posts) {
		end = len(b.posts)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"posts": b.posts[offset:end]})
}

// prependPost simulates another user publishing while we are polling.
func (b *feedBackend) prependPost(p models.Post) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.posts = append([]models.Post{p}, b.posts...)
}

func backendWithPosts(n int) *feedBackend {
	b := &feedBackend{}
	// Newest first: ids n..1.
	for id := n; id >= 1; id-- {
		b.posts = append(b.posts, models.Post{ID: int64(id), Content: fmt.Sprintf("post %d", id), PostType: "text"})
	}
	return b
}

func newFeedController(t *testing.T, backend http.Handler, pageSize int) (*FeedController, *state.FeedStore, *recorder) {
	t.Helper()
	rec := &recorder{}
	store := state.NewFeedStore()
	// A long poll interval keeps the background ticker quiet in tests.
	ctrl := NewFeedController(newTestAPI(t, backend), store, rec, nil, pageSize, time.Hour)
	t.Cleanup(ctrl.Close)
	return ctrl, store, rec
}

func TestLoadAdvancesCursor(t *testing.T) {
	ctrl, store, rec := newFeedController(t, backendWithPosts(13), 10)
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ctrl.Offset() != 10 {
		t.Errorf("offset = %d after a full page, want 10", ctrl.Offset())
	}
	if !ctrl.HasMore() {
		t.Error("a full page must keep the load-more control visible")
	}

	// The short second page ends pagination.
	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if ctrl.Offset() != 13 {
		t.Errorf("offset = %d, want 13", ctrl.Offset())
	}
	if ctrl.HasMore() {
		t.Error("a short page must end pagination")
	}
	if store.Len() != 13 {
		t.Errorf("store holds %d posts, want 13", store.Len())
	}

	ev := rec.last(protocol.TypeFeed).(protocol.FeedEvent)
	if ev.TotalLoaded != 13 || ev.HasMore {
		t.Errorf("feed event = %+v", ev)
	}
}

func TestLoadExactBoundary(t *testing.T) {
	// Exactly one full page: the heuristic cannot tell boundary from
	// more-available, so the control stays visible until the empty page.
	ctrl, _, _ := newFeedController(t, backendWithPosts(10), 10)
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ctrl.HasMore() {
		t.Error("boundary page must still report more")
	}

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if ctrl.HasMore() {
		t.Error("empty page must end pagination")
	}
	if ctrl.Offset() != 10 {
		t.Errorf("offset = %d, want 10", ctrl.Offset())
	}
}

func TestReloadResetsEverything(t *testing.T) {
	ctrl, store, _ := newFeedController(t, backendWithPosts(13), 10)
	ctx := context.Background()

	ctrl.Load(ctx)
	ctrl.Load(ctx)
	if err := ctrl.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if ctrl.Offset() != 10 {
		t.Errorf("offset = %d after reload, want 10", ctrl.Offset())
	}
	if !ctrl.HasMore() {
		t.Error("reload must restore the load-more control")
	}
	if store.Len() != 10 {
		t.Errorf("store holds %d posts after reload, want 10", store.Len())
	}
}

func TestPollPrependsOnlyUnseen(t *testing.T) {
	backend := backendWithPosts(10)
	ctrl, store, rec := newFeedController(t, backend, 10)
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Nothing new: the poll must publish nothing.
	ctrl.checkForNewPosts(ctx)
	if rec.last(protocol.TypeNewPosts) != nil {
		t.Fatal("poll with no new posts published an event")
	}

	backend.prependPost(models.Post{ID: 11, Content: "fresh", PostType: "text"})
	ctrl.checkForNewPosts(ctx)

	ev := rec.last(protocol.TypeNewPosts)
	if ev == nil {
		t.Fatal("poll did not publish the new post")
	}
	newPosts := ev.(protocol.NewPostsEvent)
	if newPosts.Count != 1 || newPosts.Posts[0].ID != 11 {
		t.Fatalf("new posts event = %+v", newPosts)
	}
	if !rec.hasNotification("1 new post available!") {
		t.Errorf("missing new-post toast, got %v", rec.notifications())
	}

	// The new post sits at the front; the cursor is untouched.
	if posts := store.Posts(); posts[0].ID != 11 {
		t.Errorf("front of store = %d, want 11", posts[0].ID)
	}
	if ctrl.Offset() != 10 {
		t.Errorf("offset = %d, the poll must not advance it", ctrl.Offset())
	}

	// The same page polled again adds nothing.
	ctrl.checkForNewPosts(ctx)
	if store.Len() != 11 {
		t.Errorf("store holds %d posts, want 11", store.Len())
	}
}

func TestShare(t *testing.T) {
	ctrl, _, rec := newFeedController(t, backendWithPosts(3), 10)
	ctx := context.Background()
	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	opened := false
	ctrl.OnOpenMessages(func(ctx context.Context) { opened = true })

	ctrl.Share(ctx, 2, "copy")
	ev := rec.last(protocol.TypeShareLink)
	if ev == nil {
		t.Fatal("copy share published no link")
	}
	if link := ev.(protocol.ShareLinkEvent); link.PostID != 2 {
		t.Errorf("share link = %+v", link)
	}
	if !rec.hasNotification("Post link copied to clipboard!") {
		t.Errorf("missing copy toast, got %v", rec.notifications())
	}

	ctrl.Share(ctx, 2, "message")
	if !opened {
		t.Error("message share must jump to the messages view")
	}

	// An unknown post id is ignored.
	ctrl.Share(ctx, 99, "copy")
	links := rec.ofType(protocol.TypeShareLink)
	if len(links) != 1 {
		t.Errorf("unknown post produced %d share links, want 1", len(links))
	}
}

func TestAddCommentEmptyBodySkipsNetwork(t *testing.T) {
	ctrl, _, rec := newFeedController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty comment must not reach the network")
	}), 10)

	if err := ctrl.AddComment(context.Background(), 1, "   "); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(rec.notifications()) != 0 {
		t.Errorf("empty comment produced notifications: %v", rec.notifications())
	}
}

func TestCreatePostValidation(t *testing.T) {
	ctrl, _, rec := newFeedController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid post must not reach the network")
	}), 10)

	err := ctrl.CreatePost(context.Background(), models.NewPost{Content: "  ", PostType: models.PostTypeText}, nil, "", 0)
	if err != ErrMissingFields {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if !rec.hasNotification("Please enter some content or upload a file") {
		t.Errorf("missing validation toast, got %v", rec.notifications())
	}
}
